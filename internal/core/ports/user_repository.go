package ports

import (
	"context"
	"time"

	"github.com/storefront/ecommerce-api/internal/core/domain"
)

// UserListFilter narrows a user listing.
type UserListFilter struct {
	// Limit caps the result to the most recently created users. Zero means no limit.
	Limit int
}

// UserRepository is the credential store. Emails are stored normalized.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// UpdateByID applies patch and returns the updated user, or ErrUserNotFound.
	UpdateByID(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)
	// DeleteByID reports whether a user was removed.
	DeleteByID(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, filter UserListFilter) ([]*domain.User, error)
	// CountByMonth groups users created at or after since by year and month.
	CountByMonth(ctx context.Context, since time.Time) ([]domain.MonthlyCount, error)
}
