package ports

import (
	"context"

	"github.com/storefront/ecommerce-api/internal/core/domain"
)

// UpdateUserInput is a partial profile update. Password is plaintext and is
// hashed by the service only when present.
type UpdateUserInput struct {
	Username *string
	Email    *string
	Password *string
	Role     *domain.Role
}

type UserService interface {
	Get(ctx context.Context, actor domain.Principal, id string) (*domain.User, error)
	List(ctx context.Context, newestOnly bool) ([]*domain.User, error)
	Stats(ctx context.Context) ([]domain.MonthlyCount, error)
	Update(ctx context.Context, actor domain.Principal, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, actor domain.Principal, id string) error
}
