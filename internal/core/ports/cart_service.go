package ports

import (
	"context"

	"github.com/storefront/ecommerce-api/internal/core/domain"
)

// CreateCartInput carries a new cart. UserID is honoured only for admins;
// everyone else always creates their own cart.
type CreateCartInput struct {
	UserID   string
	Products []domain.LineItem
}

type CartService interface {
	Create(ctx context.Context, actor domain.Principal, input CreateCartInput) (*domain.Cart, error)
	GetByUser(ctx context.Context, actor domain.Principal, userID string) (*domain.Cart, error)
	List(ctx context.Context) ([]*domain.Cart, error)
	Update(ctx context.Context, actor domain.Principal, id string, items []domain.LineItem) (*domain.Cart, error)
	Delete(ctx context.Context, actor domain.Principal, id string) error
}
