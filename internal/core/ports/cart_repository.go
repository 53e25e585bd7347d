package ports

import (
	"context"

	"github.com/storefront/ecommerce-api/internal/core/domain"
)

type CartRepository interface {
	Create(ctx context.Context, c *domain.Cart) (*domain.Cart, error)
	FindByID(ctx context.Context, id string) (*domain.Cart, error)
	FindByUserID(ctx context.Context, userID string) (*domain.Cart, error)
	List(ctx context.Context) ([]*domain.Cart, error)
	// ReplaceItems overwrites the cart contents and returns the updated cart.
	ReplaceItems(ctx context.Context, id string, items []domain.LineItem) (*domain.Cart, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}
