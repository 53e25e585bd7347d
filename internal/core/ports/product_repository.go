package ports

import (
	"context"

	"github.com/storefront/ecommerce-api/internal/core/domain"
)

// ProductListFilter carries the catalogue query parameters.
type ProductListFilter struct {
	Category string // optional: only products tagged with this category
	Limit    int    // zero = no limit
	// NewestFirst sorts by creation time descending.
	NewestFirst bool
}

type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, filter ProductListFilter) ([]*domain.Product, error)
	UpdateByID(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}
