package ports

import (
	"context"

	"github.com/storefront/ecommerce-api/internal/core/domain"
)

// ListProductsInput mirrors the catalogue query string.
type ListProductsInput struct {
	Newest   bool
	Category string
}

type ProductService interface {
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, input ListProductsInput) ([]*domain.Product, error)
	Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
