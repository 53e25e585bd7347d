package ports

import (
	"context"

	"github.com/storefront/ecommerce-api/internal/core/domain"
)

// CreateOrderInput carries a new order placed by the acting user.
type CreateOrderInput struct {
	Products []domain.LineItem
	Amount   float64
	Address  domain.Address
}

type OrderService interface {
	Create(ctx context.Context, actor domain.Principal, input CreateOrderInput) (*domain.Order, error)
	ListByUser(ctx context.Context, actor domain.Principal, userID string) ([]*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	Income(ctx context.Context) ([]domain.MonthlyIncome, error)
	Update(ctx context.Context, id string, patch domain.OrderPatch) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}
