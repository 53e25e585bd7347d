package ports

import (
	"context"
	"time"

	"github.com/storefront/ecommerce-api/internal/core/domain"
)

type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindByUserID(ctx context.Context, userID string) ([]*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	UpdateByID(ctx context.Context, id string, patch domain.OrderPatch) (*domain.Order, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
	// MarkPaid records the payment reference and moves a pending order to
	// OrderPaid. An order that is no longer pending yields ErrOrderNotPayable.
	MarkPaid(ctx context.Context, id, paymentID string) error
	// IncomeByMonth sums order amounts created at or after since per year and month.
	IncomeByMonth(ctx context.Context, since time.Time) ([]domain.MonthlyIncome, error)
}
