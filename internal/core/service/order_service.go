package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/storefront/ecommerce-api/internal/core/domain"
	"github.com/storefront/ecommerce-api/internal/core/ports"
)

type OrderService struct {
	repo   ports.OrderRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewOrderService(repo ports.OrderRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, logger: logger, now: time.Now}
}

// Create places a pending order owned by the actor.
func (s *OrderService) Create(ctx context.Context, actor domain.Principal, input ports.CreateOrderInput) (*domain.Order, error) {
	now := s.now().UTC()
	order, err := s.repo.Create(ctx, &domain.Order{
		UserID:    actor.UserID,
		Products:  input.Products,
		Amount:    input.Amount,
		Address:   input.Address,
		Status:    domain.OrderPending,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create order")
		return nil, err
	}

	s.logger.Info().Str("order_id", order.ID).Str("user_id", actor.UserID).Float64("amount", order.Amount).Msg("order created")
	return order, nil
}

func (s *OrderService) ListByUser(ctx context.Context, actor domain.Principal, userID string) ([]*domain.Order, error) {
	if !actor.CanAccess(userID) {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByUserID(ctx, userID)
}

func (s *OrderService) List(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.List(ctx)
}

// Income sums order amounts per month, from the first day of the previous
// month onwards.
func (s *OrderService) Income(ctx context.Context) ([]domain.MonthlyIncome, error) {
	now := s.now().UTC()
	since := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, time.UTC)
	return s.repo.IncomeByMonth(ctx, since)
}

func (s *OrderService) Update(ctx context.Context, id string, patch domain.OrderPatch) (*domain.Order, error) {
	order, err := s.repo.UpdateByID(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("order_id", id).Str("status", string(order.Status)).Msg("order updated")
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrOrderNotFound
	}
	return nil
}
