package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/storefront/ecommerce-api/internal/core/domain"
	"github.com/storefront/ecommerce-api/internal/core/ports"
)

type CartService struct {
	repo   ports.CartRepository
	logger zerolog.Logger
}

func NewCartService(repo ports.CartRepository, logger zerolog.Logger) *CartService {
	return &CartService{repo: repo, logger: logger}
}

func (s *CartService) Create(ctx context.Context, actor domain.Principal, input ports.CreateCartInput) (*domain.Cart, error) {
	owner := actor.UserID
	if actor.IsAdmin() && input.UserID != "" {
		owner = input.UserID
	}

	now := time.Now().UTC()
	cart, err := s.repo.Create(ctx, &domain.Cart{
		UserID:    owner,
		Products:  input.Products,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("cart_id", cart.ID).Str("user_id", owner).Msg("cart created")
	return cart, nil
}

func (s *CartService) GetByUser(ctx context.Context, actor domain.Principal, userID string) (*domain.Cart, error) {
	if !actor.CanAccess(userID) {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByUserID(ctx, userID)
}

func (s *CartService) List(ctx context.Context) ([]*domain.Cart, error) {
	return s.repo.List(ctx)
}

func (s *CartService) Update(ctx context.Context, actor domain.Principal, id string, items []domain.LineItem) (*domain.Cart, error) {
	if _, err := s.owned(ctx, actor, id); err != nil {
		return nil, err
	}
	return s.repo.ReplaceItems(ctx, id, items)
}

func (s *CartService) Delete(ctx context.Context, actor domain.Principal, id string) error {
	if _, err := s.owned(ctx, actor, id); err != nil {
		return err
	}
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrCartNotFound
	}
	return nil
}

// owned loads the cart and checks the actor may act on it.
func (s *CartService) owned(ctx context.Context, actor domain.Principal, id string) (*domain.Cart, error) {
	cart, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(cart.UserID) {
		return nil, domain.ErrForbidden
	}
	return cart, nil
}
