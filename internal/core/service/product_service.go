package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/storefront/ecommerce-api/internal/core/domain"
	"github.com/storefront/ecommerce-api/internal/core/ports"
)

type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

func (s *ProductService) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	now := time.Now().UTC()
	p.ID = ""
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Categories == nil {
		p.Categories = []string{}
	}

	created, err := s.repo.Create(ctx, &p)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("product_id", created.ID).Str("title", created.Title).Msg("product created")
	return created, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns the newest product when Newest is set, the products of a
// category when Category is set, and the whole catalogue otherwise.
func (s *ProductService) List(ctx context.Context, input ports.ListProductsInput) ([]*domain.Product, error) {
	var f ports.ProductListFilter
	switch {
	case input.Newest:
		f.NewestFirst = true
		f.Limit = 1
	case input.Category != "":
		f.Category = input.Category
	}
	return s.repo.List(ctx, f)
}

func (s *ProductService) Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	return s.repo.UpdateByID(ctx, id, patch)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrProductNotFound
	}
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}
