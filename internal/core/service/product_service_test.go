package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/storefront/ecommerce-api/internal/core/domain"
	"github.com/storefront/ecommerce-api/internal/core/ports"
)

func TestProductService_List_QueryModes(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())
	ctx := context.Background()

	_, _ = svc.List(ctx, ports.ListProductsInput{Newest: true, Category: "shoes"})
	if !repo.lastFilter.NewestFirst || repo.lastFilter.Limit != 1 || repo.lastFilter.Category != "" {
		t.Fatalf("newest takes precedence, got %+v", repo.lastFilter)
	}

	_, _ = svc.List(ctx, ports.ListProductsInput{Category: "shoes"})
	if repo.lastFilter != (ports.ProductListFilter{Category: "shoes"}) {
		t.Fatalf("unexpected category filter %+v", repo.lastFilter)
	}

	_, _ = svc.List(ctx, ports.ListProductsInput{})
	if repo.lastFilter != (ports.ProductListFilter{}) {
		t.Fatalf("expected empty filter, got %+v", repo.lastFilter)
	}
}

func TestProductService_CreateAndDelete(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), zerolog.Nop())
	ctx := context.Background()

	p, err := svc.Create(ctx, domain.Product{ID: "client-supplied", Title: "Shoe", Price: 10})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if p.ID == "client-supplied" || p.CreatedAt.IsZero() || p.Categories == nil {
		t.Fatalf("unexpected product: %+v", p)
	}
	if _, err := svc.Create(ctx, domain.Product{Title: "Shoe", Price: 12}); !errors.Is(err, domain.ErrProductExists) {
		t.Fatalf("expected ErrProductExists, got %v", err)
	}

	if err := svc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(ctx, p.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
