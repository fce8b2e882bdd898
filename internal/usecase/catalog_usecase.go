// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"retrokick/internal/domain/entity"
)

// CatalogUsecase defines the read operations over the jersey catalog.
type CatalogUsecase interface {
	// ListProducts returns the catalog, optionally filtered by category.
	// An empty category means no filter.
	ListProducts(ctx context.Context, category string) ([]*entity.Product, error)

	// GetProduct returns a single product by id.
	GetProduct(ctx context.Context, productID string) (*entity.Product, error)
}
