package repository

import (
	"context"
	"errors"

	"retrokick/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductCatalog exposes the read-only jersey catalog. The catalog is
// seed data; there are no mutating operations.
type ProductCatalog interface {
	// FindByID retrieves a single product by its catalog id.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// List returns the catalog in seed order, optionally filtered by
	// category. An empty category returns everything.
	List(ctx context.Context, category entity.Category) ([]*entity.Product, error)
}
