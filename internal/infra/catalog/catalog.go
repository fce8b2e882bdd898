// Package catalog holds the in-memory jersey catalog. The catalog is
// seed data loaded at construction and read-only afterwards.
package catalog

import (
	"context"
	"slices"

	"retrokick/internal/domain/entity"
	"retrokick/internal/domain/repository"
)

type memoryCatalog struct {
	byID  map[string]*entity.Product
	order []*entity.Product
}

// New builds the catalog from the built-in seed data.
func New() repository.ProductCatalog {
	return newFromSeed(seedProducts)
}

func newFromSeed(seed []entity.Product) repository.ProductCatalog {
	c := &memoryCatalog{
		byID:  make(map[string]*entity.Product, len(seed)),
		order: make([]*entity.Product, 0, len(seed)),
	}
	for i := range seed {
		p := &seed[i]
		c.byID[p.ID] = p
		c.order = append(c.order, p)
	}

	return c
}

// FindByID retrieves a single product by its catalog id. The result is
// a copy; callers can mutate it without touching the seed data.
func (c *memoryCatalog) FindByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	return cloneProduct(p), nil
}

// List returns copies of the catalog in seed order, optionally filtered
// by category.
func (c *memoryCatalog) List(_ context.Context, category entity.Category) ([]*entity.Product, error) {
	var filtered []*entity.Product
	for _, p := range c.order {
		if category == "" || p.Category == category {
			filtered = append(filtered, cloneProduct(p))
		}
	}

	return filtered, nil
}

func cloneProduct(p *entity.Product) *entity.Product {
	clone := *p
	clone.Sizes = slices.Clone(p.Sizes)

	return &clone
}
