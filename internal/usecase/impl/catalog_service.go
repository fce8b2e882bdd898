// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	"retrokick/internal/domain/entity"
	domainerrors "retrokick/internal/domain/errors"
	"retrokick/internal/domain/repository"
	"retrokick/internal/usecase"

	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalog repository.ProductCatalog
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(catalog repository.ProductCatalog) usecase.CatalogUsecase {
	return &catalogService{catalog: catalog}
}

// ListProducts returns the catalog, optionally filtered by category.
func (srv *catalogService) ListProducts(ctx context.Context, category string) ([]*entity.Product, error) {
	cat := entity.Category(category)
	if category != "" && !cat.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown category: " + category)
	}

	products, err := srv.catalog.List(ctx, cat)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct returns a single product by id.
func (srv *catalogService) GetProduct(ctx context.Context, productID string) (*entity.Product, error) {
	product, err := srv.catalog.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}
