package impl

import (
	"context"
	"testing"

	"retrokick/internal/domain/entity"
	domainerrors "retrokick/internal/domain/errors"
	"retrokick/internal/domain/repository"
	mockRepo "retrokick/internal/mocks/repository"
	"retrokick/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service usecase.CartUsecase
	store   *mockRepo.MockCartStore
	catalog *mockRepo.MockProductCatalog
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	store := mockRepo.NewMockCartStore(t)
	catalog := mockRepo.NewMockProductCatalog(t)

	svc := NewCartService(CartServiceParams{
		Store:   store,
		Catalog: catalog,
		Logger:  newDiscardLogger(),
	})

	return cartServiceFixtures{service: svc, store: store, catalog: catalog}
}

func testProduct() *entity.Product {
	return &entity.Product{
		ID:       "1",
		Name:     "Barcelona Home Jersey",
		Price:    6999,
		Category: entity.CategoryClub,
		Sizes:    []string{"S", "M", "L", "XL"},
	}
}

func TestCartService_AddItem_MergesSameProductAndSize(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	existing := &entity.Cart{SessionID: "sess-1"}
	existing.AddItem(entity.CartItem{ProductID: "1", Name: "Barcelona Home Jersey", UnitPrice: 6999, Size: "M", Quantity: 1})

	fx.catalog.EXPECT().FindByID(ctx, "1").Return(testProduct(), nil)
	fx.store.EXPECT().Load(ctx, "sess-1").Return(existing, nil)
	fx.store.EXPECT().Save(ctx, existing).Return(nil)

	output, err := fx.service.AddItem(ctx, usecase.AddCartItemInput{
		SessionID: "sess-1",
		ProductID: "1",
		Size:      "M",
		Quantity:  2,
	})

	require.NoError(t, err)
	require.Len(t, output.Cart.Items, 1)
	assert.Equal(t, 3, output.Cart.Items[0].Quantity)
	assert.Equal(t, 3, output.TotalItems)
	assert.InDelta(t, 3*6999.0, output.TotalPrice, 0.001)
}

func TestCartService_AddItem_DifferentSizeIsSeparateLine(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	existing := &entity.Cart{SessionID: "sess-1"}
	existing.AddItem(entity.CartItem{ProductID: "1", Name: "Barcelona Home Jersey", UnitPrice: 6999, Size: "M", Quantity: 1})

	fx.catalog.EXPECT().FindByID(ctx, "1").Return(testProduct(), nil)
	fx.store.EXPECT().Load(ctx, "sess-1").Return(existing, nil)
	fx.store.EXPECT().Save(ctx, existing).Return(nil)

	output, err := fx.service.AddItem(ctx, usecase.AddCartItemInput{
		SessionID: "sess-1",
		ProductID: "1",
		Size:      "L",
		Quantity:  1,
	})

	require.NoError(t, err)
	assert.Len(t, output.Cart.Items, 2)
	assert.Equal(t, 2, output.TotalItems)
}

func TestCartService_AddItem_RejectsUnknownSize(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.catalog.EXPECT().FindByID(ctx, "1").Return(testProduct(), nil)

	output, err := fx.service.AddItem(ctx, usecase.AddCartItemInput{
		SessionID: "sess-1",
		ProductID: "1",
		Size:      "XXS",
		Quantity:  1,
	})

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrSizeUnavailable.ErrorCode(), appErr.ErrorCode())
}

func TestCartService_AddItem_RejectsUnknownProduct(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.catalog.EXPECT().FindByID(ctx, "404").Return(nil, repository.ErrProductNotFound)

	output, err := fx.service.AddItem(ctx, usecase.AddCartItemInput{
		SessionID: "sess-1",
		ProductID: "404",
		Size:      "M",
		Quantity:  1,
	})

	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	assert.Nil(t, output)
}

func TestCartService_AddItem_RejectsNonPositiveQuantity(t *testing.T) {
	fx := createTestCartService(t)

	output, err := fx.service.AddItem(context.Background(), usecase.AddCartItemInput{
		SessionID: "sess-1",
		ProductID: "1",
		Size:      "M",
		Quantity:  0,
	})

	require.Error(t, err)
	assert.Nil(t, output)
}

func TestCartService_UpdateQuantity_ZeroRemovesLine(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	existing := &entity.Cart{SessionID: "sess-1"}
	existing.AddItem(entity.CartItem{ProductID: "1", Name: "Barcelona Home Jersey", UnitPrice: 6999, Size: "M", Quantity: 2})

	fx.store.EXPECT().Load(ctx, "sess-1").Return(existing, nil)
	fx.store.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)

	output, err := fx.service.UpdateQuantity(ctx, usecase.UpdateCartItemInput{
		SessionID: "sess-1",
		ProductID: "1",
		Size:      "M",
		Quantity:  0,
	})

	require.NoError(t, err)
	assert.True(t, output.Cart.IsEmpty())
}

func TestCartService_RemoveItem_AbsentLineIsNoOp(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	existing := &entity.Cart{SessionID: "sess-1"}
	existing.AddItem(entity.CartItem{ProductID: "1", Name: "Barcelona Home Jersey", UnitPrice: 6999, Size: "M", Quantity: 1})

	fx.store.EXPECT().Load(ctx, "sess-1").Return(existing, nil)
	fx.store.EXPECT().Save(ctx, existing).Return(nil)

	output, err := fx.service.RemoveItem(ctx, usecase.RemoveCartItemInput{
		SessionID: "sess-1",
		ProductID: "99",
		Size:      "M",
	})

	require.NoError(t, err)
	assert.Len(t, output.Cart.Items, 1)
}

func TestCartService_ClearCart(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.store.EXPECT().Delete(ctx, "sess-1").Return(nil)

	require.NoError(t, fx.service.ClearCart(ctx, "sess-1"))
}
