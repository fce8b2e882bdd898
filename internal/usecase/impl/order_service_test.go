package impl

import (
	"context"
	"strings"
	"testing"

	"retrokick/internal/domain/entity"
	domainerrors "retrokick/internal/domain/errors"
	"retrokick/internal/domain/repository"
	mockRepo "retrokick/internal/mocks/repository"
	mockSvc "retrokick/internal/mocks/service"
	"retrokick/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service    usecase.OrderUsecase
	txManager  *mockRepo.MockTransactionManager
	orderRepo  *mockRepo.MockOrderRepository
	dispatcher *mockSvc.MockMailDispatcher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	dispatcher := mockSvc.NewMockMailDispatcher(t)

	svc := NewOrderService(OrderServiceParams{
		TxManager:  txManager,
		OrderRepo:  orderRepo,
		Dispatcher: dispatcher,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:    svc,
		txManager:  txManager,
		orderRepo:  orderRepo,
		dispatcher: dispatcher,
	}
}

func testShipping() entity.ShippingInfo {
	return entity.ShippingInfo{
		FirstName: "Asha", LastName: "Rao", Email: "asha@example.com",
		Phone: "9900112233", Address: "12 MG Road", City: "Bengaluru",
		State: "Karnataka", Pincode: "560001",
	}
}

func TestOrderService_PlaceOrder_ComputesTotalsAndNotifies(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := usecase.PlaceOrderInput{
		Items: []entity.CartItem{
			{ProductID: "1", Name: "Barcelona Home Jersey", UnitPrice: 6999, Size: "M", Quantity: 1},
		},
		Shipping:   testShipping(),
		PaymentRef: "pay_9xK2",
	}

	var persisted *entity.Order
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					persisted = order
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.dispatcher.EXPECT().Enqueue(mock.Anything).Return().Times(2)

	order, err := fx.service.PlaceOrder(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, persisted.OrderID, order.OrderID)
	assert.True(t, strings.HasPrefix(order.OrderID, "RK-"))
	assert.Equal(t, entity.StatusConfirmed, order.Status)
	assert.InDelta(t, 6999.0, order.Subtotal, 0.001)
	assert.InDelta(t, 0.0, order.ShippingCost, 0.001) // 6999 > 5000
	assert.InDelta(t, 1259.82, order.Tax, 0.001)
	assert.InDelta(t, 8258.82, order.GrandTotal, 0.001)
	assert.Equal(t, "pay_9xK2", order.PaymentRef)
	assert.Equal(t, "asha@example.com", order.CustomerEmail)
}

func TestOrderService_PlaceOrder_ShippingFeeAtThreshold(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := usecase.PlaceOrderInput{
		Items: []entity.CartItem{
			{ProductID: "9", Name: "Practice Kit", UnitPrice: 2500, Size: "M", Quantity: 2},
		},
		Shipping: testShipping(),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(nil)
	fx.dispatcher.EXPECT().Enqueue(mock.Anything).Return().Times(2)

	order, err := fx.service.PlaceOrder(ctx, input)

	require.NoError(t, err)
	// Free shipping only strictly above the threshold.
	assert.InDelta(t, 199.0, order.ShippingCost, 0.001)
	assert.InDelta(t, 5000+199+900, order.GrandTotal, 0.001)
}

func TestOrderService_PlaceOrder_EmptyCart(t *testing.T) {
	fx := createTestOrderService(t)

	order, err := fx.service.PlaceOrder(context.Background(), usecase.PlaceOrderInput{
		Shipping: testShipping(),
	})

	require.ErrorIs(t, err, domainerrors.ErrCartEmpty)
	assert.Nil(t, order)
}

func TestOrderService_PlaceOrder_NoMailOnStorageFailure(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := usecase.PlaceOrderInput{
		Items: []entity.CartItem{
			{ProductID: "1", Name: "Barcelona Home Jersey", UnitPrice: 6999, Size: "M", Quantity: 1},
		},
		Shipping: testShipping(),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(domainerrors.NewDatabaseExecuteError(assert.AnError, "failed to create order"))

	order, err := fx.service.PlaceOrder(ctx, input)

	require.Error(t, err)
	assert.Nil(t, order)
	// No Enqueue expectations were set: an enqueued mail would fail the mock.
}

func TestOrderService_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	order, err := fx.service.UpdateStatus(context.Background(), usecase.UpdateOrderStatusInput{
		OrderID: "RK-1",
		Status:  "teleported",
	})

	require.Error(t, err)
	assert.Nil(t, order)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidOrderStatus.ErrorCode(), appErr.ErrorCode())
}

func TestOrderService_UpdateStatus_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().
				UpdateStatus(ctx, "RK-missing", entity.StatusShipped).
				Return(nil, repository.ErrOrderNotFound)

			_ = fn(mockFactory)
		}).
		Return(repository.ErrOrderNotFound)

	order, err := fx.service.UpdateStatus(ctx, usecase.UpdateOrderStatusInput{
		OrderID: "RK-missing",
		Status:  "shipped",
	})

	require.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	assert.Nil(t, order)
}

func TestOrderService_Stats(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().
		Stats(ctx, 5).
		Return(&repository.OrderStats{
			TotalOrders:     12,
			TotalRevenue:    98765.43,
			PendingOrders:   2,
			CompletedOrders: 7,
			RecentOrders:    []*entity.Order{{OrderID: "RK-A"}, {OrderID: "RK-B"}},
		}, nil)

	stats, err := fx.service.Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalOrders)
	assert.InDelta(t, 98765.43, stats.TotalRevenue, 0.001)
	assert.Equal(t, int64(2), stats.PendingOrders)
	assert.Equal(t, int64(7), stats.CompletedOrders)
	require.Len(t, stats.RecentOrders, 2)
	assert.Equal(t, "RK-A", stats.RecentOrders[0].OrderID)
}
