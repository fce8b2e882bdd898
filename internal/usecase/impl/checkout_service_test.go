package impl

import (
	"context"
	"testing"

	"retrokick/internal/domain/entity"
	domainerrors "retrokick/internal/domain/errors"
	mockRepo "retrokick/internal/mocks/repository"
	mockUC "retrokick/internal/mocks/usecase"
	"retrokick/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// checkoutServiceFixtures holds all test dependencies for checkout service tests.
type checkoutServiceFixtures struct {
	service   usecase.CheckoutUsecase
	cartStore *mockRepo.MockCartStore
	orders    *mockUC.MockOrderUsecase
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	cartStore := mockRepo.NewMockCartStore(t)
	orders := mockUC.NewMockOrderUsecase(t)

	svc := NewCheckoutService(CheckoutServiceParams{
		CartStore: cartStore,
		Orders:    orders,
		Logger:    newDiscardLogger(),
	})

	return checkoutServiceFixtures{service: svc, cartStore: cartStore, orders: orders}
}

func filledCart(sessionID string) *entity.Cart {
	cart := &entity.Cart{SessionID: sessionID}
	cart.AddItem(entity.CartItem{ProductID: "1", Name: "Barcelona Home Jersey", UnitPrice: 6999, Size: "M", Quantity: 1})

	return cart
}

func TestCheckoutService_FullFlow(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.cartStore.EXPECT().Load(ctx, "sess-1").Return(filledCart("sess-1"), nil)

	started, err := fx.service.StartCheckout(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStateShipping, started.State)

	shipped, err := fx.service.SubmitShipping(ctx, usecase.SubmitShippingInput{
		SessionID: "sess-1",
		Shipping:  testShipping(),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStatePayment, shipped.State)

	placed := &entity.Order{OrderID: "RK-TEST", Status: entity.StatusConfirmed}
	fx.cartStore.EXPECT().Load(ctx, "sess-1").Return(filledCart("sess-1"), nil)
	fx.orders.EXPECT().
		PlaceOrder(ctx, usecase.PlaceOrderInput{
			Items:      filledCart("sess-1").Items,
			Shipping:   testShipping(),
			PaymentRef: "pay_42",
		}).
		Return(placed, nil)
	fx.cartStore.EXPECT().Delete(ctx, "sess-1").Return(nil)

	done, err := fx.service.ConfirmPayment(ctx, usecase.ConfirmPaymentInput{
		SessionID:  "sess-1",
		Succeeded:  true,
		PaymentRef: "pay_42",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStateSuccess, done.State)
	require.NotNil(t, done.Order)
	assert.Equal(t, "RK-TEST", done.Order.OrderID)

	// The session remembers the completed state.
	got, err := fx.service.GetSession(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStateSuccess, got.State)
}

func TestCheckoutService_StartCheckout_EmptyCart(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.cartStore.EXPECT().Load(ctx, "sess-1").Return(&entity.Cart{SessionID: "sess-1"}, nil)

	output, err := fx.service.StartCheckout(ctx, "sess-1")

	require.ErrorIs(t, err, domainerrors.ErrCartEmpty)
	assert.Nil(t, output)
}

func TestCheckoutService_FailedPaymentAllowsRetry(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.cartStore.EXPECT().Load(ctx, "sess-1").Return(filledCart("sess-1"), nil)
	_, err := fx.service.StartCheckout(ctx, "sess-1")
	require.NoError(t, err)

	_, err = fx.service.SubmitShipping(ctx, usecase.SubmitShippingInput{
		SessionID: "sess-1",
		Shipping:  testShipping(),
	})
	require.NoError(t, err)

	// First attempt fails: still in payment, cart untouched.
	_, err = fx.service.ConfirmPayment(ctx, usecase.ConfirmPaymentInput{SessionID: "sess-1", Succeeded: false})
	require.ErrorIs(t, err, domainerrors.ErrPaymentFailed)

	got, err := fx.service.GetSession(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStatePayment, got.State)

	// Retry succeeds.
	placed := &entity.Order{OrderID: "RK-RETRY"}
	fx.cartStore.EXPECT().Load(ctx, "sess-1").Return(filledCart("sess-1"), nil)
	fx.orders.EXPECT().PlaceOrder(ctx, mock.Anything).Return(placed, nil)
	fx.cartStore.EXPECT().Delete(ctx, "sess-1").Return(nil)

	done, err := fx.service.ConfirmPayment(ctx, usecase.ConfirmPaymentInput{
		SessionID:  "sess-1",
		Succeeded:  true,
		PaymentRef: "pay_retry",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStateSuccess, done.State)
}

func TestCheckoutService_PaymentRequiresPaymentStep(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.cartStore.EXPECT().Load(ctx, "sess-1").Return(filledCart("sess-1"), nil)
	_, err := fx.service.StartCheckout(ctx, "sess-1")
	require.NoError(t, err)

	// Still in shipping: payment is rejected.
	output, err := fx.service.ConfirmPayment(ctx, usecase.ConfirmPaymentInput{SessionID: "sess-1", Succeeded: true})

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrCheckoutInvalidState.ErrorCode(), appErr.ErrorCode())
}

func TestCheckoutService_SlowPaymentDoesNotSerializeSessions(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	// Two independent sessions, both at the payment step.
	for _, id := range []string{"sess-a", "sess-b"} {
		fx.cartStore.EXPECT().Load(ctx, id).Return(filledCart(id), nil).Once()
		_, err := fx.service.StartCheckout(ctx, id)
		require.NoError(t, err)

		_, err = fx.service.SubmitShipping(ctx, usecase.SubmitShippingInput{SessionID: id, Shipping: testShipping()})
		require.NoError(t, err)
	}

	placing := make(chan struct{})
	release := make(chan struct{})

	fx.cartStore.EXPECT().Load(ctx, "sess-a").Return(filledCart("sess-a"), nil).Once()
	fx.orders.EXPECT().
		PlaceOrder(ctx, mock.Anything).
		RunAndReturn(func(context.Context, usecase.PlaceOrderInput) (*entity.Order, error) {
			close(placing)
			<-release

			return &entity.Order{OrderID: "RK-SLOW", Status: entity.StatusConfirmed}, nil
		}).
		Once()
	fx.cartStore.EXPECT().Delete(ctx, "sess-a").Return(nil).Once()

	confirmed := make(chan error, 1)
	go func() {
		_, err := fx.service.ConfirmPayment(ctx, usecase.ConfirmPaymentInput{
			SessionID:  "sess-a",
			Succeeded:  true,
			PaymentRef: "pay_a",
		})
		confirmed <- err
	}()

	<-placing

	// Another session's checkout keeps moving while the order is in flight.
	got, err := fx.service.GetSession(ctx, "sess-b")
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStatePayment, got.State)

	// A second confirm on the busy session is rejected instead of
	// placing a duplicate order.
	_, err = fx.service.ConfirmPayment(ctx, usecase.ConfirmPaymentInput{
		SessionID:  "sess-a",
		Succeeded:  true,
		PaymentRef: "pay_a",
	})
	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrCheckoutInvalidState.ErrorCode(), appErr.ErrorCode())

	close(release)
	require.NoError(t, <-confirmed)

	got, err = fx.service.GetSession(ctx, "sess-a")
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStateSuccess, got.State)
}

func TestCheckoutService_UnknownSession(t *testing.T) {
	fx := createTestCheckoutService(t)

	output, err := fx.service.GetSession(context.Background(), "ghost")

	require.Error(t, err)
	assert.Nil(t, output)
}
