package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "retrokick/internal/delivery/context"
	"retrokick/internal/domain/entity"
	domainerrors "retrokick/internal/domain/errors"
	"retrokick/internal/domain/repository"
	"retrokick/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// checkoutService implements the CheckoutUsecase interface. Sessions
// live in memory: checkout is a short-lived flow and an abandoned
// session costs nothing to lose on restart.
type checkoutService struct {
	cartStore repository.CartStore
	orders    usecase.OrderUsecase
	logger    *slog.Logger

	mu       sync.Mutex
	sessions map[string]*entity.CheckoutSession
	placing  map[string]bool // sessions with an order placement in flight
}

// CheckoutServiceParams holds dependencies for checkoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	CartStore repository.CartStore
	Orders    usecase.OrderUsecase
	Logger    *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		cartStore: params.CartStore,
		orders:    params.Orders,
		logger:    params.Logger,
		sessions:  make(map[string]*entity.CheckoutSession),
		placing:   make(map[string]bool),
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// StartCheckout opens (or restarts) a session for a non-empty cart.
func (srv *checkoutService) StartCheckout(ctx context.Context, cartSessionID string) (*usecase.CheckoutOutput, error) {
	cart, err := srv.cartStore.Load(ctx, cartSessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart for checkout")
	}
	if cart.IsEmpty() {
		return nil, domainerrors.ErrCartEmpty
	}

	session := entity.NewCheckoutSession(cartSessionID)

	srv.mu.Lock()
	srv.sessions[cartSessionID] = session
	srv.mu.Unlock()

	srv.log(ctx).Debug("Checkout started", slog.String("sessionID", cartSessionID))

	return checkoutOutput(session, nil), nil
}

// GetSession reports the current state of a checkout session.
func (srv *checkoutService) GetSession(_ context.Context, sessionID string) (*usecase.CheckoutOutput, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	session, err := srv.sessionLocked(sessionID)
	if err != nil {
		return nil, err
	}

	return checkoutOutput(session, nil), nil
}

// SubmitShipping stores the shipping form and advances to payment.
// Resubmitting from payment is allowed so the shopper can correct the
// address before paying.
func (srv *checkoutService) SubmitShipping(ctx context.Context, input usecase.SubmitShippingInput) (*usecase.CheckoutOutput, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	session, err := srv.sessionLocked(input.SessionID)
	if err != nil {
		return nil, err
	}

	if session.State == entity.CheckoutStateSuccess {
		return nil, domainerrors.ErrCheckoutInvalidState.WrapMessage("checkout already completed")
	}

	session.Shipping = input.Shipping
	session.State = entity.CheckoutStatePayment

	srv.log(ctx).Debug("Shipping submitted", slog.String("sessionID", input.SessionID))

	return checkoutOutput(session, nil), nil
}

// ConfirmPayment closes the flow. A failed attempt surfaces the error
// and leaves the session in payment with the cart untouched, so the
// shopper can retry without limit.
func (srv *checkoutService) ConfirmPayment(ctx context.Context, input usecase.ConfirmPaymentInput) (*usecase.CheckoutOutput, error) {
	// The lock only covers session-map bookkeeping. Cart loading and
	// order placement run outside it, so one shopper's slow payment
	// never stalls another session's checkout steps.
	srv.mu.Lock()
	session, err := srv.sessionLocked(input.SessionID)
	if err != nil {
		srv.mu.Unlock()

		return nil, err
	}

	if session.State != entity.CheckoutStatePayment {
		srv.mu.Unlock()

		return nil, domainerrors.ErrCheckoutInvalidState.WrapMessage("payment is only accepted from the payment step")
	}

	if srv.placing[input.SessionID] {
		srv.mu.Unlock()

		return nil, domainerrors.ErrCheckoutInvalidState.WrapMessage("payment already in progress for this session")
	}

	if !input.Succeeded {
		srv.mu.Unlock()
		srv.log(ctx).Warn("Payment attempt failed", slog.String("sessionID", input.SessionID))

		return nil, domainerrors.ErrPaymentFailed
	}

	srv.placing[input.SessionID] = true
	shipping := session.Shipping
	srv.mu.Unlock()

	defer func() {
		srv.mu.Lock()
		delete(srv.placing, input.SessionID)
		srv.mu.Unlock()
	}()

	cart, err := srv.cartStore.Load(ctx, input.SessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart for payment")
	}
	if cart.IsEmpty() {
		return nil, domainerrors.ErrCartEmpty
	}

	order, err := srv.orders.PlaceOrder(ctx, usecase.PlaceOrderInput{
		Items:      cart.Items,
		Shipping:   shipping,
		PaymentRef: input.PaymentRef,
	})
	if err != nil {
		// The charge went through but the order did not: keep the
		// session in payment and let the shopper's retry reuse the
		// payment reference.
		return nil, err
	}

	if err := srv.cartStore.Delete(ctx, input.SessionID); err != nil {
		srv.log(ctx).Warn("Failed to clear cart after order",
			slog.String("sessionID", input.SessionID), slog.Any("error", err))
	}

	srv.mu.Lock()
	session.State = entity.CheckoutStateSuccess
	session.OrderID = order.OrderID
	output := checkoutOutput(session, order)
	srv.mu.Unlock()

	srv.log(ctx).Info("Checkout completed",
		slog.String("sessionID", input.SessionID), slog.String("orderID", order.OrderID))

	return output, nil
}

// sessionLocked looks up a session; the caller must hold srv.mu.
func (srv *checkoutService) sessionLocked(sessionID string) (*entity.CheckoutSession, error) {
	session, ok := srv.sessions[sessionID]
	if !ok {
		return nil, domainerrors.ErrCheckoutInvalidState.WrapMessage("no active checkout for this session")
	}

	return session, nil
}

func checkoutOutput(session *entity.CheckoutSession, order *entity.Order) *usecase.CheckoutOutput {
	return &usecase.CheckoutOutput{
		SessionID: session.SessionID,
		State:     session.State,
		Order:     order,
	}
}
