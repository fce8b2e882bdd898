package usecase

import (
	"context"

	"retrokick/internal/domain/entity"
)

// --- Input DTOs ---

// SubmitShippingInput carries the validated shipping form for a
// checkout session.
type SubmitShippingInput struct {
	SessionID string
	Shipping  entity.ShippingInfo
}

// ConfirmPaymentInput carries the gateway outcome back into the
// checkout flow. The gateway itself is opaque to this service.
type ConfirmPaymentInput struct {
	SessionID  string
	Succeeded  bool
	PaymentRef string
}

// --- Output DTOs ---

// CheckoutOutput reports the session state after a step, with the
// order attached once payment succeeds.
type CheckoutOutput struct {
	SessionID string
	State     entity.CheckoutState
	Order     *entity.Order
}

// CheckoutUsecase drives the shipping -> payment -> success flow.
// A failed payment keeps the session in payment and the cart intact,
// with no bound on retries.
type CheckoutUsecase interface {
	// StartCheckout opens a session for a non-empty cart.
	StartCheckout(ctx context.Context, cartSessionID string) (*CheckoutOutput, error)

	// GetSession reports the current state of a checkout session.
	GetSession(ctx context.Context, sessionID string) (*CheckoutOutput, error)

	// SubmitShipping stores the shipping form and advances to payment.
	SubmitShipping(ctx context.Context, input SubmitShippingInput) (*CheckoutOutput, error)

	// ConfirmPayment either places the order, clears the cart and
	// advances to success, or surfaces the failure and stays in payment.
	ConfirmPayment(ctx context.Context, input ConfirmPaymentInput) (*CheckoutOutput, error)
}
