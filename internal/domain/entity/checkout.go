package entity

// CheckoutState is the step a checkout session is currently in.
// shipping -> payment -> success; a failed payment attempt stays in
// payment so the shopper can retry.
type CheckoutState string

const (
	CheckoutStateShipping CheckoutState = "shipping"
	CheckoutStatePayment  CheckoutState = "payment"
	CheckoutStateSuccess  CheckoutState = "success"
)

// CheckoutSession tracks one shopper's progress through checkout.
// It is keyed by the same session id as the cart.
type CheckoutSession struct {
	SessionID string
	State     CheckoutState
	Shipping  ShippingInfo // Valid once State has left shipping.
	OrderID   string       // Set when the session reaches success.
}

// NewCheckoutSession starts a session in the shipping step.
func NewCheckoutSession(sessionID string) *CheckoutSession {
	return &CheckoutSession{
		SessionID: sessionID,
		State:     CheckoutStateShipping,
	}
}
