package handler

import (
	"log/slog"
	"net/http"

	"retrokick/internal/delivery/http/response"
	"retrokick/internal/domain/entity"
	"retrokick/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler drives the shipping -> payment -> success flow over
// HTTP. The session is keyed by the same header as the cart.
type CheckoutHandler struct {
	uc     usecase.CheckoutUsecase
	logger *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{uc: uc, logger: logger}
}

// shippingRequest is the checkout address form. Phone and pincode are
// digits only, capped at 10 and 6 characters.
type shippingRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,numeric,max=10"`
	Address   string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	Pincode   string `json:"pincode" validate:"required,numeric,max=6"`
}

// confirmPaymentRequest carries the external gateway outcome.
type confirmPaymentRequest struct {
	Succeeded  bool   `json:"succeeded"`
	PaymentRef string `json:"paymentRef"`
}

// StartCheckout opens a checkout session for a non-empty cart.
func (h *CheckoutHandler) StartCheckout(c echo.Context) error {
	sessionID, err := cartSession(c)
	if err != nil || sessionID == "" {
		return err
	}

	output, err := h.uc.StartCheckout(c.Request().Context(), sessionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Checkout started")
}

// GetSession reports the current checkout state.
func (h *CheckoutHandler) GetSession(c echo.Context) error {
	sessionID, err := cartSession(c)
	if err != nil || sessionID == "" {
		return err
	}

	output, err := h.uc.GetSession(c.Request().Context(), sessionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Checkout session retrieved")
}

// SubmitShipping validates the address form and advances to payment.
func (h *CheckoutHandler) SubmitShipping(c echo.Context) error {
	sessionID, err := cartSession(c)
	if err != nil || sessionID == "" {
		return err
	}

	var req shippingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shipping input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.SubmitShipping(c.Request().Context(), usecase.SubmitShippingInput{
		SessionID: sessionID,
		Shipping: entity.ShippingInfo{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
			Address:   req.Address,
			City:      req.City,
			State:     req.State,
			Pincode:   req.Pincode,
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Shipping information saved")
}

// ConfirmPayment closes the flow: a success places the order and
// clears the cart, a failure leaves the session in payment for retry.
func (h *CheckoutHandler) ConfirmPayment(c echo.Context) error {
	sessionID, err := cartSession(c)
	if err != nil || sessionID == "" {
		return err
	}

	var req confirmPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}

	output, err := h.uc.ConfirmPayment(c.Request().Context(), usecase.ConfirmPaymentInput{
		SessionID:  sessionID,
		Succeeded:  req.Succeeded,
		PaymentRef: req.PaymentRef,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Order placed successfully")
}
