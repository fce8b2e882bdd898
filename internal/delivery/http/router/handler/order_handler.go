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

// OrderHandler serves order placement, lookup and the admin surfaces.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: logger}
}

// placeOrderRequest is the direct order-creation body: the cart
// snapshot taken by the client plus the shipping form. Monetary totals
// are always recomputed server-side.
type placeOrderRequest struct {
	Items      []entity.CartItem `json:"items" validate:"required,min=1"`
	Shipping   shippingRequest   `json:"shipping" validate:"required"`
	PaymentRef string            `json:"paymentRef"`
}

// updateStatusRequest carries the replacement order status.
type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// PlaceOrder creates an order from a client-held cart snapshot.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.uc.PlaceOrder(c.Request().Context(), usecase.PlaceOrderInput{
		Items: req.Items,
		Shipping: entity.ShippingInfo{
			FirstName: req.Shipping.FirstName,
			LastName:  req.Shipping.LastName,
			Email:     req.Shipping.Email,
			Phone:     req.Shipping.Phone,
			Address:   req.Shipping.Address,
			City:      req.Shipping.City,
			State:     req.Shipping.State,
			Pincode:   req.Shipping.Pincode,
		},
		PaymentRef: req.PaymentRef,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"orderId": order.OrderID,
		"order":   order,
	}, "Order placed successfully")
}

// ListOrders returns every order, newest first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// GetOrder returns a single order by its customer-facing id.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.uc.GetOrder(c.Request().Context(), c.Param("orderId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// UpdateStatus replaces an order's status.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.uc.UpdateStatus(c.Request().Context(), usecase.UpdateOrderStatusInput{
		OrderID: c.Param("orderId"),
		Status:  req.Status,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated")
}

// Stats returns the admin dashboard aggregates.
func (h *OrderHandler) Stats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"totalOrders":     stats.TotalOrders,
		"totalRevenue":    stats.TotalRevenue,
		"pendingOrders":   stats.PendingOrders,
		"completedOrders": stats.CompletedOrders,
		"recentOrders":    stats.RecentOrders,
	}, "Stats retrieved successfully")
}
