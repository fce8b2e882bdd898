package handler

import (
	"log/slog"
	"net/http"

	"retrokick/internal/delivery/http/response"
	"retrokick/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HeaderCartSession identifies the shopper's cart across requests.
// The storefront client generates the value once and sends it on every
// cart and checkout call.
const HeaderCartSession = "X-Cart-Session"

// CartHandler serves the cart aggregate endpoints.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{uc: uc, logger: logger}
}

// addCartItemRequest is the body for adding a jersey to the cart.
type addCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

// updateCartItemRequest is the body for setting a line's quantity.
// Quantity zero removes the line.
type updateCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
}

func cartSession(c echo.Context) (string, error) {
	sessionID := c.Request().Header.Get(HeaderCartSession)
	if sessionID == "" {
		return "", response.BadRequest(c, "CART_SESSION_MISSING", "Missing "+HeaderCartSession+" header")
	}

	return sessionID, nil
}

// GetCart returns the cart snapshot with derived totals.
func (h *CartHandler) GetCart(c echo.Context) error {
	sessionID, err := cartSession(c)
	if err != nil || sessionID == "" {
		return err
	}

	output, err := h.uc.GetCart(c.Request().Context(), sessionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Cart retrieved successfully")
}

// AddItem adds a product/size line, merging into an existing line.
func (h *CartHandler) AddItem(c echo.Context) error {
	sessionID, err := cartSession(c)
	if err != nil || sessionID == "" {
		return err
	}

	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.AddItem(c.Request().Context(), usecase.AddCartItemInput{
		SessionID: sessionID,
		ProductID: req.ProductID,
		Size:      req.Size,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Item added to cart")
}

// UpdateQuantity sets the quantity of an existing line.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	sessionID, err := cartSession(c)
	if err != nil || sessionID == "" {
		return err
	}

	var req updateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.UpdateQuantity(c.Request().Context(), usecase.UpdateCartItemInput{
		SessionID: sessionID,
		ProductID: req.ProductID,
		Size:      req.Size,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Cart updated")
}

// RemoveItem removes a line identified by query parameters, since
// DELETE bodies are not reliably forwarded by intermediaries.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	sessionID, err := cartSession(c)
	if err != nil || sessionID == "" {
		return err
	}

	productID := c.QueryParam("productId")
	size := c.QueryParam("size")
	if productID == "" || size == "" {
		return response.BadRequest(c, "INVALID_INPUT", "productId and size query parameters are required")
	}

	output, err := h.uc.RemoveItem(c.Request().Context(), usecase.RemoveCartItemInput{
		SessionID: sessionID,
		ProductID: productID,
		Size:      size,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Item removed from cart")
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	sessionID, err := cartSession(c)
	if err != nil || sessionID == "" {
		return err
	}

	if err := h.uc.ClearCart(c.Request().Context(), sessionID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart cleared")
}
