package usecase

import (
	"context"

	"retrokick/internal/domain/entity"
)

// --- Input DTOs ---

// AddCartItemInput defines the data required to put a jersey in a cart.
type AddCartItemInput struct {
	SessionID string
	ProductID string
	Size      string
	Quantity  int
}

// UpdateCartItemInput defines the data required to set a line's quantity.
type UpdateCartItemInput struct {
	SessionID string
	ProductID string
	Size      string
	Quantity  int
}

// RemoveCartItemInput identifies the line to remove.
type RemoveCartItemInput struct {
	SessionID string
	ProductID string
	Size      string
}

// --- Output DTOs ---

// CartOutput returns the cart with its derived totals so the delivery
// layer never recomputes money.
type CartOutput struct {
	Cart       *entity.Cart
	TotalItems int
	TotalPrice float64
}

// CartUsecase defines the cart operations exposed to the delivery layer.
// Every mutation validates against the catalog and persists the full
// snapshot before returning.
type CartUsecase interface {
	GetCart(ctx context.Context, sessionID string) (*CartOutput, error)
	AddItem(ctx context.Context, input AddCartItemInput) (*CartOutput, error)
	UpdateQuantity(ctx context.Context, input UpdateCartItemInput) (*CartOutput, error)
	RemoveItem(ctx context.Context, input RemoveCartItemInput) (*CartOutput, error)
	ClearCart(ctx context.Context, sessionID string) error
}
