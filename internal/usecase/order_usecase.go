package usecase

import (
	"context"

	"retrokick/internal/domain/entity"
)

// --- Input DTOs ---

// PlaceOrderInput carries everything needed to turn a cart into an
// order. Items are the cart snapshot taken at checkout; monetary
// totals are always recomputed server-side.
type PlaceOrderInput struct {
	Items      []entity.CartItem
	Shipping   entity.ShippingInfo
	PaymentRef string
}

// UpdateOrderStatusInput identifies the order and its next status.
type UpdateOrderStatusInput struct {
	OrderID string
	Status  string
}

// --- Output DTOs ---

// OrderStatsOutput is the admin dashboard aggregate.
type OrderStatsOutput struct {
	TotalOrders     int64
	TotalRevenue    float64
	PendingOrders   int64
	CompletedOrders int64
	RecentOrders    []*entity.Order
}

// OrderUsecase defines order-related business operations.
type OrderUsecase interface {
	// PlaceOrder computes totals, assigns the order id, persists the
	// order as confirmed and enqueues the notification mails.
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*entity.Order, error)

	// ListOrders returns all orders, newest first.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// GetOrder returns a single order by its customer-facing id.
	GetOrder(ctx context.Context, orderID string) (*entity.Order, error)

	// UpdateStatus replaces the order's status after validating it
	// against the known set.
	UpdateStatus(ctx context.Context, input UpdateOrderStatusInput) (*entity.Order, error)

	// Stats computes the admin dashboard aggregates.
	Stats(ctx context.Context) (*OrderStatsOutput, error)
}
