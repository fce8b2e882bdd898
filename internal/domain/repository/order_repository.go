// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"retrokick/internal/domain/entity"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderStats is the aggregate view served to the admin dashboard.
type OrderStats struct {
	TotalOrders     int64
	TotalRevenue    float64
	PendingOrders   int64
	CompletedOrders int64
	RecentOrders    []*entity.Order
}

// OrderRepository defines the standard operations for order persistence.
// Orders are append-only: content and monetary fields never change after
// creation, only the status does.
type OrderRepository interface {
	// Create persists a new order.
	Create(ctx context.Context, order *entity.Order) error

	// FindByOrderID retrieves a single order by its customer-facing id.
	FindByOrderID(ctx context.Context, orderID string) (*entity.Order, error)

	// List returns all orders sorted by creation time, newest first.
	List(ctx context.Context) ([]*entity.Order, error)

	// UpdateStatus overwrites the status of the matching order and stamps
	// UpdatedAt. Returns ErrOrderNotFound when no order matches.
	UpdateStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error)

	// Stats computes the dashboard aggregates in one pass.
	Stats(ctx context.Context, recentLimit int) (*OrderStats, error)
}
