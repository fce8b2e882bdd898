package entity

import "time"

// OrderStatus is the fulfilment state of an order. Any status may
// replace any other; only membership in the set is enforced.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether the status is one of the known values.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusProcessing,
		StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}

	return false
}

// OrderItem is a frozen copy of a cart entry taken at order-creation
// time. Later catalog or price changes never affect a placed order.
type OrderItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	UnitPrice   float64 `json:"unitPrice"`
	Image       string  `json:"image,omitempty"`
	Size        string  `json:"size"`
	Quantity    int     `json:"quantity"`
}

// ShippingInfo is the delivery address captured at checkout.
type ShippingInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Pincode   string `json:"pincode"`
}

// Order is a placed order. Monetary and content fields are immutable
// after creation; only Status and UpdatedAt change, by admin action.
type Order struct {
	OrderID       string       // Customer-facing identifier, "RK-" prefixed.
	Items         []OrderItem  // Snapshot of the cart at placement.
	Shipping      ShippingInfo // Snapshot of the shipping form.
	PaymentRef    string       // Gateway transaction id, ties the charge to the order.
	Subtotal      float64
	ShippingCost  float64
	Tax           float64
	GrandTotal    float64
	Status        OrderStatus
	CustomerEmail string // Denormalized from Shipping for lookups.
	CreatedAt     time.Time
	UpdatedAt     *time.Time // Set on the first status change, nil before.
}

// Pricing holds the order total breakdown derived from a cart subtotal.
type Pricing struct {
	Subtotal     float64
	ShippingCost float64
	Tax          float64
	GrandTotal   float64
}

// PricingRules computes an order's Pricing from a subtotal. Shipping is
// free strictly above the threshold, a flat fee otherwise; tax is a
// fixed fraction of the subtotal.
type PricingRules struct {
	FreeShippingThreshold float64
	ShippingFee           float64
	TaxRate               float64
}

// Quote derives the total breakdown for the given subtotal.
func (r PricingRules) Quote(subtotal float64) Pricing {
	shipping := r.ShippingFee
	if subtotal > r.FreeShippingThreshold {
		shipping = 0
	}
	tax := subtotal * r.TaxRate

	return Pricing{
		Subtotal:     subtotal,
		ShippingCost: shipping,
		Tax:          tax,
		GrandTotal:   subtotal + shipping + tax,
	}
}
