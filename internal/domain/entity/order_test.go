package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status OrderStatus
		valid  bool
	}{
		{name: "pending", status: StatusPending, valid: true},
		{name: "confirmed", status: StatusConfirmed, valid: true},
		{name: "processing", status: StatusProcessing, valid: true},
		{name: "shipped", status: StatusShipped, valid: true},
		{name: "delivered", status: StatusDelivered, valid: true},
		{name: "cancelled", status: StatusCancelled, valid: true},
		{name: "unknown value", status: OrderStatus("teleported"), valid: false},
		{name: "empty", status: OrderStatus(""), valid: false},
		{name: "case sensitive", status: OrderStatus("Confirmed"), valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.valid, tt.status.Valid())
		})
	}
}

func TestPricingRulesQuote(t *testing.T) {
	t.Parallel()

	rules := PricingRules{
		FreeShippingThreshold: 5000,
		ShippingFee:           199,
		TaxRate:               0.18,
	}

	t.Run("above threshold ships free", func(t *testing.T) {
		t.Parallel()

		pricing := rules.Quote(6999)

		assert.InDelta(t, 6999.0, pricing.Subtotal, 0.001)
		assert.Zero(t, pricing.ShippingCost)
		assert.InDelta(t, 1259.82, pricing.Tax, 0.001)
		assert.InDelta(t, 8258.82, pricing.GrandTotal, 0.001)
	})

	t.Run("exactly at threshold pays the fee", func(t *testing.T) {
		t.Parallel()

		pricing := rules.Quote(5000)

		assert.InDelta(t, 199.0, pricing.ShippingCost, 0.001)
		assert.InDelta(t, 900.0, pricing.Tax, 0.001)
		assert.InDelta(t, 6099.0, pricing.GrandTotal, 0.001)
	})

	t.Run("below threshold pays the fee", func(t *testing.T) {
		t.Parallel()

		pricing := rules.Quote(1500)

		assert.InDelta(t, 199.0, pricing.ShippingCost, 0.001)
		assert.InDelta(t, 270.0, pricing.Tax, 0.001)
		assert.InDelta(t, 1969.0, pricing.GrandTotal, 0.001)
	})

	t.Run("zero subtotal still pays the fee", func(t *testing.T) {
		t.Parallel()

		pricing := rules.Quote(0)

		assert.InDelta(t, 199.0, pricing.ShippingCost, 0.001)
		assert.Zero(t, pricing.Tax)
		assert.InDelta(t, 199.0, pricing.GrandTotal, 0.001)
	})
}
