package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func retroTen() CartItem {
	return CartItem{
		ProductID: "retro-10",
		Name:      "AC Milan Home 1994-95",
		UnitPrice: 3499,
		Size:      "M",
		Quantity:  1,
	}
}

func TestCartAddItem(t *testing.T) {
	t.Parallel()

	t.Run("same product and size merges quantities", func(t *testing.T) {
		t.Parallel()

		cart := &Cart{SessionID: "s1"}
		cart.AddItem(retroTen())

		again := retroTen()
		again.Quantity = 2
		cart.AddItem(again)

		require.Len(t, cart.Items, 1)
		assert.Equal(t, 3, cart.Items[0].Quantity)
	})

	t.Run("same product in another size is a separate line", func(t *testing.T) {
		t.Parallel()

		cart := &Cart{SessionID: "s1"}
		cart.AddItem(retroTen())

		large := retroTen()
		large.Size = "L"
		cart.AddItem(large)

		assert.Len(t, cart.Items, 2)
	})
}

func TestCartUpdateQuantity(t *testing.T) {
	t.Parallel()

	t.Run("sets the quantity exactly", func(t *testing.T) {
		t.Parallel()

		cart := &Cart{}
		cart.AddItem(retroTen())

		cart.UpdateQuantity("retro-10", "M", 5)

		item, ok := cart.Item("retro-10", "M")
		require.True(t, ok)
		assert.Equal(t, 5, item.Quantity)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		t.Parallel()

		cart := &Cart{}
		cart.AddItem(retroTen())

		cart.UpdateQuantity("retro-10", "M", 0)

		assert.True(t, cart.IsEmpty())
	})

	t.Run("absent line is a no-op", func(t *testing.T) {
		t.Parallel()

		cart := &Cart{}
		cart.AddItem(retroTen())

		cart.UpdateQuantity("retro-10", "XL", 4)

		item, ok := cart.Item("retro-10", "M")
		require.True(t, ok)
		assert.Equal(t, 1, item.Quantity)
	})
}

func TestCartRemoveItem(t *testing.T) {
	t.Parallel()

	cart := &Cart{}
	cart.AddItem(retroTen())

	cart.RemoveItem("retro-10", "M")
	assert.True(t, cart.IsEmpty())

	// Removing again is a no-op.
	cart.RemoveItem("retro-10", "M")
	assert.True(t, cart.IsEmpty())
}

func TestCartTotals(t *testing.T) {
	t.Parallel()

	cart := &Cart{}
	cart.AddItem(CartItem{ProductID: "a", Size: "M", UnitPrice: 100, Quantity: 2})
	cart.AddItem(CartItem{ProductID: "b", Size: "L", UnitPrice: 250.50, Quantity: 1})

	assert.Equal(t, 3, cart.TotalItems())
	assert.InDelta(t, 450.50, cart.TotalPrice(), 0.001)

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Zero(t, cart.TotalItems())
	assert.Zero(t, cart.TotalPrice())
}
