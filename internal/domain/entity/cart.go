package entity

// CartItem is a single cart entry, uniquely keyed by (ProductID, Size).
// Product name and unit price are captured when the item is added so the
// cart stays renderable without a catalog lookup.
type CartItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Image     string  `json:"image,omitempty"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity"`
}

// Cart is the aggregate of items a shopper has selected prior to
// checkout. A zero-value Cart is an empty, usable cart.
type Cart struct {
	SessionID string     `json:"sessionId"`
	Items     []CartItem `json:"items"`
}

// AddItem merges an item into the cart. An entry with the same
// (ProductID, Size) key has its quantity incremented by item.Quantity;
// otherwise the item is appended.
func (c *Cart) AddItem(item CartItem) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID && c.Items[i].Size == item.Size {
			c.Items[i].Quantity += item.Quantity

			return
		}
	}

	c.Items = append(c.Items, item)
}

// RemoveItem deletes the entry matching (productID, size). Removing an
// absent entry is a no-op.
func (c *Cart) RemoveItem(productID, size string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID && c.Items[i].Size == size {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)

			return
		}
	}
}

// UpdateQuantity sets the quantity of the matching entry exactly.
// A quantity of zero or below removes the entry. Updating an absent
// entry is a no-op.
func (c *Cart) UpdateQuantity(productID, size string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID, size)

		return
	}

	for i := range c.Items {
		if c.Items[i].ProductID == productID && c.Items[i].Size == size {
			c.Items[i].Quantity = quantity

			return
		}
	}
}

// Clear empties the cart. Called after successful order placement.
func (c *Cart) Clear() {
	c.Items = nil
}

// Item returns the entry matching (productID, size), or false if absent.
func (c *Cart) Item(productID, size string) (CartItem, bool) {
	for _, item := range c.Items {
		if item.ProductID == productID && item.Size == size {
			return item, true
		}
	}

	return CartItem{}, false
}

// TotalItems is the sum of quantities across all entries.
func (c *Cart) TotalItems() int {
	var total int
	for _, item := range c.Items {
		total += item.Quantity
	}

	return total
}

// TotalPrice is the sum of unit price times quantity across all entries.
func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.UnitPrice * float64(item.Quantity)
	}

	return total
}

// IsEmpty reports whether the cart holds no entries.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
