package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CartLine is a single selected product with its accumulated quantity.
// UnitPrice is captured at insertion time from the catalog.
type CartLine struct {
	ProductID string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// LineTotal returns quantity × unit price as an exact decimal.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the ordered set of selected rental lines for one quote session.
// Insertion order is preserved for display and there is at most one line per
// product: re-adding a product accumulates quantity on the existing line.
type Cart struct {
	lines []CartLine
}

// AddItem inserts a new line for product or increments the existing line.
// The requested quantity is clamped to [1, stock] at the input layer before
// this is reached, so only the cumulative total is re-validated here: when
// existing + qty would exceed the declared stock the cart is left unchanged
// and ErrInsufficientStock is returned.
func (c *Cart) AddItem(p Product, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}
	if c.Quantity(p.ID)+qty > p.Stock {
		return fmt.Errorf("%w: only %d units of %s left", ErrInsufficientStock, p.Stock, p.Name)
	}
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			c.lines[i].Quantity += qty
			return nil
		}
	}
	c.lines = append(c.lines, CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Quantity:  qty,
		UnitPrice: p.UnitPrice,
	})
	return nil
}

// RemoveItem deletes the line for productID. Removing a product that is not
// in the cart is a no-op, not an error.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Quantity returns the accumulated quantity for productID, 0 when absent.
func (c *Cart) Quantity(productID string) int {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			return c.lines[i].Quantity
		}
	}
	return 0
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total recomputes the exact sum of quantity × unit price over all lines.
// It is not cached: carts are small and mutation is infrequent.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range c.lines {
		total = total.Add(c.lines[i].LineTotal())
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Len returns the number of distinct product lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Clone returns a deep copy of the cart.
func (c *Cart) Clone() Cart {
	return Cart{lines: c.Lines()}
}
