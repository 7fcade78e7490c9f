// Package cart holds the client's shopping cart and keeps it persisted.
package cart

import (
	"encoding/json"
	"errors"

	"taste-heaven/internal/model"

	"github.com/shopspring/decimal"
)

// ErrIndexOutOfRange is returned when a line index does not exist.
var ErrIndexOutOfRange = errors.New("cart: index out of range")

// Item is one cart line.
type Item struct {
	ProductID string  `json:"_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Img       string  `json:"img,omitempty"`
	Qty       int     `json:"qty"`
}

// ItemFromProduct builds a single-quantity line for p.
func ItemFromProduct(p model.Product) Item {
	return Item{ProductID: p.ID, Name: p.Name, Price: p.Price, Img: p.Img, Qty: 1}
}

// LineTotal returns price times quantity.
func (i Item) LineTotal() decimal.Decimal {
	return decimal.NewFromFloat(i.Price).Mul(decimal.NewFromInt(int64(i.Qty)))
}

// Cart is an ordered list of lines. The zero value is an empty cart.
// Adding the same product twice yields two lines.
type Cart struct {
	items []Item
}

// New returns a cart holding items. Quantities below one are raised to one.
func New(items []Item) Cart {
	c := Cart{items: make([]Item, 0, len(items))}
	for _, item := range items {
		c.Add(item)
	}
	return c
}

// Add appends a line.
func (c *Cart) Add(item Item) {
	if item.Qty < 1 {
		item.Qty = 1
	}
	c.items = append(c.items, item)
}

// Remove deletes the line at index.
func (c *Cart) Remove(index int) error {
	if index < 0 || index >= len(c.items) {
		return ErrIndexOutOfRange
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	return nil
}

// SetQuantity sets the quantity of the line at index, never below one.
func (c *Cart) SetQuantity(index, qty int) error {
	if index < 0 || index >= len(c.items) {
		return ErrIndexOutOfRange
	}
	if qty < 1 {
		qty = 1
	}
	c.items[index].Qty = qty
	return nil
}

// ChangeQuantity adds delta to the line at index, never going below one.
func (c *Cart) ChangeQuantity(index, delta int) error {
	if index < 0 || index >= len(c.items) {
		return ErrIndexOutOfRange
	}
	return c.SetQuantity(index, c.items[index].Qty+delta)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the lines.
func (c Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of lines.
func (c Cart) Len() int {
	return len(c.items)
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Subtotal returns the exact sum of line totals.
func (c Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range c.items {
		sum = sum.Add(item.LineTotal())
	}
	return sum
}

// OrderItems converts the lines into order line items.
func (c Cart) OrderItems() []model.OrderItem {
	out := make([]model.OrderItem, len(c.items))
	for i, item := range c.items {
		out[i] = model.OrderItem{Name: item.Name, Price: item.Price, Qty: item.Qty}
	}
	return out
}

// MarshalJSON encodes the cart as a bare array of lines.
func (c Cart) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Items())
}

// UnmarshalJSON decodes a bare array of lines. Lines stored without a
// quantity get one.
func (c *Cart) UnmarshalJSON(data []byte) error {
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*c = New(items)
	return nil
}
