package cart

import "fmt"

// Controller owns the cart and persists it after every change.
type Controller struct {
	storage Storage
	cart    Cart
}

// NewController loads the saved cart from storage.
func NewController(storage Storage) (*Controller, error) {
	c, err := storage.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return &Controller{storage: storage, cart: c}, nil
}

// Cart returns a snapshot of the current cart.
func (c *Controller) Cart() Cart {
	return New(c.cart.Items())
}

// Add appends a line.
func (c *Controller) Add(item Item) error {
	return c.update(func(next *Cart) error {
		next.Add(item)
		return nil
	})
}

// Remove deletes the line at index.
func (c *Controller) Remove(index int) error {
	return c.update(func(next *Cart) error {
		return next.Remove(index)
	})
}

// SetQuantity sets a line's quantity, never below one.
func (c *Controller) SetQuantity(index, qty int) error {
	return c.update(func(next *Cart) error {
		return next.SetQuantity(index, qty)
	})
}

// ChangeQuantity adds delta to a line's quantity, never below one.
func (c *Controller) ChangeQuantity(index, delta int) error {
	return c.update(func(next *Cart) error {
		return next.ChangeQuantity(index, delta)
	})
}

// Clear empties the cart.
func (c *Controller) Clear() error {
	return c.update(func(next *Cart) error {
		next.Clear()
		return nil
	})
}

// update applies change to a copy and keeps it only once storage accepts it.
func (c *Controller) update(change func(next *Cart) error) error {
	next := New(c.cart.Items())
	if err := change(&next); err != nil {
		return err
	}
	if err := c.storage.Save(next); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	c.cart = next
	return nil
}
