// Package cart holds the transient product selection of one checkout
// session. A cart is owned by whichever flow created it (customer
// self-checkout or an employee sale) and is never persisted.
package cart

import (
	"context"
	"fmt"

	"github.com/fekuna/tortilleria-pos/internal/model"
)

// Catalog is the read-side view the cart needs; satisfied by
// catalog.UseCase.
type Catalog interface {
	GetProduct(ctx context.Context, key string) (*model.Product, error)
}

// Line is one cart entry expanded for display.
type Line struct {
	Key       string
	Name      string
	Quantity  float64
	Unit      string
	UnitPrice float64
	Subtotal  float64
}

type Cart struct {
	catalog    Catalog
	order      []string
	quantities map[string]float64
}

func New(cat Catalog) *Cart {
	return &Cart{
		catalog:    cat,
		quantities: map[string]float64{},
	}
}

// Add puts quantity of a product into the cart. Adding an existing key
// accumulates; if the accumulated quantity would exceed the current stock it
// is silently clamped down to it. Requesting more than the current stock in
// one call is an error.
func (c *Cart) Add(ctx context.Context, key string, quantity float64) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be greater than 0", model.ErrInvalidInput)
	}

	p, err := c.catalog.GetProduct(ctx, key)
	if err != nil {
		return err
	}
	if quantity > p.Stock {
		return fmt.Errorf("%w: only %.1f %s of %s available",
			model.ErrInsufficientStock, p.Stock, p.Unit, p.Name)
	}

	if _, ok := c.quantities[key]; !ok {
		c.order = append(c.order, key)
	}
	c.quantities[key] += quantity
	if c.quantities[key] > p.Stock {
		c.quantities[key] = p.Stock
	}
	return nil
}

// Remove drops an entry; removing an absent key is a no-op.
func (c *Cart) Remove(key string) {
	if _, ok := c.quantities[key]; !ok {
		return
	}
	delete(c.quantities, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *Cart) Clear() {
	c.order = nil
	c.quantities = map[string]float64{}
}

func (c *Cart) IsEmpty() bool {
	return len(c.quantities) == 0
}

func (c *Cart) Len() int {
	return len(c.quantities)
}

// Keys returns the product keys in the order they entered the cart.
func (c *Cart) Keys() []string {
	keys := make([]string, len(c.order))
	copy(keys, c.order)
	return keys
}

// Quantities returns a copy of the key -> quantity mapping.
func (c *Cart) Quantities() map[string]float64 {
	out := make(map[string]float64, len(c.quantities))
	for k, q := range c.quantities {
		out[k] = q
	}
	return out
}

// Quantity returns the quantity for a key, zero when absent.
func (c *Cart) Quantity(key string) float64 {
	return c.quantities[key]
}

// Total prices the cart against live catalog data, never a cached value.
func (c *Cart) Total(ctx context.Context) (float64, error) {
	var total float64
	for _, key := range c.order {
		p, err := c.catalog.GetProduct(ctx, key)
		if err != nil {
			return 0, err
		}
		total += c.quantities[key] * p.Price
	}
	return total, nil
}

// Lines expands the cart for display, in insertion order.
func (c *Cart) Lines(ctx context.Context) ([]Line, error) {
	lines := make([]Line, 0, len(c.order))
	for _, key := range c.order {
		p, err := c.catalog.GetProduct(ctx, key)
		if err != nil {
			return nil, err
		}
		q := c.quantities[key]
		lines = append(lines, Line{
			Key:       key,
			Name:      p.Name,
			Quantity:  q,
			Unit:      p.Unit,
			UnitPrice: p.Price,
			Subtotal:  q * p.Price,
		})
	}
	return lines, nil
}
