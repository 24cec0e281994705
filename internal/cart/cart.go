// Package cart implements the session-scoped cart engine. A cart belongs to
// exactly one session and lives only in memory; quantities are bounded by the
// stock figure the catalog reports at the moment of each mutation. The bound
// is advisory at write time: stock may still change concurrently, and the
// contract makes no stronger promise.
package cart

import (
	"context"
	"fmt"

	"discbin/internal/faults"
	"discbin/internal/money"
	"discbin/internal/store"
)

// StockReader reports the current stock figure for a CD. The cart reads
// through it for every bound check and never writes.
type StockReader interface {
	StockOf(ctx context.Context, id int64) (int, error)
}

// Line is one CD plus a bounded quantity. The CD is a snapshot taken when the
// line was created; only the live stock figure is re-read on mutation.
type Line struct {
	CD       store.CD
	Quantity int
}

// Subtotal returns price times quantity for the line.
func (l Line) Subtotal() money.Cents {
	return l.CD.Price.MulQty(l.Quantity)
}

// Cart tracks the selected CDs for one session. It is not safe for concurrent
// use; each session has a single logical caller.
type Cart struct {
	stock StockReader
	lines map[int64]*Line
	order []int64
}

// New returns an empty cart bound to the given stock reader.
func New(stock StockReader) *Cart {
	return &Cart{
		stock: stock,
		lines: make(map[int64]*Line),
	}
}

// Add inserts a line with quantity 1 for a CD not yet in the cart, or
// increments the existing line. Either way the resulting quantity must not
// exceed the CD's current stock.
func (c *Cart) Add(ctx context.Context, cd store.CD) error {
	stock, err := c.stock.StockOf(ctx, cd.ID)
	if err != nil {
		return err
	}

	line, ok := c.lines[cd.ID]
	if !ok {
		if stock <= 0 {
			return faults.Wrap(faults.ErrOutOfStock, "cart", "add", fmt.Sprintf("cd %d has no stock", cd.ID), nil)
		}
		c.lines[cd.ID] = &Line{CD: cd, Quantity: 1}
		c.order = append(c.order, cd.ID)
		return nil
	}

	if line.Quantity >= stock {
		return faults.Wrap(faults.ErrOutOfStock, "cart", "add", fmt.Sprintf("cd %d: quantity %d at stock limit", cd.ID, line.Quantity), nil)
	}
	line.Quantity++
	return nil
}

// SetQuantity sets the quantity for an existing line. A quantity of zero or
// less removes the line. A quantity above current stock fails and leaves the
// line unchanged.
func (c *Cart) SetQuantity(ctx context.Context, cdID int64, quantity int) error {
	if quantity <= 0 {
		c.Remove(cdID)
		return nil
	}

	line, ok := c.lines[cdID]
	if !ok {
		return faults.Wrap(faults.ErrNotFound, "cart", "set quantity", fmt.Sprintf("cd %d not in cart", cdID), nil)
	}

	stock, err := c.stock.StockOf(ctx, cdID)
	if err != nil {
		return err
	}
	if quantity > stock {
		return faults.Wrap(faults.ErrOutOfStock, "cart", "set quantity", fmt.Sprintf("cd %d: requested %d, stock %d", cdID, quantity, stock), nil)
	}

	line.Quantity = quantity
	return nil
}

// Remove drops a line. Removing an absent line is a no-op.
func (c *Cart) Remove(cdID int64) {
	if _, ok := c.lines[cdID]; !ok {
		return
	}
	delete(c.lines, cdID)
	for i, id := range c.order {
		if id == cdID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Lines returns the cart contents in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.lines[id])
	}
	return out
}

// Total sums price times quantity over all lines in exact minor units.
func (c *Cart) Total() money.Cents {
	var total money.Cents
	for _, line := range c.lines {
		total += line.Subtotal()
	}
	return total
}

// ItemCount sums quantities across lines; used for display badges.
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}
