package cart

import (
	"maps"

	"github.com/joseph-ayodele/groupbuy/internal/entity"
)

// Cart maps element ids to strictly positive quantities.
// The zero value is not usable; call New.
type Cart struct {
	qty map[string]int
}

func New() *Cart {
	return &Cart{qty: make(map[string]int)}
}

// Qty returns the stored quantity, 0 when the item is absent.
func (c *Cart) Qty(itemID string) int {
	return c.qty[itemID]
}

// SetQty stores qty for itemID, or removes the entry when qty <= 0.
// Step granularity is not checked here.
func (c *Cart) SetQty(itemID string, qty int) {
	if qty <= 0 {
		delete(c.qty, itemID)
		return
	}
	c.qty[itemID] = qty
}

// Add increments the item by one step.
func (c *Cart) Add(it entity.Item) {
	c.SetQty(string(it.ElementID), c.Qty(string(it.ElementID))+it.QtyStep)
}

// Subtract decrements the item by one step, never below zero.
func (c *Cart) Subtract(it entity.Item) {
	c.SetQty(string(it.ElementID), max(0, c.Qty(string(it.ElementID))-it.QtyStep))
}

func (c *Cart) Clear() {
	clear(c.qty)
}

// Len is the number of items with a positive quantity.
func (c *Cart) Len() int {
	return len(c.qty)
}

// Snapshot returns a detached copy of the quantities.
func (c *Cart) Snapshot() Snapshot {
	return Snapshot(maps.Clone(c.qty))
}

// Snapshot is a read-only copy of a cart, safe to hand to export and
// submission code while the live cart keeps changing.
type Snapshot map[string]int

func (s Snapshot) Qty(itemID string) int {
	return s[itemID]
}
