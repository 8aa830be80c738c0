package service

import (
	"sync"

	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
	"github.com/shopspring/decimal"
)

// CartStore holds one visitor's pending rental selections in memory, in
// insertion order. Lines are unique by (ItemID, EventDate).
//
// RemoveFromCart and UpdateQuantity match on ItemID alone and therefore
// touch every dated line of that product. RemoveLine and UpdateLineQuantity
// address a single line.
type CartStore struct {
	mu    sync.Mutex
	lines []models.CartLine
}

func NewCartStore() *CartStore {
	return &CartStore{lines: make([]models.CartLine, 0)}
}

// AddToCart merges the line into an existing one with the same key or appends
// it. A missing or non-positive quantity counts as 1.
func (c *CartStore) AddToCart(line models.CartLine) {

	if line.Quantity <= 0 {
		line.Quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Key() == line.Key() {
			c.lines[i].Quantity += line.Quantity
			return
		}
	}

	c.lines = append(c.lines, line)
}

func (c *CartStore) RemoveFromCart(itemID int) {

	c.mu.Lock()
	defer c.mu.Unlock()

	c.removeWhere(func(l models.CartLine) bool { return l.ItemID == itemID })
}

func (c *CartStore) UpdateQuantity(itemID int, quantity int) {

	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeWhere(func(l models.CartLine) bool { return l.ItemID == itemID })
		return
	}

	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines[i].Quantity = quantity
		}
	}
}

func (c *CartStore) RemoveLine(key models.LineKey) {

	c.mu.Lock()
	defer c.mu.Unlock()

	c.removeWhere(func(l models.CartLine) bool { return l.Key() == key })
}

func (c *CartStore) UpdateLineQuantity(key models.LineKey, quantity int) {

	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeWhere(func(l models.CartLine) bool { return l.Key() == key })
		return
	}

	for i := range c.lines {
		if c.lines[i].Key() == key {
			c.lines[i].Quantity = quantity
		}
	}
}

func (c *CartStore) ClearCart() {

	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = make([]models.CartLine, 0)
}

func (c *CartStore) TotalPrice() decimal.Decimal {

	c.mu.Lock()
	defer c.mu.Unlock()

	return totalPrice(c.lines)
}

func (c *CartStore) TotalItems() int {

	c.mu.Lock()
	defer c.mu.Unlock()

	return totalItems(c.lines)
}

// Items returns a copy of the current lines.
func (c *CartStore) Items() []models.CartLine {

	c.mu.Lock()
	defer c.mu.Unlock()

	return append(make([]models.CartLine, 0, len(c.lines)), c.lines...)
}

// View is a consistent snapshot of lines and totals.
func (c *CartStore) View() *models.CartView {

	c.mu.Lock()
	defer c.mu.Unlock()

	return &models.CartView{
		Items:      append(make([]models.CartLine, 0, len(c.lines)), c.lines...),
		TotalPrice: totalPrice(c.lines),
		TotalItems: totalItems(c.lines),
	}
}

// Commit hands the current lines and their total to fn while holding the
// cart lock. The cart is emptied only if fn succeeds, so no other request
// sees a committed order next to a still-filled cart.
func (c *CartStore) Commit(fn func(lines []models.CartLine, total decimal.Decimal) error) error {

	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := append(make([]models.CartLine, 0, len(c.lines)), c.lines...)

	if err := fn(snapshot, totalPrice(c.lines)); err != nil {
		return err
	}

	c.lines = make([]models.CartLine, 0)

	return nil
}

func (c *CartStore) removeWhere(match func(models.CartLine) bool) {

	kept := c.lines[:0]

	for _, l := range c.lines {
		if !match(l) {
			kept = append(kept, l)
		}
	}

	clear(c.lines[len(kept):])
	c.lines = kept
}

func totalPrice(lines []models.CartLine) decimal.Decimal {

	total := decimal.Zero

	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}

	return total
}

func totalItems(lines []models.CartLine) int {

	total := 0

	for _, l := range lines {
		total += l.Quantity
	}

	return total
}
