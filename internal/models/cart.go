package models

import (
	"github.com/shopspring/decimal"
)

type CartLine struct {
	ItemID       int             `json:"item_id"`
	Name         string          `json:"name"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	ImageRef     string          `json:"image"`
	Category     string          `json:"category"`
	EventDate    string          `json:"event_date,omitempty"`
	DurationDays int             `json:"duration_days,omitempty"`
	Quantity     int             `json:"quantity"`
}

// LineKey identifies a line within a cart: the same product booked for
// two different event dates occupies two lines.
type LineKey struct {
	ItemID    int
	EventDate string
}

func (l CartLine) Key() LineKey {
	return LineKey{ItemID: l.ItemID, EventDate: l.EventDate}
}

// EffectiveDuration treats a missing duration as a single rental day.
func (l CartLine) EffectiveDuration() int {
	if l.DurationDays <= 0 {
		return 1
	}

	return l.DurationDays
}

func (l CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.
		Mul(decimal.NewFromInt(int64(l.EffectiveDuration()))).
		Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type CartView struct {
	Items      []CartLine      `json:"items"`
	TotalPrice decimal.Decimal `json:"total_price"`
	TotalItems int             `json:"total_items"`
}

type AddItemRequest struct {
	ProductID    int    `json:"product_id"    validate:"required,gt=0"`
	EventDate    string `json:"event_date"    validate:"omitempty,datetime=2006-01-02"`
	DurationDays int    `json:"duration_days" validate:"omitempty,min=1,max=365"`
	Quantity     int    `json:"quantity"      validate:"omitempty,min=1"`
}

// A nil EventDate addresses every line of the product, a non-nil one
// addresses a single (product, date) line.
type UpdateQuantityRequest struct {
	Quantity  int     `json:"quantity"`
	EventDate *string `json:"event_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
