package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderLine is a copy of a cart line taken at purchase time, independent
// of any later catalog change.
type OrderLine struct {
	ItemID       int             `json:"item_id"`
	Name         string          `json:"name"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	ImageRef     string          `json:"image"`
	Category     string          `json:"category"`
	Quantity     int             `json:"quantity"`
	DurationDays int             `json:"duration_days"`
	EventDate    string          `json:"event_date"`
}

type Order struct {
	ID                  string          `json:"id"`
	OwnerID             string          `json:"owner_id"`
	Items               []OrderLine     `json:"items"`
	Total               decimal.Decimal `json:"total"`
	Status              OrderStatus     `json:"status"`
	EventDate           string          `json:"event_date"`
	DeliveryAddress     string          `json:"delivery_address"`
	OrderDate           time.Time       `json:"order_date"`
	SpecialInstructions string          `json:"special_instructions,omitempty"`
}

// OrderDraft is an order before the session assigns its id, owner and date.
type OrderDraft struct {
	Items               []OrderLine
	Total               decimal.Decimal
	Status              OrderStatus
	EventDate           string
	DeliveryAddress     string
	SpecialInstructions string
}

type CheckoutRequest struct {
	Address             string `json:"address" validate:"required,max=200"`
	City                string `json:"city" validate:"required,max=100"`
	Zip                 string `json:"zip" validate:"required,max=20"`
	SpecialInstructions string `json:"special_instructions" validate:"omitempty,max=1000"`
}

type OrderResponse struct {
	Order *Order `json:"order"`
}

type OrderHistoryResponse struct {
	Orders []Order `json:"orders"`
	Total  int     `json:"total"`
}
