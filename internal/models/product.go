package models

import "github.com/shopspring/decimal"

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Product struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	Price           decimal.Decimal `json:"price"`
	Rating          float64         `json:"rating"`
	Reviews         int             `json:"reviews"`
	ImageRef        string          `json:"image"`
	Description     string          `json:"description"`
	FullDescription string          `json:"full_description"`
	Features        []string        `json:"features"`
	Availability    string          `json:"availability"`
	Dimensions      string          `json:"dimensions"`
	Weight          string          `json:"weight"`
}

type PriceRange string

const (
	PriceRangeAll    PriceRange = "all"
	PriceRangeLow    PriceRange = "low"
	PriceRangeMedium PriceRange = "medium"
	PriceRangeHigh   PriceRange = "high"
)

const CategoryAll = "all"

type ProductFilter struct {
	Category   string     `validate:"omitempty,max=50"`
	Search     string     `validate:"omitempty,max=100"`
	PriceRange PriceRange `validate:"omitempty,oneof=all low medium high"`
}

type ProductListResponse struct {
	Products []Product `json:"products"`
	Shown    int       `json:"shown"`
	Total    int       `json:"total"`
}
