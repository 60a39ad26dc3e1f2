package catalog

import "github.com/shopspring/decimal"

// PriceRange is the min and max price over active sub-products.
// When no active sub-product exists it is the zero/zero sentinel with Empty set.
type PriceRange struct {
	Min   decimal.Decimal `json:"minPrice"`
	Max   decimal.Decimal `json:"maxPrice"`
	Empty bool            `json:"empty"`
}

// EmptyPriceRange returns the sentinel range
func EmptyPriceRange() PriceRange {
	return PriceRange{Min: decimal.Zero, Max: decimal.Zero, Empty: true}
}

// NewPriceRange builds a non-empty range
func NewPriceRange(min, max decimal.Decimal) PriceRange {
	return PriceRange{Min: min, Max: max}
}
