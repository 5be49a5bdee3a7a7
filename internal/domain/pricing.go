package domain

import "math"

// PricedSummary is a pure derivation from a CartSnapshot; it is computed
// on demand and never persisted.
type PricedSummary struct {
	Subtotal     float64 `json:"subtotal"`
	DiscountRate float64 `json:"discount_rate"`
	Discount     float64 `json:"discount"`
	GrandTotal   float64 `json:"grand_total"`
}

// Rounded returns a copy with monetary fields rounded to two decimals.
// Rounding happens only here, at presentation time, so repeated pricing
// of the same snapshot stays bit-identical.
func (p PricedSummary) Rounded() PricedSummary {
	return PricedSummary{
		Subtotal:     round2(p.Subtotal),
		DiscountRate: p.DiscountRate,
		Discount:     round2(p.Discount),
		GrandTotal:   round2(p.GrandTotal),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
