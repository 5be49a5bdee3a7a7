// Package pricing maps a cart snapshot to a priced summary. It is the
// single source of truth for totals: the cart view, the checkout view
// and the submitted order payload all go through Price.
package pricing

import "github.com/sojibhasan5800/flipcart-storefront/internal/domain"

// DiscountRate is the flat storefront discount applied to every cart.
const DiscountRate = 0.05

// Price derives totals from a snapshot. Pure and deterministic: no
// I/O, no rounding during accumulation, so pricing the same snapshot
// twice yields bit-identical results.
func Price(snapshot domain.CartSnapshot) domain.PricedSummary {
	subtotal := snapshot.Subtotal()
	discount := subtotal * DiscountRate
	return domain.PricedSummary{
		Subtotal:     subtotal,
		DiscountRate: DiscountRate,
		Discount:     discount,
		GrandTotal:   subtotal - discount,
	}
}
