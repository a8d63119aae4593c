package pricing

import "github.com/AnasFahiem/RA-Store-sub000/models"

// BundleQuote is the priced view of a bundle. ComputedSum always reflects
// current catalog prices; FinalPrice is what the shopper pays.
type BundleQuote struct {
	ComputedSum float64 `json:"computedSum"`
	FinalPrice  float64 `json:"finalPrice"`
	Savings     float64 `json:"savings"`
}

// QuoteBundle prices a bundle against the current catalog. An admin price
// override, when set, wins for charging and display; the computed sum is
// kept only to show the saving. Savings never go negative: an override
// above the computed sum shows zero. Products missing from the map price
// their items at zero.
func QuoteBundle(bundle models.Bundle, products map[int]models.Product) (BundleQuote, error) {
	if len(bundle.Items) == 0 {
		return BundleQuote{}, ErrInvalidBundle
	}

	sum := 0.0
	for _, item := range bundle.Items {
		qty := item.Quantity
		if qty < 0 {
			qty = 0
		}
		sum += products[item.ProductID].Price * float64(qty)
	}

	final := sum
	if bundle.PriceOverride != nil {
		final = *bundle.PriceOverride
	}

	savings := sum - final
	if savings < 0 {
		savings = 0
	}

	return BundleQuote{ComputedSum: sum, FinalPrice: final, Savings: savings}, nil
}
