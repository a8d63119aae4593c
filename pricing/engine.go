package pricing

import "github.com/AnasFahiem/RA-Store-sub000/models"

// ComputeTotal prices a heterogeneous cart: standalone rows plus zero or
// more exploded bundle groups. Bundle groups contribute their price
// override when one is present, otherwise the sum of their own line
// snapshots. A supplied promo always wins; the quantity tier is only
// evaluated when no promo is applied, so the two never stack. The discount
// is capped at the subtotal and the total is clamped at zero.
//
// The function never fails: malformed input degrades to zero contributions
// (missing prices and quantities are treated as 0). Upstream validation of
// the cart itself belongs to the caller.
func ComputeTotal(lines []Line, rules []models.DiscountRule, promo *Discount) Result {
	type group struct {
		sum      float64
		override *float64
	}

	subtotal := 0.0
	groups := make(map[int]*group)
	order := []int{}

	for _, line := range lines {
		qty := line.Quantity
		if qty < 0 {
			qty = 0
		}
		price := line.Price
		if price < 0 {
			price = 0
		}
		amount := price * float64(qty)

		if line.BundleID == nil {
			subtotal += amount
			continue
		}
		g, ok := groups[*line.BundleID]
		if !ok {
			g = &group{}
			groups[*line.BundleID] = g
			order = append(order, *line.BundleID)
		}
		g.sum += amount
		if g.override == nil && line.BundlePriceOverride != nil {
			g.override = line.BundlePriceOverride
		}
	}

	for _, id := range order {
		g := groups[id]
		if g.override != nil {
			subtotal += *g.override
		} else {
			subtotal += g.sum
		}
	}

	result := Result{Subtotal: subtotal, Source: SourceNone}

	var applied *Discount
	if promo != nil {
		applied = promo
		result.Source = SourcePromo
	} else if rule := SelectBestTier(rules, lines); rule != nil {
		applied = RuleDiscount(rule)
		result.Source = SourceQuantityTier
		result.RuleID = rule.ID
	}

	if applied == nil {
		result.Total = subtotal
		return result
	}

	result.Discount = discountAmount(*applied, subtotal)
	result.Code = applied.Code
	result.Total = subtotal - result.Discount
	if result.Total < 0 {
		result.Total = 0
	}
	return result
}

// discountAmount resolves a descriptor against a subtotal. The result never
// exceeds the subtotal, so totals cannot go negative.
func discountAmount(d Discount, subtotal float64) float64 {
	var amount float64
	switch d.Kind {
	case KindPercentage:
		amount = subtotal * d.Value / 100
	case KindFixed:
		amount = d.Value
	}
	if amount < 0 {
		amount = 0
	}
	if amount > subtotal {
		amount = subtotal
	}
	return amount
}
