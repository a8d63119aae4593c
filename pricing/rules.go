package pricing

import "github.com/AnasFahiem/RA-Store-sub000/models"

// SelectBestTier picks the quantity-discount rule to apply for the given
// lines, or nil if no rule qualifies.
//
// A rule is applicable when it is active, the total quantity across lines
// reaches its MinQuantity, and, if it names a RequiredCategory, at least one
// line belongs to that category. Among applicable rules the highest
// MinQuantity wins regardless of discount magnitude, so bulk buying always
// reaches a deterministic tier. Rules sharing the same MinQuantity keep
// their input order: the earlier rule wins.
func SelectBestTier(rules []models.DiscountRule, lines []Line) *models.DiscountRule {
	totalQty := 0
	categories := make(map[string]bool)
	for _, line := range lines {
		if line.Quantity > 0 {
			totalQty += line.Quantity
		}
		if line.Category != "" {
			categories[line.Category] = true
		}
	}

	var best *models.DiscountRule
	for i := range rules {
		rule := &rules[i]
		if !rule.IsActive {
			continue
		}
		if totalQty < rule.MinQuantity {
			continue
		}
		if rule.RequiredCategory != "" && !categories[rule.RequiredCategory] {
			continue
		}
		if best == nil || rule.MinQuantity > best.MinQuantity {
			best = rule
		}
	}
	return best
}

// RuleDiscount converts a selected rule into the normalized descriptor used
// by ComputeTotal.
func RuleDiscount(rule *models.DiscountRule) *Discount {
	if rule == nil {
		return nil
	}
	return &Discount{Kind: rule.DiscountType, Value: rule.DiscountValue}
}
