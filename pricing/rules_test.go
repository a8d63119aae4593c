package pricing

import (
	"testing"

	"github.com/AnasFahiem/RA-Store-sub000/models"
)

func rule(id uint, minQty int, kind string, value float64, category string, active bool) models.DiscountRule {
	r := models.DiscountRule{
		MinQuantity:      minQty,
		DiscountType:     kind,
		DiscountValue:    value,
		RequiredCategory: category,
		IsActive:         active,
	}
	r.ID = id
	return r
}

func TestSelectBestTier(t *testing.T) {
	lines := []Line{
		{ProductID: 1, Category: "hoodies", Quantity: 3, Price: 10},
		{ProductID: 2, Category: "tees", Quantity: 2, Price: 15},
	}

	t.Run("highest minQuantity wins over larger discount", func(t *testing.T) {
		rules := []models.DiscountRule{
			rule(1, 3, KindPercentage, 10, "", true),
			rule(2, 5, KindFixed, 20, "", true),
		}
		best := SelectBestTier(rules, lines)
		if best == nil || best.ID != 2 {
			t.Fatalf("expected rule 2 (minQty 5), got %+v", best)
		}
	})

	t.Run("no rule applicable returns nil", func(t *testing.T) {
		rules := []models.DiscountRule{
			rule(1, 10, KindPercentage, 10, "", true),
		}
		if best := SelectBestTier(rules, lines); best != nil {
			t.Fatalf("expected nil, got %+v", best)
		}
	})

	t.Run("inactive rules are ignored", func(t *testing.T) {
		rules := []models.DiscountRule{
			rule(1, 5, KindFixed, 20, "", false),
			rule(2, 3, KindPercentage, 10, "", true),
		}
		best := SelectBestTier(rules, lines)
		if best == nil || best.ID != 2 {
			t.Fatalf("expected active rule 2, got %+v", best)
		}
	})

	t.Run("required category must match at least one line", func(t *testing.T) {
		rules := []models.DiscountRule{
			rule(1, 3, KindPercentage, 10, "shoes", true),
			rule(2, 3, KindPercentage, 5, "tees", true),
		}
		best := SelectBestTier(rules, lines)
		if best == nil || best.ID != 2 {
			t.Fatalf("expected tee-scoped rule 2, got %+v", best)
		}
	})

	t.Run("equal minQuantity keeps the earlier rule", func(t *testing.T) {
		rules := []models.DiscountRule{
			rule(1, 5, KindPercentage, 10, "", true),
			rule(2, 5, KindFixed, 50, "", true),
		}
		best := SelectBestTier(rules, lines)
		if best == nil || best.ID != 1 {
			t.Fatalf("expected first rule on tie, got %+v", best)
		}
	})

	t.Run("negative quantities do not count toward the threshold", func(t *testing.T) {
		rules := []models.DiscountRule{
			rule(1, 3, KindPercentage, 10, "", true),
		}
		badLines := []Line{
			{ProductID: 1, Quantity: -5, Price: 10},
			{ProductID: 2, Quantity: 2, Price: 10},
		}
		if best := SelectBestTier(rules, badLines); best != nil {
			t.Fatalf("expected nil, got %+v", best)
		}
	})

	t.Run("empty rule set returns nil", func(t *testing.T) {
		if best := SelectBestTier(nil, lines); best != nil {
			t.Fatalf("expected nil, got %+v", best)
		}
	})
}
