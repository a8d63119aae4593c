package pricing

import (
	"testing"

	"github.com/AnasFahiem/RA-Store-sub000/models"
)

func TestComputeTotalSubtotal(t *testing.T) {
	bundleID := 7

	t.Run("standalone items sum price times quantity", func(t *testing.T) {
		lines := []Line{
			{ProductID: 1, Quantity: 2, Price: 10},
			{ProductID: 2, Quantity: 1, Price: 15},
		}
		result := ComputeTotal(lines, nil, nil)
		if result.Subtotal != 35 || result.Total != 35 || result.Discount != 0 {
			t.Fatalf("unexpected result: %+v", result)
		}
		if result.Source != SourceNone {
			t.Fatalf("expected no discount source, got %q", result.Source)
		}
	})

	t.Run("bundle group without override contributes its line sum", func(t *testing.T) {
		lines := []Line{
			{ProductID: 1, Quantity: 2, Price: 10, BundleID: &bundleID},
			{ProductID: 2, Quantity: 1, Price: 15, BundleID: &bundleID},
		}
		result := ComputeTotal(lines, nil, nil)
		if result.Subtotal != 35 {
			t.Fatalf("expected subtotal 35, got %v", result.Subtotal)
		}
	})

	t.Run("bundle group with override contributes the override once", func(t *testing.T) {
		override := 30.0
		lines := []Line{
			{ProductID: 1, Quantity: 2, Price: 10, BundleID: &bundleID, BundlePriceOverride: &override},
			{ProductID: 2, Quantity: 1, Price: 15, BundleID: &bundleID, BundlePriceOverride: &override},
			{ProductID: 3, Quantity: 1, Price: 5},
		}
		result := ComputeTotal(lines, nil, nil)
		if result.Subtotal != 35 {
			t.Fatalf("expected 30 (override) + 5 (standalone) = 35, got %v", result.Subtotal)
		}
	})

	t.Run("distinct bundles contribute independently", func(t *testing.T) {
		otherID := 8
		override := 18.0
		lines := []Line{
			{ProductID: 1, Quantity: 1, Price: 10, BundleID: &bundleID},
			{ProductID: 1, Quantity: 1, Price: 10, BundleID: &otherID, BundlePriceOverride: &override},
			{ProductID: 1, Quantity: 1, Price: 10},
		}
		result := ComputeTotal(lines, nil, nil)
		if result.Subtotal != 38 {
			t.Fatalf("expected 10 + 18 + 10 = 38, got %v", result.Subtotal)
		}
	})

	t.Run("defensive zero defaults for malformed lines", func(t *testing.T) {
		lines := []Line{
			{ProductID: 1, Quantity: -2, Price: 10},
			{ProductID: 2, Quantity: 3, Price: -5},
			{ProductID: 3},
		}
		result := ComputeTotal(lines, nil, nil)
		if result.Subtotal != 0 || result.Total != 0 {
			t.Fatalf("expected zero subtotal, got %+v", result)
		}
	})

	t.Run("empty cart", func(t *testing.T) {
		result := ComputeTotal(nil, nil, nil)
		if result.Subtotal != 0 || result.Total != 0 || result.Source != SourceNone {
			t.Fatalf("unexpected result: %+v", result)
		}
	})
}

func TestComputeTotalDiscounts(t *testing.T) {
	fifty := []Line{{ProductID: 1, Quantity: 5, Price: 10}}

	t.Run("percentage promo", func(t *testing.T) {
		promo := &Discount{Kind: KindPercentage, Value: 20, Code: "SAVE20"}
		result := ComputeTotal(fifty, nil, promo)
		if result.Discount != 10 || result.Total != 40 {
			t.Fatalf("expected 20%% of 50 = 10 off, got %+v", result)
		}
		if result.Source != SourcePromo || result.Code != "SAVE20" {
			t.Fatalf("unexpected source: %+v", result)
		}
	})

	t.Run("fixed promo capped at subtotal", func(t *testing.T) {
		promo := &Discount{Kind: KindFixed, Value: 1000, Code: "BIG"}
		result := ComputeTotal(fifty, nil, promo)
		if result.Discount != 50 || result.Total != 0 {
			t.Fatalf("discount must cap at subtotal: %+v", result)
		}
	})

	t.Run("quantity tier applies when no promo", func(t *testing.T) {
		rules := []models.DiscountRule{
			rule(1, 3, KindPercentage, 10, "", true),
			rule(2, 5, KindFixed, 20, "", true),
		}
		result := ComputeTotal(fifty, rules, nil)
		if result.Discount != 20 || result.Total != 30 {
			t.Fatalf("expected the 5-unit fixed tier, got %+v", result)
		}
		if result.Source != SourceQuantityTier || result.RuleID != 2 {
			t.Fatalf("unexpected tier attribution: %+v", result)
		}
	})

	t.Run("promo takes precedence over eligible tier, never stacked", func(t *testing.T) {
		rules := []models.DiscountRule{
			rule(1, 3, KindFixed, 15, "", true),
		}
		promo := &Discount{Kind: KindPercentage, Value: 20, Code: "SAVE20"}
		result := ComputeTotal(fifty, rules, promo)
		if result.Discount != 10 || result.Total != 40 {
			t.Fatalf("tier must not stack with promo: %+v", result)
		}
		if result.Source != SourcePromo {
			t.Fatalf("expected promo source, got %q", result.Source)
		}
	})

	t.Run("tier below threshold leaves total unchanged", func(t *testing.T) {
		rules := []models.DiscountRule{
			rule(1, 10, KindFixed, 20, "", true),
		}
		result := ComputeTotal(fifty, rules, nil)
		if result.Discount != 0 || result.Total != 50 || result.Source != SourceNone {
			t.Fatalf("unexpected result: %+v", result)
		}
	})

	t.Run("negative discount value degrades to zero", func(t *testing.T) {
		promo := &Discount{Kind: KindFixed, Value: -5}
		result := ComputeTotal(fifty, nil, promo)
		if result.Discount != 0 || result.Total != 50 {
			t.Fatalf("unexpected result: %+v", result)
		}
	})

	t.Run("unknown discount kind contributes nothing", func(t *testing.T) {
		promo := &Discount{Kind: "bogus", Value: 30}
		result := ComputeTotal(fifty, nil, promo)
		if result.Discount != 0 || result.Total != 50 {
			t.Fatalf("unexpected result: %+v", result)
		}
	})
}
