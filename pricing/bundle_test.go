package pricing

import (
	"errors"
	"testing"

	"github.com/AnasFahiem/RA-Store-sub000/models"
)

func floatPtr(v float64) *float64 { return &v }

func testBundle(override *float64) models.Bundle {
	return models.Bundle{
		Name:          "Starter Pack",
		Type:          models.BundleAdminFixed,
		PriceOverride: override,
		Items: []models.BundleItem{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		},
	}
}

func testCatalog() map[int]models.Product {
	return map[int]models.Product{
		1: {Price: 10},
		2: {Price: 15},
	}
}

func TestQuoteBundle(t *testing.T) {
	t.Run("no override prices at computed sum", func(t *testing.T) {
		quote, err := QuoteBundle(testBundle(nil), testCatalog())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.ComputedSum != 35 || quote.FinalPrice != 35 || quote.Savings != 0 {
			t.Fatalf("unexpected quote: %+v", quote)
		}
	})

	t.Run("override wins and shows savings", func(t *testing.T) {
		quote, err := QuoteBundle(testBundle(floatPtr(30)), testCatalog())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.ComputedSum != 35 || quote.FinalPrice != 30 || quote.Savings != 5 {
			t.Fatalf("unexpected quote: %+v", quote)
		}
	})

	t.Run("override above computed sum shows zero savings", func(t *testing.T) {
		quote, err := QuoteBundle(testBundle(floatPtr(50)), testCatalog())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.FinalPrice != 50 || quote.Savings != 0 {
			t.Fatalf("savings must never go negative: %+v", quote)
		}
	})

	t.Run("empty bundle is rejected", func(t *testing.T) {
		_, err := QuoteBundle(models.Bundle{}, testCatalog())
		if !errors.Is(err, ErrInvalidBundle) {
			t.Fatalf("expected ErrInvalidBundle, got %v", err)
		}
	})

	t.Run("unknown product prices its items at zero", func(t *testing.T) {
		bundle := testBundle(nil)
		bundle.Items = append(bundle.Items, models.BundleItem{ProductID: 99, Quantity: 4})
		quote, err := QuoteBundle(bundle, testCatalog())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.ComputedSum != 35 {
			t.Fatalf("expected missing product to contribute 0, got %+v", quote)
		}
	})
}
