package pricing

import (
	"errors"
	"testing"
	"time"

	"github.com/AnasFahiem/RA-Store-sub000/models"
)

func intPtr(v int) *int { return &v }

func timePtr(v time.Time) *time.Time { return &v }

func TestNormalizeCode(t *testing.T) {
	if got := NormalizeCode("  save20 "); got != "SAVE20" {
		t.Fatalf("expected SAVE20, got %q", got)
	}
}

func TestValidatePromo(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	valid := func() *models.PromoCode {
		return &models.PromoCode{
			Code:          "SAVE20",
			DiscountType:  KindPercentage,
			DiscountValue: 20,
			IsActive:      true,
		}
	}

	t.Run("missing promo -> not found", func(t *testing.T) {
		_, err := ValidatePromo(nil, now)
		if !errors.Is(err, ErrPromoNotFound) {
			t.Fatalf("expected ErrPromoNotFound, got %v", err)
		}
	})

	t.Run("past expiry -> expired", func(t *testing.T) {
		promo := valid()
		promo.ExpiresAt = timePtr(now.Add(-time.Hour))
		_, err := ValidatePromo(promo, now)
		if !errors.Is(err, ErrPromoExpired) {
			t.Fatalf("expected ErrPromoExpired, got %v", err)
		}
	})

	t.Run("usage cap reached -> usage exceeded", func(t *testing.T) {
		promo := valid()
		promo.MaxUses = intPtr(5)
		promo.UsedCount = 5
		_, err := ValidatePromo(promo, now)
		if !errors.Is(err, ErrPromoUsageExceeded) {
			t.Fatalf("expected ErrPromoUsageExceeded, got %v", err)
		}
	})

	t.Run("deactivated -> inactive", func(t *testing.T) {
		promo := valid()
		promo.IsActive = false
		_, err := ValidatePromo(promo, now)
		if !errors.Is(err, ErrPromoInactive) {
			t.Fatalf("expected ErrPromoInactive, got %v", err)
		}
	})

	t.Run("expiry checked before usage and active flag", func(t *testing.T) {
		promo := valid()
		promo.ExpiresAt = timePtr(now.Add(-time.Hour))
		promo.MaxUses = intPtr(1)
		promo.UsedCount = 1
		promo.IsActive = false
		_, err := ValidatePromo(promo, now)
		if !errors.Is(err, ErrPromoExpired) {
			t.Fatalf("expected ErrPromoExpired first, got %v", err)
		}
	})

	t.Run("valid promo yields normalized descriptor", func(t *testing.T) {
		promo := valid()
		promo.ExpiresAt = timePtr(now.Add(time.Hour))
		promo.MaxUses = intPtr(10)
		promo.UsedCount = 3
		discount, err := ValidatePromo(promo, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if discount.Kind != KindPercentage || discount.Value != 20 || discount.Code != "SAVE20" {
			t.Fatalf("unexpected descriptor: %+v", discount)
		}
	})

	t.Run("no expiry and no cap is fine", func(t *testing.T) {
		if _, err := ValidatePromo(valid(), now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
