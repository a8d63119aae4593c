package pricing

import (
	"strings"
	"time"

	"github.com/AnasFahiem/RA-Store-sub000/models"
)

// NormalizeCode canonicalizes a promo code for storage and lookup. Codes are
// case-insensitive and stored uppercase.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidatePromo checks a stored promo code against the clock and its own
// limits. The promo argument is nil when lookup found no row. Checks run in
// a fixed order so clients see stable error kinds: not found, expired,
// usage exceeded, inactive.
//
// Usage is only checked here, never consumed; the counter is incremented in
// the same transaction that creates the order.
func ValidatePromo(promo *models.PromoCode, now time.Time) (Discount, error) {
	if promo == nil {
		return Discount{}, ErrPromoNotFound
	}
	if promo.ExpiresAt != nil && now.After(*promo.ExpiresAt) {
		return Discount{}, ErrPromoExpired
	}
	if promo.MaxUses != nil && promo.UsedCount >= *promo.MaxUses {
		return Discount{}, ErrPromoUsageExceeded
	}
	if !promo.IsActive {
		return Discount{}, ErrPromoInactive
	}
	return Discount{
		Kind:  promo.DiscountType,
		Value: promo.DiscountValue,
		Code:  promo.Code,
	}, nil
}
