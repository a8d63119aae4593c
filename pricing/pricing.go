// Package pricing computes bundle and cart prices. It is the single place
// subtotals, quantity-tier discounts and promo codes are resolved; the bundle
// builder preview, the cart sidebar and checkout all go through ComputeTotal
// so the three surfaces can never disagree on a price.
package pricing

import "errors"

var (
	ErrInvalidBundle      = errors.New("bundle must contain at least one item")
	ErrPromoNotFound      = errors.New("promo code not found")
	ErrPromoExpired       = errors.New("promo code has expired")
	ErrPromoUsageExceeded = errors.New("promo code usage limit reached")
	ErrPromoInactive      = errors.New("promo code is not active")
)

// Discount kinds shared by discount rules and promo codes.
const (
	KindPercentage = "percentage"
	KindFixed      = "fixed"
)

// Discount sources reported in a Result.
const (
	SourceNone         = "none"
	SourcePromo        = "promo"
	SourceQuantityTier = "quantity_tier"
)

// Discount is a normalized descriptor shared by promo codes and discount
// rules so total computation is kind-agnostic.
type Discount struct {
	Kind  string  `json:"kind"`
	Value float64 `json:"value"`
	Code  string  `json:"code,omitempty"`
}

// Line is one cart row as the engine sees it. BundleID groups exploded
// bundle rows; nil means standalone. Price is the unit-price snapshot taken
// when the row was added to the cart.
type Line struct {
	ProductID           int
	Category            string
	Variant             string
	Quantity            int
	Price               float64
	BundleID            *int
	BundlePriceOverride *float64
}

// Result is the pricing outcome consumed identically by the bundle builder,
// the cart sidebar and checkout. Amounts are not rounded; rounding happens
// only at display or persistence via Round2.
type Result struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
	Source   string  `json:"appliedDiscountSource"`
	Code     string  `json:"appliedCode,omitempty"`
	RuleID   uint    `json:"appliedRuleId,omitempty"`
}
