package models

import (
	"time"

	"gorm.io/gorm"
)

// PromoCode codes are canonicalized to uppercase before storage so lookup
// stays case-insensitive regardless of collation.
type PromoCode struct {
	gorm.Model
	Code          string     `json:"code" binding:"required" gorm:"uniqueIndex"`
	Description   string     `json:"description"`
	DiscountType  string     `json:"discountType" binding:"required,oneof=percentage fixed"`
	DiscountValue float64    `json:"discountValue" binding:"required"`
	MaxUses       *int       `json:"maxUses"`
	UsedCount     int        `json:"usedCount"`
	ExpiresAt     *time.Time `json:"expiresAt"`
	IsActive      bool       `json:"isActive"`
}
