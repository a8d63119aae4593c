package models

import "gorm.io/gorm"

// DiscountRule is an admin-defined quantity tier. A rule applies once the
// cart holds at least MinQuantity units and, when RequiredCategory is set,
// at least one item of that category.
type DiscountRule struct {
	gorm.Model
	Name             string  `json:"name" binding:"required"`
	MinQuantity      int     `json:"minQuantity" binding:"required"`
	DiscountType     string  `json:"discountType" binding:"required,oneof=percentage fixed"`
	DiscountValue    float64 `json:"discountValue" binding:"required"`
	RequiredCategory string  `json:"requiredCategory"`
	IsActive         bool    `json:"isActive"`
}
