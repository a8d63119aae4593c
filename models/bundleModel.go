package models

import "gorm.io/gorm"

const (
	BundleAdminFixed = "admin_fixed"
	BundleUserCustom = "user_custom"
)

type BundleItem struct {
	gorm.Model
	BundleID  int `json:"bundleId"`
	ProductID int `json:"productId" binding:"required"`
	Quantity  int `json:"quantity" binding:"required,min=1"`
}

type Bundle struct {
	gorm.Model
	Name          string       `json:"name" binding:"required"`
	Description   string       `json:"description"`
	Type          string       `json:"type" binding:"required,oneof=admin_fixed user_custom"`
	Items         []BundleItem `json:"items" gorm:"foreignKey:BundleID;constraint:OnDelete:CASCADE"`
	PriceOverride *float64     `json:"priceOverride"`
	CoverImageUrl string       `json:"coverImageUrl"`
}
