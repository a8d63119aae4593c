package models

import "gorm.io/gorm"

// CartItem identity is (ProductID, Variant, BundleID). The same product may
// appear once standalone and once per distinct bundle; those rows never merge.
type CartItem struct {
	gorm.Model
	CartID              int      `json:"cartId"`
	ProductID           int      `json:"productId" binding:"required"`
	ProductName         string   `json:"productName"`
	Variant             string   `json:"variant"`
	Quantity            int      `json:"quantity" binding:"required,min=1"`
	Price               float64  `json:"price"`
	ProductImageUrl     string   `json:"productImageUrl"`
	BundleID            *int     `json:"bundleId"`
	BundleName          string   `json:"bundleName"`
	BundlePriceOverride *float64 `json:"bundlePriceOverride"`
}

// Cart belongs to a user once logged in, or to a browser session identified
// by SessionToken for guests. A guest cart is merged into the user cart at login.
type Cart struct {
	gorm.Model
	UserID       int        `json:"userId"`
	SessionToken string     `json:"sessionToken"`
	Items        []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}
