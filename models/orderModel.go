package models

import "gorm.io/gorm"

type Order struct {
	gorm.Model
	UserID            int         `json:"userId"`
	FirstName         string      `json:"firstName" binding:"required"`
	LastName          string      `json:"lastName" binding:"required"`
	Email             string      `json:"email" binding:"required,email"`
	Phone             string      `json:"phone" binding:"required"`
	DeliveryLocation  string      `json:"deliveryLocation" binding:"required"`
	Subtotal          float64     `json:"subtotal"`
	Discount          float64     `json:"discount"`
	DiscountSource    string      `json:"discountSource"`
	PromoCode         string      `json:"promoCode"`
	Total             float64     `json:"total"`
	Status            string      `json:"status"`
	PaymentTrackingId string      `json:"paymentTrackingId"`
	PaymentStatus     string      `json:"paymentStatus"`
	OrderItems        []OrderItem `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type OrderItem struct {
	gorm.Model
	OrderID   int     `json:"orderId"`
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Variant   string  `json:"variant"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	BundleID  *int    `json:"bundleId"`
}
