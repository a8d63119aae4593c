package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProductImage struct {
	gorm.Model
	Url       string `json:"url" binding:"required"`
	Position  int    `json:"position"`
	ProductID int    `json:"productId" binding:"required"`
}

type Product struct {
	gorm.Model
	Brand            string         `json:"brand"`
	Name             string         `json:"name" binding:"required"`
	NameTranslations datatypes.JSON `json:"nameTranslations"`
	Description      string         `json:"description"`
	Price            float64        `json:"price" binding:"required"`
	Category         string         `json:"category" binding:"required"`
	Sizes            datatypes.JSON `json:"sizes"`
	Images           []ProductImage `json:"images" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}
