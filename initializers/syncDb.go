package initializers

import (
	"log"

	"github.com/AnasFahiem/RA-Store-sub000/models"
)

func SyncDatabase() {
	DB.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.ProductImage{},
		&models.DiscountRule{},
		&models.PromoCode{},
		&models.Bundle{},
		&models.BundleItem{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	log.Println("Database synced successfully.")
}
