package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the RA Store API.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create user account
- POST "/auth/login" - Access user account
- POST "/auth/verify-email/:activationToken" - Activate user account
- POST "/auth/forgot-password" - Request password reset
- POST "/auth/reset-password/:resetToken" - Reset user password

PRODUCT
- GET "/product" - List products (search, category, pagination)
- GET "/product/:id" - Get product by ID
- POST "/product" - Create product (admin)
- PUT "/product/:id" - Update product (admin)
- DELETE "/product/:id" - Delete product (admin)
- POST "/product-images" - Upload product images (admin)

BUNDLE
- GET "/bundle" - List bundles
- GET "/bundle/:id" - Get bundle by ID
- GET "/bundle/:id/quote" - Price a bundle (computed sum, final price, savings)
- POST "/bundle" - Create bundle (user_custom for shoppers, admin_fixed for admins)
- PUT "/bundle/:id" - Update bundle (admin)
- DELETE "/bundle/:id" - Delete bundle (admin)
- POST "/bundle-cover" - Upload bundle cover image (admin)

DISCOUNT RULES
- GET "/discount-rule/active" - List active quantity discount tiers
- GET "/discount-rule" - List all rules (admin)
- POST "/discount-rule" - Create rule (admin)
- PUT "/discount-rule/:id" - Update rule (admin)
- DELETE "/discount-rule/:id" - Delete rule (admin)

PROMO CODES
- POST "/promo/validate" - Validate a promo code
- GET "/promo" - List promo codes (admin)
- POST "/promo" - Create promo code (admin)
- PUT "/promo/:id" - Update promo code (admin)
- DELETE "/promo/:id" - Delete promo code (admin)

CART
- GET "/cart" - Get the caller's cart
- GET "/cart/quote" - Price the cart (optional ?promo=CODE)
- POST "/cart/items" - Add an item
- PATCH "/cart/items/:itemId" - Update quantity
- DELETE "/cart/items/:itemId" - Remove an item
- POST "/cart/bundle" - Add a bundle to the cart
- DELETE "/cart/bundle/:bundleId" - Remove a bundle from the cart
- DELETE "/cart" - Clear the cart
- POST "/cart/merge" - Merge a guest cart into the user cart at login

ORDER
- POST "/order" - Checkout (creates order from the cart)
- GET "/order/user/:userId" - Get orders for a user
- GET "/order/:orderId" - Get order by ID
- GET "/order" - List all orders (admin)
- PATCH "/order/:orderId" - Update order status (admin)
- DELETE "/order/:orderId" - Delete order (admin)
- GET "/order/undelivered/count" - Count undelivered orders (admin)`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
