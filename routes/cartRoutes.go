package routes

import (
	"github.com/AnasFahiem/RA-Store-sub000/controllers"
	"github.com/AnasFahiem/RA-Store-sub000/middlewares"
	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine) {
	cart := server.Group("/cart")
	{
		cart.GET("", controllers.GetCart)
		cart.GET("/quote", controllers.QuoteCart)
		cart.POST("/items", controllers.AddCartItem)
		cart.PATCH("/items/:itemId", controllers.UpdateCartItemQuantity)
		cart.DELETE("/items/:itemId", controllers.DeleteCartItem)
		cart.POST("/bundle", controllers.AddBundleToCart)
		cart.DELETE("/bundle/:bundleId", controllers.RemoveBundleFromCart)
		cart.DELETE("", controllers.ClearCart)
		cart.POST("/merge", middlewares.RequireAuth(), controllers.MergeCart)
	}
}
