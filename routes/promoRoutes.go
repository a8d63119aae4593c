package routes

import (
	"github.com/AnasFahiem/RA-Store-sub000/controllers"
	"github.com/AnasFahiem/RA-Store-sub000/middlewares"
	"github.com/gin-gonic/gin"
)

func PromoRoutes(server *gin.Engine) {
	server.POST("/promo/validate", controllers.ValidatePromoCode)

	admin := server.Group("/promo", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.GET("", controllers.GetPromoCodes)
		admin.POST("", controllers.CreatePromoCode)
		admin.PUT("/:id", controllers.UpdatePromoCode)
		admin.DELETE("/:id", controllers.DeletePromoCode)
	}
}
