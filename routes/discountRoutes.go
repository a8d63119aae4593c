package routes

import (
	"github.com/AnasFahiem/RA-Store-sub000/controllers"
	"github.com/AnasFahiem/RA-Store-sub000/middlewares"
	"github.com/gin-gonic/gin"
)

func DiscountRoutes(server *gin.Engine) {
	server.GET("/discount-rule/active", controllers.GetActiveDiscountRules)

	admin := server.Group("/discount-rule", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.GET("", controllers.GetDiscountRules)
		admin.POST("", controllers.CreateDiscountRule)
		admin.PUT("/:id", controllers.UpdateDiscountRule)
		admin.DELETE("/:id", controllers.DeleteDiscountRule)
	}
}
