package routes

import (
	"github.com/AnasFahiem/RA-Store-sub000/controllers"
	"github.com/AnasFahiem/RA-Store-sub000/middlewares"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine) {
	server.POST("/order", controllers.Checkout)
	server.GET("/order/user/:userId", middlewares.RequireAuth(), controllers.GetOrdersByCustomerId)
	server.GET("/order/:orderId", middlewares.RequireAuth(), controllers.GetOrderById)

	admin := server.Group("/", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.GET("/order", controllers.GetOrders)
		admin.PATCH("/order/:orderId", controllers.UpdateOrderStatus)
		admin.DELETE("/order/:orderId", controllers.DeleteOrder)
		admin.GET("/order/undelivered/count", controllers.GetUndeliveredOrders)
	}
}
