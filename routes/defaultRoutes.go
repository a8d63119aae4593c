package routes

import (
	"github.com/AnasFahiem/RA-Store-sub000/controllers"
	"github.com/gin-gonic/gin"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
}
