package routes

import (
	"github.com/AnasFahiem/RA-Store-sub000/controllers"
	"github.com/AnasFahiem/RA-Store-sub000/middlewares"
	"github.com/gin-gonic/gin"
)

func BundleRoutes(server *gin.Engine) {
	server.GET("/bundle", controllers.GetBundles)
	server.GET("/bundle/:id", controllers.GetBundle)
	server.GET("/bundle/:id/quote", controllers.GetBundleQuote)

	// Shoppers create their own user_custom bundles; CreateBundle enforces
	// the admin check for curated bundles and price overrides.
	server.POST("/bundle", middlewares.RequireAuth(), controllers.CreateBundle)

	admin := server.Group("/", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.PUT("/bundle/:id", controllers.UpdateBundle)
		admin.DELETE("/bundle/:id", controllers.DeleteBundle)
		admin.POST("/bundle-cover", controllers.UploadBundleCover)
	}
}
