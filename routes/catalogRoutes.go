package routes

import (
	"github.com/bitebuddy/bitebuddy-api/controllers"
	"github.com/bitebuddy/bitebuddy-api/middlewares"
	"github.com/gin-gonic/gin"
)

func CatalogRoutes(server *gin.Engine) {
	catalog := server.Group("/", middlewares.RequireAuth())
	{
		catalog.GET("/services", controllers.GetServices)
		catalog.GET("/services/:id", controllers.GetService)
		catalog.GET("/menu", controllers.GetMenu)
		catalog.GET("/menu/:id", controllers.GetMenuItem)
	}
}
