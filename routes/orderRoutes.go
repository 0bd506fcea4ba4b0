package routes

import (
	"github.com/bitebuddy/bitebuddy-api/controllers"
	"github.com/bitebuddy/bitebuddy-api/middlewares"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine) {
	orders := server.Group("/", middlewares.RequireAuth())
	{
		orders.POST("/checkout", controllers.Checkout)
		orders.GET("/orders", controllers.GetOrderHistory)
		orders.GET("/orders/:orderId", controllers.GetOrder)
	}
}
