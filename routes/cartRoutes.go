package routes

import (
	"github.com/bitebuddy/bitebuddy-api/controllers"
	"github.com/bitebuddy/bitebuddy-api/middlewares"
	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine) {
	cart := server.Group("/cart", middlewares.RequireAuth())
	{
		cart.POST("", controllers.AddToCart)
		cart.GET("", controllers.GetCart)
		cart.PATCH("/:cartItemId", controllers.UpdateCartItem)
		cart.DELETE("/:cartItemId", controllers.RemoveCartItem)
	}
}
