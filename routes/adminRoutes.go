package routes

import (
	"github.com/bitebuddy/bitebuddy-api/controllers"
	"github.com/bitebuddy/bitebuddy-api/middlewares"
	"github.com/gin-gonic/gin"
)

func AdminRoutes(server *gin.Engine) {
	admin := server.Group("/admin", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.POST("/services", controllers.CreateService)
		admin.PUT("/services/:id", controllers.UpdateService)
		admin.POST("/menu", controllers.CreateMenuItem)
		admin.PUT("/menu/:id", controllers.UpdateMenuItem)
		admin.POST("/catalog-photos", controllers.UploadCatalogPhoto)

		admin.GET("/orders", controllers.GetOrders)
		admin.GET("/orders/pending-count", controllers.GetPendingOrderCount)
		admin.PATCH("/orders/:orderId", controllers.UpdateOrderStatus)
		admin.DELETE("/orders/:orderId", controllers.DeleteOrder)
	}
}
