package routes

import (
	"github.com/bitebuddy/bitebuddy-api/controllers"
	"github.com/bitebuddy/bitebuddy-api/middlewares"
	"github.com/gin-gonic/gin"
)

func ProfileRoutes(server *gin.Engine) {
	profile := server.Group("/", middlewares.RequireAuth())
	{
		profile.GET("/dashboard", controllers.GetDashboard)
		profile.GET("/profile", controllers.GetProfile)
		profile.PUT("/profile", controllers.UpdateProfile)
		profile.POST("/profile/photo", controllers.UploadProfilePic)
		profile.DELETE("/profile", controllers.DeleteAccount)
	}
}
