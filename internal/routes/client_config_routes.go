package routes

import (
	"github.com/gin-gonic/gin"

	"gps_tracker/internal/controllers"
)

func ClientConfigRoutes(r *gin.Engine, cc *controllers.ClientConfigController) {
	api := r.Group("/api")
	{
		api.GET("/client-config", cc.GetClientConfig)
	}
}
