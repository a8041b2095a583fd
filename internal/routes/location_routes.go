package routes

import (
	"github.com/gin-gonic/gin"

	"gps_tracker/internal/controllers"
)

func LocationRoutes(r *gin.Engine, lc *controllers.LocationController) {
	api := r.Group("/api")
	{
		api.POST("/location", lc.SubmitLocation)
		api.GET("/locations", lc.ListLocations)
	}
}
