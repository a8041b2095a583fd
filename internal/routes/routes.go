package routes

import (
	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"gps_tracker/internal/controllers"
)

// SetupRouter builds the Gin engine with recovery and request logging, then
// registers all API routes against the injected controllers.
func SetupRouter(lc *controllers.LocationController, cc *controllers.ClientConfigController) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())

	// Log all incoming requests
	r.Use(ginlogger.SetLogger())

	LocationRoutes(r, lc)
	ClientConfigRoutes(r, cc)

	return r
}
