package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ClientConfigController serves the settings the browser client reads before
// asking for geolocation permission.
type ClientConfigController struct {
	Verbosity string
}

func NewClientConfigController(verbosity string) *ClientConfigController {
	return &ClientConfigController{Verbosity: verbosity}
}

// GetClientConfig tells the client how much permission state it may surface:
// "quiet" hides why no location was collected, "status" exposes the
// pending/denied/error progression.
func (cc *ClientConfigController) GetClientConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"verbosity": cc.Verbosity})
}
