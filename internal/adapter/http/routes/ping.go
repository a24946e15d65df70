package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// addPingRoutes exposes the liveness probe used by the load balancer.
func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
