package summary

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the routes for the summary module
func RegisterRoutes(g *gin.RouterGroup, ctl *Controller) {
	g.POST("/generate-summary", ctl.GenerateSummary)
}
