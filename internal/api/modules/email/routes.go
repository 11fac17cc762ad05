package email

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the routes for the email module
func RegisterRoutes(g *gin.RouterGroup, ctl *Controller) {
	g.POST("/send-email", ctl.SendEmail)
}
