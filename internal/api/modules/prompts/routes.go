package prompts

import (
	"github.com/ethanbaker/notes-summarizer/internal/prompts"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the routes for the prompts module
func RegisterRoutes(g *gin.RouterGroup, presets *prompts.Presets) {
	g.GET("/prompts", listPresets(presets))
}
