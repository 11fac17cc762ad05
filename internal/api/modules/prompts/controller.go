package prompts

import (
	"github.com/ethanbaker/notes-summarizer/internal/prompts"
	"github.com/ethanbaker/notes-summarizer/pkg/sdk"
	"github.com/gin-gonic/gin"
)

// listPresets returns the instruction prompt presets and the default one
func listPresets(presets *prompts.Presets) gin.HandlerFunc {
	resp := sdk.PromptsResponse{Default: presets.Default, Presets: presets.Presets}

	return func(c *gin.Context) {
		c.JSON(sdk.NewSuccessResponse(resp).AsGinResponse())
	}
}
