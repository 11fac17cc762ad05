package health

import (
	"github.com/ethanbaker/api/pkg/api_types"
	"github.com/gin-gonic/gin"
)

// Status reports which upstream providers have credentials. The server stays
// up without them; the matching endpoints fail at request time instead.
type Status struct {
	LLMConfigured  bool `json:"llm_configured"`
	SMTPConfigured bool `json:"smtp_configured"`
}

// Return status of the API
func getStatus(status Status) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := api_types.NewSuccessResponse("OK", status)
		c.JSON(res.AsGinResponse())
	}
}
