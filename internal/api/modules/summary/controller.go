package summary

import (
	"errors"
	"net/http"

	"github.com/ethanbaker/notes-summarizer/internal/api/middleware"
	"github.com/ethanbaker/notes-summarizer/internal/logger"
	"github.com/ethanbaker/notes-summarizer/pkg/sdk"
	"github.com/gin-gonic/gin"
)

// Controller exposes the summary service over HTTP
type Controller struct {
	service *Service
	log     *logger.Logger
}

// NewController creates a controller for service
func NewController(service *Service, log *logger.Logger) *Controller {
	return &Controller{service: service, log: log.WithComponent("summary")}
}

// GenerateSummary handles POST requests to summarize a transcript
func (ctl *Controller) GenerateSummary(c *gin.Context) {
	log := middleware.GetLogger(c, ctl.log)

	// Parse request body
	var req sdk.GenerateSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Debug().Err(err).Msg("rejected summary request")
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Transcript and prompt are required").AsGinResponse())
		return
	}

	summary, err := ctl.service.Summarize(c.Request.Context(), req.Transcript, req.Prompt)
	switch {
	case errors.Is(err, ErrInvalidInput):
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Transcript and prompt are required").AsGinResponse())
		return
	case errors.Is(err, ErrMissingCredential):
		log.Error().Msg("GROQ_API_KEY is not set")
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "LLM API key not configured").AsGinResponse())
		return
	case err != nil:
		log.Error().Err(err).Msg("error generating summary")
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to generate summary").AsGinResponse())
		return
	}

	c.JSON(sdk.NewSuccessResponse(sdk.GenerateSummaryResponse{Summary: summary}).AsGinResponse())
}
