package email

import (
	"errors"
	"net/http"

	"github.com/ethanbaker/notes-summarizer/internal/api/middleware"
	"github.com/ethanbaker/notes-summarizer/internal/logger"
	"github.com/ethanbaker/notes-summarizer/pkg/sdk"
	"github.com/gin-gonic/gin"
)

// Controller exposes the email service over HTTP
type Controller struct {
	service *Service
	log     *logger.Logger
}

// NewController creates a controller for service
func NewController(service *Service, log *logger.Logger) *Controller {
	return &Controller{service: service, log: log.WithComponent("email")}
}

// SendEmail handles POST requests to email a summary
func (ctl *Controller) SendEmail(c *gin.Context) {
	log := middleware.GetLogger(c, ctl.log)

	// Parse request body
	var req sdk.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Debug().Err(err).Msg("rejected email request")
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Summary and recipients are required").AsGinResponse())
		return
	}

	err := ctl.service.Send(c.Request.Context(), req.Summary, req.Recipients, req.Message)
	if errors.Is(err, ErrInvalidInput) {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Summary and recipients are required").AsGinResponse())
		return
	}
	if err != nil {
		log.Error().Err(err).Int("recipients", len(req.Recipients)).Msg("error sending email")
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to send email").AsGinResponse())
		return
	}

	log.Info().Int("recipients", len(req.Recipients)).Msg("summary email sent")
	c.JSON(sdk.NewSuccessResponse(sdk.SendEmailResponse{Message: "Email sent successfully"}).AsGinResponse())
}
