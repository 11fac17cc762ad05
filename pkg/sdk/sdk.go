package sdk

import "net/http"

// Response pairs a status code with the JSON body written for it
type Response[T any] struct {
	Code int
	Body T
}

// AsGinResponse converts the Response to the arguments of gin's c.JSON
func (r Response[T]) AsGinResponse() (int, any) {
	return r.Code, r.Body
}

// ErrorBody is the payload of every failed request
type ErrorBody struct {
	Error string `json:"error"`
}

// NewSuccessResponse wraps body in a 200 response
func NewSuccessResponse[T any](body T) Response[T] {
	return Response[T]{Code: http.StatusOK, Body: body}
}

// NewErrorResponse builds an error response with the given status code
func NewErrorResponse(code int, message string) Response[ErrorBody] {
	return Response[ErrorBody]{Code: code, Body: ErrorBody{Error: message}}
}

/** Requests */

// GenerateSummaryRequest is the body of POST /api/generate-summary
type GenerateSummaryRequest struct {
	Transcript string `json:"transcript" binding:"required"`
	Prompt     string `json:"prompt" binding:"required"`
}

// SendEmailRequest is the body of POST /api/send-email
type SendEmailRequest struct {
	Summary    string   `json:"summary" binding:"required"`
	Recipients []string `json:"recipients" binding:"required,min=1"`
	Message    string   `json:"message,omitempty"`
}

/** Responses */

// GenerateSummaryResponse is returned by POST /api/generate-summary
type GenerateSummaryResponse struct {
	Summary string `json:"summary"`
}

// SendEmailResponse is returned by POST /api/send-email
type SendEmailResponse struct {
	Message string `json:"message"`
}

// PromptsResponse is returned by GET /api/prompts
type PromptsResponse struct {
	Default string   `json:"default"`
	Presets []string `json:"presets"`
}
