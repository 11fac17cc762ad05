package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// APIError is returned when the backend answers with a non-2xx status
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("summarizer backend returned %d: %s", e.StatusCode, e.Message)
}

// Client wraps calls to the summarizer backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

// GenerateSummary asks the backend to summarize transcript following prompt
func (c *Client) GenerateSummary(ctx context.Context, transcript, prompt string) (string, error) {
	req := GenerateSummaryRequest{Transcript: transcript, Prompt: prompt}

	var out GenerateSummaryResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/generate-summary", req, &out); err != nil {
		return "", err
	}

	return out.Summary, nil
}

// SendEmail asks the backend to email summary to recipients with an optional note
func (c *Client) SendEmail(ctx context.Context, summary string, recipients []string, note string) (string, error) {
	req := SendEmailRequest{Summary: summary, Recipients: recipients, Message: note}

	var out SendEmailResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/send-email", req, &out); err != nil {
		return "", err
	}

	return out.Message, nil
}

// GetPrompts fetches the instruction prompt presets
func (c *Client) GetPrompts(ctx context.Context) (*PromptsResponse, error) {
	var out PromptsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/prompts", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// doJSON is a helper to perform JSON requests to the backend
func (c *Client) doJSON(ctx context.Context, method, path string, in any, out any) error {
	// Create request body if input is provided
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)

		apiErr := &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(b))}
		var errBody ErrorBody
		if json.Unmarshal(b, &errBody) == nil && errBody.Error != "" {
			apiErr.Message = errBody.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
