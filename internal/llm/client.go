package llm

import (
	"context"
	"strings"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// Message is a single chat message
type Message struct {
	Role    string
	Content string
}

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// ChatRequest describes one non-streaming chat completion
type ChatRequest struct {
	Model       string
	Messages    []Message
	MaxTokens   int64
	Temperature float64
}

// ChatResponse holds the text of every returned choice, in order
type ChatResponse struct {
	Choices []string
}

// Completer sends chat completions to a language-model provider
type Completer interface {
	CompleteChat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}

// Client talks to any OpenAI-compatible chat completion endpoint
type Client struct {
	client openai.Client
}

// NewClient creates a client for baseURL authenticated with apiKey. The SDK's
// own retries are disabled so each call results in exactly one request.
func NewClient(apiKey, baseURL string, opts ...option.RequestOption) *Client {
	if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	base := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		base = append(base, option.WithBaseURL(baseURL))
	}

	return &Client{client: openai.NewClient(append(base, opts...)...)}
}

// CompleteChat sends req and returns the text of each choice
func (c *Client) CompleteChat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(req.Model),
		Messages: toParams(req.Messages),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(req.MaxTokens)
	}
	params.Temperature = openai.Float(req.Temperature)

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, err
	}

	resp := &ChatResponse{}
	for _, choice := range completion.Choices {
		resp.Choices = append(resp.Choices, choice.Message.Content)
	}
	return resp, nil
}

func toParams(messages []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}
