package summary

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ethanbaker/notes-summarizer/internal/config"
	"github.com/ethanbaker/notes-summarizer/internal/llm"
)

const (
	// SystemPrompt establishes the assistant's role for every request
	SystemPrompt = "You are a professional meeting notes summarizer. Create clear, structured summaries based on the user's specific instructions."

	// Placeholder is returned when the provider produces no text
	Placeholder = "No summary generated"

	// TranscriptSeparator sits between the quoted instructions and the transcript
	TranscriptSeparator = "\n\nTranscript:\n"

	MaxTokens   = 1000
	Temperature = 0.7
)

var (
	ErrInvalidInput      = errors.New("transcript and prompt are required")
	ErrMissingCredential = errors.New("llm api key not configured")
)

// Service turns a transcript and an instruction prompt into a summary
type Service struct {
	cfg       config.LLMConfig
	completer llm.Completer
}

// NewService creates a summary service backed by completer
func NewService(cfg config.LLMConfig, completer llm.Completer) *Service {
	return &Service{cfg: cfg, completer: completer}
}

// UserMessage embeds the instruction prompt and the transcript in the user turn
func UserMessage(prompt, transcript string) string {
	return fmt.Sprintf("Please summarize the following transcript according to these instructions: \"%s\"%s%s", prompt, TranscriptSeparator, transcript)
}

// Summarize makes exactly one completion call for valid input. The credential
// is checked on every call so a missing key is reported per request.
func (s *Service) Summarize(ctx context.Context, transcript, prompt string) (string, error) {
	if transcript == "" || prompt == "" {
		return "", ErrInvalidInput
	}

	if strings.TrimSpace(s.cfg.APIKey) == "" {
		return "", ErrMissingCredential
	}

	resp, err := s.completer.CompleteChat(ctx, llm.ChatRequest{
		Model: s.cfg.Model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: SystemPrompt},
			{Role: llm.RoleUser, Content: UserMessage(prompt, transcript)},
		},
		MaxTokens:   MaxTokens,
		Temperature: Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0] == "" {
		return Placeholder, nil
	}

	return resp.Choices[0], nil
}
