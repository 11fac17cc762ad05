package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethanbaker/notes-summarizer/internal/mailer"
)

var ErrInvalidInput = errors.New("summary and recipients are required")

// Service builds summary emails and hands them to a Sender
type Service struct {
	from   string
	sender mailer.Sender
}

// NewService creates an email service sending as from
func NewService(from string, sender mailer.Sender) *Service {
	return &Service{from: from, sender: sender}
}

// BuildMessage assembles the single outbound message for a summary
func (s *Service) BuildMessage(summary string, recipients []string, note string) (mailer.Message, error) {
	html, err := mailer.SummaryEmailHTML(summary, note)
	if err != nil {
		return mailer.Message{}, fmt.Errorf("failed to render email: %w", err)
	}

	return mailer.Message{
		From:     s.from,
		To:       recipients,
		Subject:  mailer.SummarySubject,
		HTMLBody: html,
		TextBody: mailer.SummaryEmailText(summary, note),
	}, nil
}

// Send makes exactly one send attempt for valid input
func (s *Service) Send(ctx context.Context, summary string, recipients []string, note string) error {
	if summary == "" || len(recipients) == 0 {
		return ErrInvalidInput
	}

	msg, err := s.BuildMessage(summary, recipients, note)
	if err != nil {
		return err
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send summary email: %w", err)
	}

	return nil
}
