package mailer

import (
	"context"
	"strings"
)

// Sender delivers a single email message
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Message represents one outbound email. All recipients share a single To
// header; there is no per-recipient personalization.
type Message struct {
	From     string
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// ToHeader returns the recipients joined the way they appear in the To header
func (m Message) ToHeader() string {
	return strings.Join(m.To, ", ")
}
