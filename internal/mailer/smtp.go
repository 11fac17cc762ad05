package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

// SMTPConfig holds relay connection settings
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// SMTPSender sends messages through an SMTP relay on the submission port,
// upgrading the connection with STARTTLS
type SMTPSender struct {
	cfg SMTPConfig
}

// NewSMTPSender creates a sender for the given relay
func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// Send dials the relay, sends msg once and closes the connection
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m, err := s.build(msg)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(s.cfg.Host,
		mail.WithPort(s.cfg.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.Username),
		mail.WithPassword(s.cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("failed to send message via %s:%d: %w", s.cfg.Host, s.cfg.Port, err)
	}

	return nil
}

// build converts msg into a go-mail message
func (s *SMTPSender) build(msg Message) (*mail.Msg, error) {
	m := mail.NewMsg()

	if err := m.From(msg.From); err != nil {
		return nil, fmt.Errorf("invalid sender address %q: %w", msg.From, err)
	}
	if err := m.ToFromString(msg.ToHeader()); err != nil {
		return nil, fmt.Errorf("invalid recipients %q: %w", msg.ToHeader(), err)
	}

	m.Subject(msg.Subject)
	if msg.TextBody == "" {
		m.SetBodyString(mail.TypeTextHTML, msg.HTMLBody)
		return m, nil
	}

	// Plain text first so clients prefer the HTML alternative
	m.SetBodyString(mail.TypeTextPlain, msg.TextBody)
	m.AddAlternativeString(mail.TypeTextHTML, msg.HTMLBody)

	return m, nil
}
