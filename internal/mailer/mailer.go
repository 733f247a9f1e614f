// Package mailer delivers result files as email attachments over SMTP.
package mailer

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/wneessen/go-mail"
)

// Config holds the SMTP connection settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string // defaults to Username
}

// Sender sends a message with a single attachment. The webserver depends on
// this interface so tests can substitute a fake.
type Sender interface {
	Send(ctx context.Context, to, subject, body, filename string, attachment []byte) error
}

// Client is the SMTP-backed Sender.
type Client struct {
	cfg Config
}

var _ Sender = (*Client)(nil)

// ErrNotConfigured indicates missing SMTP credentials.
var ErrNotConfigured = errors.New("mailer: SMTP credentials missing; set SMTP_HOST, SMTP_PORT, SMTP_USER and SMTP_PASS")

// New validates the configuration and returns a Client. Credentials are
// required up front so misconfiguration surfaces at startup, not on the
// first submission.
func New(cfg Config) (*Client, error) {
	if cfg.Host == "" || cfg.Username == "" || cfg.Password == "" {
		return nil, ErrNotConfigured
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	return &Client{cfg: cfg}, nil
}

// Send delivers the attachment to a single recipient using STARTTLS and
// PLAIN authentication.
func (c *Client) Send(ctx context.Context, to, subject, body, filename string, attachment []byte) error {
	msg, err := buildMessage(c.cfg.From, to, subject, body, filename, attachment)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(c.cfg.Host,
		mail.WithPort(c.cfg.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.cfg.Username),
		mail.WithPassword(c.cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("mailer: create client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("mailer: send to %s: %w", to, err)
	}
	return nil
}

func buildMessage(from, to, subject, body, filename string, attachment []byte) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("mailer: invalid sender %q: %w", from, err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("mailer: invalid recipient %q: %w", to, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)
	if err := msg.AttachReader(filename, bytes.NewReader(attachment)); err != nil {
		return nil, fmt.Errorf("mailer: attach %s: %w", filename, err)
	}
	return msg, nil
}
