package smtp

import (
	"context"
	"errors"
	"fmt"
	netmail "net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/wneessen/go-mail"

	"github.com/dmitrymomot/pesach-orders/core/email"
)

// Client implements email.EmailSender over SMTP.
// Every SendEmail call builds its own Transport and connection; nothing is
// pooled or shared, so concurrent calls are independent.
type Client struct {
	config Config
}

// New creates an SMTP-backed email sender after validating cfg.
func New(cfg Config) (email.EmailSender, error) {
	if _, err := NewTransport(cfg); err != nil {
		return nil, err
	}
	return &Client{config: cfg}, nil
}

// MustNewClient creates an SMTP client that panics on invalid config.
func MustNewClient(cfg Config) email.EmailSender {
	client, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

// SendEmail delivers one plain-text message over a fresh connection.
// Transport failures are joined with email.ErrFailedToSendEmail.
func (c *Client) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(email.ErrFailedToSendEmail, err)
	}

	if err := params.Validate(); err != nil {
		return err
	}

	transport, err := NewTransport(c.config)
	if err != nil {
		return err
	}

	msg, err := buildMessage(params)
	if err != nil {
		return err
	}

	client, err := transport.Client()
	if err != nil {
		return errors.Join(email.ErrInvalidConfig, err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Join(email.ErrFailedToSendEmail, err)
	}

	return nil
}

// buildMessage creates the MIME message for params.
func buildMessage(params email.SendEmailParams) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(params.From); err != nil {
		return nil, fmt.Errorf("%w: from: %v", email.ErrInvalidParams, err)
	}
	if err := msg.To(params.SendTo); err != nil {
		return nil, fmt.Errorf("%w: to: %v", email.ErrInvalidParams, err)
	}
	if params.ReplyTo != "" {
		if err := msg.ReplyTo(params.ReplyTo); err != nil {
			return nil, fmt.Errorf("%w: reply-to: %v", email.ErrInvalidParams, err)
		}
	}

	msg.Subject(params.Subject)
	msg.SetDate()
	msg.SetMessageIDWithValue(messageID(params.From))
	if params.Tag != "" {
		msg.SetGenHeader(mail.Header("X-Mail-Tag"), params.Tag)
	}
	msg.SetBodyString(mail.TypeTextPlain, params.BodyText)

	return msg, nil
}

// messageID returns "<uuid>@<sender domain>". A display name in from is ignored.
func messageID(from string) string {
	if addr, err := netmail.ParseAddress(from); err == nil {
		from = addr.Address
	}
	domain := "localhost"
	if i := strings.LastIndex(from, "@"); i >= 0 && i < len(from)-1 {
		domain = from[i+1:]
	}
	return uuid.NewString() + "@" + domain
}
