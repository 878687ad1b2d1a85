package email

import (
	"context"
	"fmt"
	"net/mail"
)

// EmailSender delivers a single, fully formatted email.
// Implementations must be safe for concurrent use and must not retry.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams describes one plain-text email.
type SendEmailParams struct {
	SendTo   string // Recipient address (required)
	From     string // Header and envelope sender (required)
	ReplyTo  string // Optional Reply-To address
	Subject  string // Subject line (required)
	BodyText string // Plain-text body (required)
	Tag      string // Optional tag for tracking and dev file names
}

// Validate checks required fields and RFC 5322 address syntax.
func (p SendEmailParams) Validate() error {
	if p.SendTo == "" || !IsValidAddress(p.SendTo) {
		return fmt.Errorf("%w: SendTo must be a valid email address", ErrInvalidParams)
	}
	if p.From == "" || !IsValidAddress(p.From) {
		return fmt.Errorf("%w: From must be a valid email address", ErrInvalidParams)
	}
	if p.ReplyTo != "" && !IsValidAddress(p.ReplyTo) {
		return fmt.Errorf("%w: ReplyTo must be a valid email address", ErrInvalidParams)
	}
	if p.Subject == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if p.BodyText == "" {
		return fmt.Errorf("%w: BodyText is required", ErrInvalidParams)
	}
	return nil
}

// IsValidAddress reports whether s is a single RFC 5322 address, with or
// without a display name ("Store <orders@shop.example>").
func IsValidAddress(s string) bool {
	_, err := mail.ParseAddress(s)
	return err == nil
}
