package notifier

import (
	"fmt"

	"github.com/dmitrymomot/pesach-orders/core/email"
)

// Config holds the addresses the notifier sends from and to.
type Config struct {
	From        string `env:"SMTP_FROM,required,notEmpty"`    // header and envelope sender
	OrdersEmail string `env:"ORDERS_EMAIL,required,notEmpty"` // store inbox; Reply-To for confirmations
}

func (c Config) from() (string, error) {
	if c.From == "" {
		return "", fmt.Errorf("%w: SMTP_FROM is required", email.ErrInvalidConfig)
	}
	return c.From, nil
}

func (c Config) ordersEmail() (string, error) {
	if c.OrdersEmail == "" {
		return "", fmt.Errorf("%w: ORDERS_EMAIL is required", email.ErrInvalidConfig)
	}
	return c.OrdersEmail, nil
}
