package notifier

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrymomot/pesach-orders/core/email"
	"github.com/dmitrymomot/pesach-orders/core/order"
)

// Email tags, used for dev file names and provider analytics.
const (
	TagStoreOrder           = "store_order"
	TagCustomerConfirmation = "customer_confirmation"
)

// Notifier formats order emails and hands them to an email.EmailSender.
// It holds no mutable state and is safe for concurrent use.
type Notifier struct {
	sender email.EmailSender
	config Config
}

// New creates a Notifier.
func New(sender email.EmailSender, cfg Config) *Notifier {
	return &Notifier{sender: sender, config: cfg}
}

// SendStoreOrderEmail sends the order to the store inbox.
// Reply-To is the customer's address when one was given.
// Configuration errors are returned before the sender is called; sender
// errors are returned as is.
func (n *Notifier) SendStoreOrderEmail(ctx context.Context, o order.NormalizedOrder, store order.StoreConfig) error {
	from, err := n.config.from()
	if err != nil {
		return err
	}
	to, err := n.config.ordersEmail()
	if err != nil {
		return err
	}

	return n.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   to,
		From:     from,
		ReplyTo:  o.Email,
		Subject:  fmt.Sprintf("%s Pesach Order %s", store.StoreName, o.OrderRef),
		BodyText: StoreOrderBody(o),
		Tag:      TagStoreOrder,
	})
}

// SendCustomerConfirmationEmail sends the confirmation to the customer.
// It reports false without sending when the order has no customer email.
func (n *Notifier) SendCustomerConfirmationEmail(ctx context.Context, o order.NormalizedOrder, store order.StoreConfig) (bool, error) {
	if !o.HasEmail() {
		return false, nil
	}

	from, err := n.config.from()
	if err != nil {
		return false, err
	}
	replyTo, err := n.config.ordersEmail()
	if err != nil {
		return false, err
	}

	err = n.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   o.Email,
		From:     from,
		ReplyTo:  replyTo,
		Subject:  fmt.Sprintf("%s order confirmation (%s)", store.StoreName, o.OrderRef),
		BodyText: CustomerConfirmationBody(o, store),
		Tag:      TagCustomerConfirmation,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// StoreOrderBody renders the plain-text body of the store notification.
func StoreOrderBody(o order.NormalizedOrder) string {
	return strings.Join([]string{
		"Order Ref: " + o.OrderRef,
		"Placed: " + o.CreatedAtISO,
		"",
		"Delivery: " + o.DeliveryDate + " " + o.DeliverySlot,
		"",
		"Customer:",
		"Name: " + o.CustomerName,
		"Phone: " + o.Phone,
		"Email: " + orPlaceholder(o.Email, "(not provided)"),
		"Address: " + order.FormatAddress(o),
		"",
		"Items:",
		order.FormatItems(o),
		"",
		"Total item lines: " + strconv.Itoa(len(o.Items)),
		"Notes: " + orPlaceholder(o.Notes, "(none)"),
	}, "\n")
}

// CustomerConfirmationBody renders the plain-text body of the customer confirmation.
func CustomerConfirmationBody(o order.NormalizedOrder, store order.StoreConfig) string {
	return strings.Join([]string{
		"Thank you for your order with " + store.StoreName + ".",
		"",
		"Order Ref: " + o.OrderRef,
		"Requested delivery: " + o.DeliveryDate + " " + o.DeliverySlot,
		"",
		"Items:",
		order.FormatItems(o),
		"",
		fmt.Sprintf("If anything needs changing, contact us at %s or %s.", store.ContactPhone, store.ContactEmail),
	}, "\n")
}

func orPlaceholder(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}
