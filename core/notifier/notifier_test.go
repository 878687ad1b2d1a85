package notifier_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pesach-orders/core/email"
	"github.com/dmitrymomot/pesach-orders/core/notifier"
	"github.com/dmitrymomot/pesach-orders/core/order"
)

type mockSender struct {
	mu   sync.Mutex
	sent []email.SendEmailParams
	fail map[string]error // by tag
}

func (m *mockSender) SendEmail(_ context.Context, params email.SendEmailParams) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail[params.Tag]; err != nil {
		return err
	}
	m.sent = append(m.sent, params)
	return nil
}

func (m *mockSender) Sent() []email.SendEmailParams {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]email.SendEmailParams(nil), m.sent...)
}

var store = order.StoreConfig{
	StoreName:    "KP",
	ContactPhone: "020 7946 0000",
	ContactEmail: "hello@kp.example",
}

var cfg = notifier.Config{
	From:        "orders@kp.example",
	OrdersEmail: "inbox@kp.example",
}

func sampleOrder() order.NormalizedOrder {
	return order.NormalizedOrder{
		OrderRef:     "PES-001",
		CreatedAtISO: "2024-03-01T10:00:00Z",
		DeliveryDate: "2024-03-20",
		DeliverySlot: "9-11am",
		CustomerName: "A. Cohen",
		Phone:        "0123456789",
		Email:        "a@example.com",
		AddressLine1: "1 High St",
		Postcode:     "AB1 2CD",
		Items:        []order.Item{{Name: "Matzo", Qty: 2}},
	}
}

func TestSendStoreOrderEmail(t *testing.T) {
	t.Parallel()

	sender := &mockSender{}
	n := notifier.New(sender, cfg)

	require.NoError(t, n.SendStoreOrderEmail(context.Background(), sampleOrder(), store))

	sent := sender.Sent()
	require.Len(t, sent, 1)
	msg := sent[0]

	assert.Equal(t, "KP Pesach Order PES-001", msg.Subject)
	assert.Equal(t, "inbox@kp.example", msg.SendTo)
	assert.Equal(t, "orders@kp.example", msg.From)
	assert.Equal(t, "a@example.com", msg.ReplyTo)
	assert.Equal(t, notifier.TagStoreOrder, msg.Tag)

	want := strings.Join([]string{
		"Order Ref: PES-001",
		"Placed: 2024-03-01T10:00:00Z",
		"",
		"Delivery: 2024-03-20 9-11am",
		"",
		"Customer:",
		"Name: A. Cohen",
		"Phone: 0123456789",
		"Email: a@example.com",
		"Address: 1 High St, AB1 2CD",
		"",
		"Items:",
		"- Matzo x 2",
		"",
		"Total item lines: 1",
		"Notes: (none)",
	}, "\n")
	assert.Equal(t, want, msg.BodyText)
}

func TestSendStoreOrderEmail_NoCustomerEmail(t *testing.T) {
	t.Parallel()

	sender := &mockSender{}
	o := sampleOrder()
	o.Email = ""
	o.Notes = "Leave with neighbour"
	o.AddressLine2 = "Flat 2"
	o.Items = append(o.Items, order.Item{Name: "Wine", Size: "750ml", Qty: 1})

	require.NoError(t, notifier.New(sender, cfg).SendStoreOrderEmail(context.Background(), o, store))

	sent := sender.Sent()
	require.Len(t, sent, 1)
	assert.Empty(t, sent[0].ReplyTo)
	assert.Contains(t, sent[0].BodyText, "Email: (not provided)")
	assert.Contains(t, sent[0].BodyText, "Address: 1 High St, Flat 2, AB1 2CD")
	assert.Contains(t, sent[0].BodyText, "- Matzo x 2\n- Wine (750ml) x 1")
	assert.Contains(t, sent[0].BodyText, "Total item lines: 2")
	assert.Contains(t, sent[0].BodyText, "Notes: Leave with neighbour")
}

func TestSendStoreOrderEmail_MissingConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		cfg    notifier.Config
		errMsg string
	}{
		{"missing orders email", notifier.Config{From: "orders@kp.example"}, "ORDERS_EMAIL"},
		{"missing sender", notifier.Config{OrdersEmail: "inbox@kp.example"}, "SMTP_FROM"},
		{"missing both", notifier.Config{}, "SMTP_FROM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sender := &mockSender{}
			err := notifier.New(sender, tt.cfg).SendStoreOrderEmail(context.Background(), sampleOrder(), store)
			assert.ErrorIs(t, err, email.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Empty(t, sender.Sent())
		})
	}
}

func TestSendStoreOrderEmail_SenderErrorPropagates(t *testing.T) {
	t.Parallel()

	sendErr := errors.Join(email.ErrFailedToSendEmail, errors.New("535 authentication failed"))
	sender := &mockSender{fail: map[string]error{notifier.TagStoreOrder: sendErr}}

	err := notifier.New(sender, cfg).SendStoreOrderEmail(context.Background(), sampleOrder(), store)
	assert.Equal(t, sendErr, err)
}

func TestSendCustomerConfirmationEmail(t *testing.T) {
	t.Parallel()

	sender := &mockSender{}
	sent, err := notifier.New(sender, cfg).SendCustomerConfirmationEmail(context.Background(), sampleOrder(), store)
	require.NoError(t, err)
	assert.True(t, sent)

	msgs := sender.Sent()
	require.Len(t, msgs, 1)
	msg := msgs[0]

	assert.Equal(t, "KP order confirmation (PES-001)", msg.Subject)
	assert.Equal(t, "a@example.com", msg.SendTo)
	assert.Equal(t, "orders@kp.example", msg.From)
	assert.Equal(t, "inbox@kp.example", msg.ReplyTo)
	assert.Equal(t, notifier.TagCustomerConfirmation, msg.Tag)

	want := strings.Join([]string{
		"Thank you for your order with KP.",
		"",
		"Order Ref: PES-001",
		"Requested delivery: 2024-03-20 9-11am",
		"",
		"Items:",
		"- Matzo x 2",
		"",
		"If anything needs changing, contact us at 020 7946 0000 or hello@kp.example.",
	}, "\n")
	assert.Equal(t, want, msg.BodyText)
}

func TestSendCustomerConfirmationEmail_NoEmailSkips(t *testing.T) {
	t.Parallel()

	sender := &mockSender{}
	o := sampleOrder()
	o.Email = ""

	// Skipping needs no configuration at all.
	sent, err := notifier.New(sender, notifier.Config{}).SendCustomerConfirmationEmail(context.Background(), o, store)
	require.NoError(t, err)
	assert.False(t, sent)
	assert.Empty(t, sender.Sent())
}

func TestSendCustomerConfirmationEmail_MissingConfig(t *testing.T) {
	t.Parallel()

	for _, c := range []notifier.Config{
		{From: "orders@kp.example"},
		{OrdersEmail: "inbox@kp.example"},
	} {
		sender := &mockSender{}
		sent, err := notifier.New(sender, c).SendCustomerConfirmationEmail(context.Background(), sampleOrder(), store)
		assert.False(t, sent)
		assert.ErrorIs(t, err, email.ErrInvalidConfig)
		assert.Empty(t, sender.Sent())
	}
}

func TestSendCustomerConfirmationEmail_SenderErrorPropagates(t *testing.T) {
	t.Parallel()

	sendErr := errors.New("dial tcp: i/o timeout")
	sender := &mockSender{fail: map[string]error{notifier.TagCustomerConfirmation: sendErr}}

	sent, err := notifier.New(sender, cfg).SendCustomerConfirmationEmail(context.Background(), sampleOrder(), store)
	assert.False(t, sent)
	assert.Same(t, sendErr, err)
}
