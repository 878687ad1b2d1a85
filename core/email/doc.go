// Package email defines the contract between message producers and mail
// transports, plus a development transport that writes messages to disk.
//
// # EmailSender Interface
//
// Every transport implements a single method:
//
//	type EmailSender interface {
//		SendEmail(ctx context.Context, params SendEmailParams) error
//	}
//
// A call is one delivery attempt. Implementations do not retry, queue or
// persist anything; a failed send is retried, if at all, by the caller issuing
// a new call.
//
// # Email Parameters
//
//	params := email.SendEmailParams{
//		SendTo:   "customer@example.com",
//		From:     "orders@shop.example",
//		ReplyTo:  "inbox@shop.example",
//		Subject:  "Shop order confirmation (PES-001)",
//		BodyText: body,
//		Tag:      "customer_confirmation",
//	}
//
// Validate reports ErrInvalidParams for missing recipient, sender, subject or
// body, and for malformed addresses.
//
// # Development Mode
//
//	sender := email.NewDevSender("./dev_emails")
//
//	// Files created:
//	// ./dev_emails/2024_03_01_100000.000000_store_order.txt
//	// ./dev_emails/2024_03_01_100000.000000_store_order.json
//
// # Logging
//
// Transports never log. Callers that want a log line per attempt wrap the
// transport:
//
//	sender = email.NewLoggingSender(sender, log)
//
// # Error Handling
//
//	switch {
//	case errors.Is(err, email.ErrInvalidConfig):
//		// a required setting is missing; nothing was sent
//	case errors.Is(err, email.ErrInvalidParams):
//		// message could not be built; nothing was sent
//	case errors.Is(err, email.ErrFailedToSendEmail):
//		// transport failure; the underlying error is joined to this one
//	}
package email
