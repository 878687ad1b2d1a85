// Package smtp provides an SMTP implementation of the email.EmailSender interface.
//
// Configuration is read from the environment once at startup into Config:
//
//	SMTP_HOST                   mail server host name (required)
//	SMTP_HOST_IP                literal IP to dial instead of resolving SMTP_HOST
//	SMTP_PORT                   port; 465 means implicit TLS (required)
//	SMTP_USER, SMTP_PASS        AUTH PLAIN or LOGIN credentials (required)
//	SMTP_CONNECTION_TIMEOUT_MS  default 10000
//	SMTP_GREETING_TIMEOUT_MS    default 10000
//	SMTP_SOCKET_TIMEOUT_MS      default 15000
//	SMTP_DNS_TIMEOUT_MS         default 8000
//
// Timeout values that are not positive finite numbers fall back to the default
// silently.
//
// Basic usage:
//
//	var cfg smtp.Config
//	config.MustLoad(&cfg)
//
//	sender := smtp.MustNewClient(cfg)
//	err := sender.SendEmail(ctx, email.SendEmailParams{
//		SendTo:   "store@example.com",
//		From:     "orders@example.com",
//		Subject:  "Shop Pesach Order PES-001",
//		BodyText: body,
//	})
//
// # Transport
//
// Each SendEmail call derives a Transport from Config and opens exactly one
// connection. When SMTP_HOST_IP is set the client dials that address and skips
// DNS, but the TLS layer still verifies the server certificate against
// SMTP_HOST. Port 465 negotiates TLS immediately; any other port upgrades with
// STARTTLS when the server advertises it.
//
// There is no retry. Any DNS, connect, greeting, socket, authentication or
// server rejection error aborts the call and is returned joined with
// email.ErrFailedToSendEmail.
package smtp
