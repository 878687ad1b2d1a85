// Package postmark provides a Postmark implementation of the email.EmailSender
// interface, used when MAIL_TRANSPORT=postmark.
//
//	var cfg postmark.Config
//	config.MustLoad(&cfg) // POSTMARK_SERVER_TOKEN, POSTMARK_ACCOUNT_TOKEN
//
//	sender := postmark.MustNewClient(cfg)
//
// Messages are sent as text only, with the sender and Reply-To taken from
// each email.SendEmailParams. Like every transport in this module, a call is a
// single attempt: API failures and non-zero Postmark error codes are returned
// joined with email.ErrFailedToSendEmail.
package postmark
