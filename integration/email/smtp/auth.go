package smtp

import (
	"errors"
	"fmt"
	"strings"

	mailsmtp "github.com/wneessen/go-mail/smtp"
)

// ErrNoSupportedAuth is returned when the server advertises neither PLAIN nor LOGIN.
var ErrNoSupportedAuth = errors.New("server advertises no supported SMTP AUTH mechanism")

// authMechanisms lists the mechanisms we speak, in order of preference.
var authMechanisms = []string{"PLAIN", "LOGIN"}

// serverAuth picks PLAIN or LOGIN from the server's AUTH extension once the
// EHLO reply is known. The chosen mechanism still refuses to send
// credentials over a connection that is neither TLS nor localhost.
type serverAuth struct {
	username string
	password string
	next     mailsmtp.Auth
}

func newServerAuth(username, password string) *serverAuth {
	return &serverAuth{username: username, password: password}
}

// Start implements mailsmtp.Auth.
func (a *serverAuth) Start(server *mailsmtp.ServerInfo) (string, []byte, error) {
	mech := selectMechanism(server.Auth)
	switch mech {
	case "PLAIN":
		a.next = mailsmtp.PlainAuth("", a.username, a.password, server.Name, false)
	case "LOGIN":
		a.next = mailsmtp.LoginAuth(a.username, a.password, server.Name, false)
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrNoSupportedAuth, strings.Join(server.Auth, " "))
	}
	return a.next.Start(server)
}

// Next implements mailsmtp.Auth.
func (a *serverAuth) Next(fromServer []byte, more bool) ([]byte, error) {
	if a.next == nil {
		return nil, ErrNoSupportedAuth
	}
	return a.next.Next(fromServer, more)
}

func selectMechanism(advertised []string) string {
	for _, want := range authMechanisms {
		for _, got := range advertised {
			if strings.EqualFold(got, want) {
				return want
			}
		}
	}
	return ""
}
