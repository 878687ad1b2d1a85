package smtp_test

import (
	"encoding/base64"
	"io"
	"net"
	"net/textproto"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeServer is a minimal SMTP server: it greets, advertises the configured
// AUTH mechanisms, accepts any credentials and records every command,
// LOGIN credential and message.
type fakeServer struct {
	ln       net.Listener
	greet    bool
	auth     string
	mu       sync.Mutex
	commands []string
	logins   []string
	messages []string
}

func startFakeServer(t *testing.T, greet bool) *fakeServer {
	t.Helper()
	return startFakeServerWithAuth(t, greet, "PLAIN")
}

func startFakeServerWithAuth(t *testing.T, greet bool, auth string) *fakeServer {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := &fakeServer{ln: ln, greet: greet, auth: auth}
	go s.serve()
	t.Cleanup(func() { _ = ln.Close() })

	return s
}

func (s *fakeServer) port() int {
	return s.ln.Addr().(*net.TCPAddr).Port
}

func (s *fakeServer) serve() {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return
		}
		go s.handle(conn)
	}
}

func (s *fakeServer) handle(conn net.Conn) {
	defer conn.Close()

	if !s.greet {
		_, _ = io.Copy(io.Discard, conn)
		return
	}

	tp := textproto.NewConn(conn)
	_ = tp.PrintfLine("220 localhost ESMTP fake")

	for {
		line, err := tp.ReadLine()
		if err != nil {
			return
		}
		s.record(line)

		fields := strings.Fields(line)
		if len(fields) == 0 {
			_ = tp.PrintfLine("500 5.5.2 Syntax error")
			continue
		}

		switch strings.ToUpper(fields[0]) {
		case "EHLO":
			_ = tp.PrintfLine("250-localhost greets you")
			_ = tp.PrintfLine("250 AUTH %s", s.auth)
		case "AUTH":
			if len(fields) < 2 || !strings.Contains(" "+s.auth+" ", " "+strings.ToUpper(fields[1])+" ") {
				_ = tp.PrintfLine("504 5.5.4 Unrecognized authentication type")
				continue
			}
			if strings.EqualFold(fields[1], "LOGIN") && !s.login(tp, fields[2:]) {
				return
			}
			_ = tp.PrintfLine("235 2.7.0 Authentication successful")
		case "DATA":
			_ = tp.PrintfLine("354 End data with <CR><LF>.<CR><LF>")
			data, err := tp.ReadDotBytes()
			if err != nil {
				return
			}
			s.mu.Lock()
			s.messages = append(s.messages, string(data))
			s.mu.Unlock()
			_ = tp.PrintfLine("250 2.0.0 Ok: queued")
		case "QUIT":
			_ = tp.PrintfLine("221 2.0.0 Bye")
			return
		default:
			_ = tp.PrintfLine("250 2.0.0 Ok")
		}
	}
}

// login runs the LOGIN challenge exchange, taking the username from the
// initial response when the client sent one.
func (s *fakeServer) login(tp *textproto.Conn, initial []string) bool {
	challenges := []string{"Username:", "Password:"}
	if len(initial) > 0 {
		s.recordLogin(initial[0])
		challenges = challenges[1:]
	}
	for _, c := range challenges {
		_ = tp.PrintfLine("334 %s", base64.StdEncoding.EncodeToString([]byte(c)))
		line, err := tp.ReadLine()
		if err != nil {
			return false
		}
		s.recordLogin(line)
	}
	return true
}

func (s *fakeServer) recordLogin(encoded string) {
	decoded, _ := base64.StdEncoding.DecodeString(encoded)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logins = append(s.logins, string(decoded))
}

func (s *fakeServer) credentials() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.logins...)
}

func (s *fakeServer) record(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commands = append(s.commands, line)
}

func (s *fakeServer) snapshot() ([]string, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.commands...), append([]string(nil), s.messages...)
}

func hasCommandPrefix(commands []string, prefix string) bool {
	for _, c := range commands {
		if strings.HasPrefix(strings.ToUpper(c), strings.ToUpper(prefix)) {
			return true
		}
	}
	return false
}
