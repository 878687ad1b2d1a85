package smtp

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/dmitrymomot/pesach-orders/core/email"
)

// implicitTLSPort is the submission port that speaks TLS from the first byte.
const implicitTLSPort = 465

// Transport is the resolved, single-use connection plan for one send.
// Building it performs no network I/O.
type Transport struct {
	// Addr is the host actually dialed: HostIP when set, otherwise Host.
	Addr string
	Port int

	// ImplicitTLS selects TLS on connect (port 465). Otherwise STARTTLS is
	// used when the server offers it.
	ImplicitTLS bool

	// TLSConfig always verifies the certificate against the configured host
	// name, including when Addr is a literal IP.
	TLSConfig *tls.Config

	Username string
	Password string

	ConnectionTimeout time.Duration
	GreetingTimeout   time.Duration
	SocketTimeout     time.Duration
	DNSTimeout        time.Duration

	lookupHost func(ctx context.Context, host string) ([]string, error)
}

// NewTransport validates cfg and derives a Transport from it.
func NewTransport(cfg Config) (*Transport, error) {
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		return nil, fmt.Errorf("%w: SMTP_HOST is required", email.ErrInvalidConfig)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("%w: SMTP_PORT must be between 1 and 65535", email.ErrInvalidConfig)
	}
	if cfg.Username == "" {
		return nil, fmt.Errorf("%w: SMTP_USER is required", email.ErrInvalidConfig)
	}
	if cfg.Password == "" {
		return nil, fmt.Errorf("%w: SMTP_PASS is required", email.ErrInvalidConfig)
	}

	addr := host
	if ip := strings.TrimSpace(cfg.HostIP); ip != "" {
		addr = ip
	}

	return &Transport{
		Addr:        addr,
		Port:        cfg.Port,
		ImplicitTLS: cfg.Port == implicitTLSPort,
		TLSConfig: &tls.Config{
			ServerName: host,
			MinVersion: tls.VersionTLS12,
		},
		Username:          cfg.Username,
		Password:          cfg.Password,
		ConnectionTimeout: cfg.ConnectionTimeout(),
		GreetingTimeout:   cfg.GreetingTimeout(),
		SocketTimeout:     cfg.SocketTimeout(),
		DNSTimeout:        cfg.DNSTimeout(),
	}, nil
}

// Client builds a go-mail client bound to this transport's dialer.
func (t *Transport) Client() (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithTimeout(t.ConnectionTimeout),
		mail.WithSMTPAuthCustom(newServerAuth(t.Username, t.Password)),
		mail.WithTLSConfig(t.TLSConfig),
		mail.WithDialContextFunc(t.DialContext),
	}
	if t.ImplicitTLS {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	// Port last so no TLS option can reset it.
	opts = append(opts, mail.WithPort(t.Port))

	return mail.NewClient(t.Addr, opts...)
}

// DialContext resolves, connects and, for implicit TLS, completes the
// handshake. The returned connection enforces the greeting and socket timeouts.
func (t *Transport) DialContext(ctx context.Context, network, address string) (net.Conn, error) {
	host, port, err := net.SplitHostPort(address)
	if err != nil {
		return nil, err
	}

	addrs, err := t.resolve(ctx, host)
	if err != nil {
		return nil, err
	}

	raw, err := t.connect(ctx, network, addrs, port)
	if err != nil {
		return nil, err
	}

	conn := newDeadlineConn(raw, t.GreetingTimeout, t.SocketTimeout)
	if !t.ImplicitTLS {
		conn.arm()
		return conn, nil
	}

	hsCtx, cancel := context.WithTimeout(ctx, t.ConnectionTimeout)
	defer cancel()

	tlsConn := tls.Client(conn, t.TLSConfig.Clone())
	if err := tlsConn.HandshakeContext(hsCtx); err != nil {
		_ = raw.Close()
		return nil, fmt.Errorf("TLS handshake with SMTP server failed: %w", err)
	}
	conn.arm()

	return tlsConn, nil
}

// connect tries each resolved address in turn until one accepts. The
// connection timeout bounds all attempts together.
func (t *Transport) connect(ctx context.Context, network string, addrs []string, port string) (net.Conn, error) {
	ctx, cancel := context.WithTimeout(ctx, t.ConnectionTimeout)
	defer cancel()

	var dialer net.Dialer
	var errs []error
	for _, ip := range addrs {
		conn, err := dialer.DialContext(ctx, network, net.JoinHostPort(ip, port))
		if err == nil {
			return conn, nil
		}
		errs = append(errs, err)
		if ctx.Err() != nil {
			break
		}
	}
	return nil, fmt.Errorf("failed to connect to SMTP server: %w", errors.Join(errs...))
}

func (t *Transport) resolve(ctx context.Context, host string) ([]string, error) {
	if net.ParseIP(host) != nil {
		return []string{host}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, t.DNSTimeout)
	defer cancel()

	lookup := t.lookupHost
	if lookup == nil {
		lookup = net.DefaultResolver.LookupHost
	}
	addrs, err := lookup(ctx, host)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve SMTP host %q: %w", host, err)
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("failed to resolve SMTP host %q: no addresses", host)
	}
	return addrs, nil
}
