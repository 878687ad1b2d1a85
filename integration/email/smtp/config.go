package smtp

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Default timeouts applied when the corresponding variable is unset or invalid.
const (
	DefaultConnectionTimeout = 10 * time.Second
	DefaultGreetingTimeout   = 10 * time.Second
	DefaultSocketTimeout     = 15 * time.Second
	DefaultDNSTimeout        = 8 * time.Second
)

// Config holds SMTP transport configuration.
// Host, Port, Username and Password are required; HostIP and the timeouts are optional.
type Config struct {
	Host     string `env:"SMTP_HOST,required,notEmpty"`
	HostIP   string `env:"SMTP_HOST_IP"` // literal IP dialed instead of resolving Host
	Port     int    `env:"SMTP_PORT,required"`
	Username string `env:"SMTP_USER,required,notEmpty"`
	Password string `env:"SMTP_PASS,required,notEmpty"`

	ConnectionTimeoutMS Millis `env:"SMTP_CONNECTION_TIMEOUT_MS"`
	GreetingTimeoutMS   Millis `env:"SMTP_GREETING_TIMEOUT_MS"`
	SocketTimeoutMS     Millis `env:"SMTP_SOCKET_TIMEOUT_MS"`
	DNSTimeoutMS        Millis `env:"SMTP_DNS_TIMEOUT_MS"`
}

// ConnectionTimeout bounds TCP connection establishment (and the TLS handshake on port 465).
func (c Config) ConnectionTimeout() time.Duration {
	return c.ConnectionTimeoutMS.Or(DefaultConnectionTimeout)
}

// GreetingTimeout bounds the wait for the server's first bytes after connecting.
func (c Config) GreetingTimeout() time.Duration {
	return c.GreetingTimeoutMS.Or(DefaultGreetingTimeout)
}

// SocketTimeout bounds every read and write after the greeting.
func (c Config) SocketTimeout() time.Duration {
	return c.SocketTimeoutMS.Or(DefaultSocketTimeout)
}

// DNSTimeout bounds the host name lookup.
func (c Config) DNSTimeout() time.Duration {
	return c.DNSTimeoutMS.Or(DefaultDNSTimeout)
}

// Millis is a duration configured in milliseconds.
// Text that is not a positive finite number decodes to zero, meaning "use the default".
type Millis time.Duration

// UnmarshalText implements encoding.TextUnmarshaler. It never fails.
func (m *Millis) UnmarshalText(text []byte) error {
	*m = Millis(ParseMillis(string(text), 0))
	return nil
}

// Or returns m as a duration, or fallback when m is not positive.
func (m Millis) Or(fallback time.Duration) time.Duration {
	if m <= 0 {
		return fallback
	}
	return time.Duration(m)
}

// maxMillis is the largest millisecond count a time.Duration can hold.
const maxMillis = float64(math.MaxInt64 / int64(time.Millisecond))

// ParseMillis interprets raw as a number of milliseconds.
// Empty, non-numeric, non-finite, zero, negative and out-of-range input
// yields fallback.
func ParseMillis(raw string, fallback time.Duration) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 || v > maxMillis {
		return fallback
	}
	return time.Duration(v * float64(time.Millisecond))
}
