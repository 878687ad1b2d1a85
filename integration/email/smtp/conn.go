package smtp

import (
	"net"
	"sync/atomic"
	"time"
)

// deadlineConn refreshes the deadline before every read and write once armed.
// The first read after arming waits at most greeting; later operations wait
// at most idle.
type deadlineConn struct {
	net.Conn
	greeting time.Duration
	idle     time.Duration
	armed    atomic.Bool
	greeted  atomic.Bool
}

func newDeadlineConn(conn net.Conn, greeting, idle time.Duration) *deadlineConn {
	return &deadlineConn{Conn: conn, greeting: greeting, idle: idle}
}

// arm starts deadline enforcement. Before arming, deadlines are left to the
// caller (the TLS handshake uses its context).
func (c *deadlineConn) arm() {
	c.armed.Store(true)
}

func (c *deadlineConn) Read(b []byte) (int, error) {
	if c.armed.Load() {
		timeout := c.idle
		if !c.greeted.Load() {
			timeout = c.greeting
		}
		if err := c.Conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
			return 0, err
		}
	}

	n, err := c.Conn.Read(b)
	if n > 0 && c.armed.Load() {
		c.greeted.Store(true)
	}
	return n, err
}

func (c *deadlineConn) Write(b []byte) (int, error) {
	if c.armed.Load() {
		if err := c.Conn.SetWriteDeadline(time.Now().Add(c.idle)); err != nil {
			return 0, err
		}
	}
	return c.Conn.Write(b)
}
