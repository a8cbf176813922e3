package channel

import (
	"io"
	"net"
	"time"

	"fetchwire/internal/errors"
	"fetchwire/internal/metrics"
)

// Conn is an established connection.  It owns its channel exclusively:
// once Close has run, the channel is gone and every further operation
// fails with ErrClosed rather than touching a stale handle.
//
// A Conn is not safe for concurrent use; callers driving the same
// Conn from several goroutines must serialize access themselves.
// Distinct Conns share no state.
type Conn struct {
	id        string
	ch        Channel // nil is the closed sentinel
	secure    bool
	ioTimeout time.Duration
	metrics   *metrics.Collector
}

// New binds a channel into a Conn.  ioTimeout bounds every subsequent
// read and write; zero disables the bound entirely.
func New(id string, ch Channel, secure bool, ioTimeout time.Duration, m *metrics.Collector) *Conn {
	return &Conn{id: id, ch: ch, secure: secure, ioTimeout: ioTimeout, metrics: m}
}

// ID returns the correlation id assigned at connect time.
func (c *Conn) ID() string { return c.id }

// Secure reports whether the connection carries a TLS session.
func (c *Conn) Secure() bool { return c.secure }

// RemoteAddr returns the peer address, or nil after Close.
func (c *Conn) RemoteAddr() net.Addr {
	if c.ch == nil {
		return nil
	}
	return c.ch.RemoteAddr()
}

// Read transfers at most one underlying read into p.  It returns
// io.EOF when the peer has closed, and an IOError with the Timeout
// flag set when no data arrives within the connection's I/O timeout.
func (c *Conn) Read(p []byte) (int, error) {
	if c.ch == nil {
		return 0, errors.WrapIO("read", errors.ErrClosed)
	}
	if c.ioTimeout > 0 {
		if err := c.ch.SetReadDeadline(time.Now().Add(c.ioTimeout)); err != nil {
			return 0, errors.WrapIO("read", err)
		}
	}

	n, err := c.ch.Read(p)
	c.metrics.BytesReceived(int64(n))
	if err != nil && err != io.EOF {
		return n, errors.WrapIO("read", err)
	}
	return n, err
}

// Write transfers p to the peer, bounded by the connection's I/O
// timeout.  A short count with a non-nil error means a partial write;
// the caller re-invokes with the remainder.
func (c *Conn) Write(p []byte) (int, error) {
	if c.ch == nil {
		return 0, errors.WrapIO("write", errors.ErrClosed)
	}
	if c.ioTimeout > 0 {
		if err := c.ch.SetWriteDeadline(time.Now().Add(c.ioTimeout)); err != nil {
			return 0, errors.WrapIO("write", err)
		}
	}

	n, err := c.ch.Write(p)
	c.metrics.BytesSent(int64(n))
	if err != nil {
		return n, errors.WrapIO("write", err)
	}
	return n, nil
}

// Close tears down the channel (the secure variant sends close-notify
// before releasing the raw transport).  Idempotent: closing an
// already-closed Conn is a no-op.
func (c *Conn) Close() error {
	if c.ch == nil {
		return nil
	}
	err := c.ch.Close()
	c.ch = nil
	c.metrics.ConnectionClosed()
	return err
}
