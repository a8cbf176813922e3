// Package channel provides the uniform read/write/close surface over
// an established transport.
//
// A Channel is selected once at connect time — plain TCP or TLS — so
// the rest of the program never branches on the security mode.  Tests
// exercise the same surface with fake channels.
package channel

import (
	"crypto/tls"
	"net"
	"time"
)

// Channel is one byte-transfer variant over a connected transport.
// Exactly two production variants exist: Plain and Secure.
type Channel interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	Close() error
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
	RemoteAddr() net.Addr
}

// Plain is the cleartext variant: a thin wrapper over the raw TCP
// connection.
type Plain struct {
	net.Conn
}

// NewPlain wraps a raw connection.
func NewPlain(conn net.Conn) *Plain { return &Plain{Conn: conn} }

// Secure is the encrypted variant.  Reads and writes operate on TLS
// records (the session performs its own record-level retries);
// closing sends the close-notify alert and then closes the raw
// transport underneath.
type Secure struct {
	*tls.Conn
}

// NewSecure wraps an established TLS session.
func NewSecure(conn *tls.Conn) *Secure { return &Secure{Conn: conn} }
