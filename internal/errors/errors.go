// Package errors provides domain-specific error types for fetchwire.
//
// These types carry structured context (host, port, operation, timeout
// flag) so callers can branch on error kind instead of matching on
// message text, while still producing the user-facing
// "Unable to connect to server host:port: reason" form.
package errors

import (
	"errors"
	"fmt"
	"net"
	"os"
)

// ── Sentinel errors ──────────────────────────────────────────────────

var (
	ErrClosed      = errors.New("connection is closed")
	ErrNoAddresses = errors.New("no addresses found")
	ErrTimeout     = errors.New("operation timed out")
)

// ── Structured error types ───────────────────────────────────────────

// ResolveError reports that name/service resolution for the target
// produced no usable addresses.  Err carries the resolver's own
// diagnostic.
type ResolveError struct {
	Host string
	Port int
	Err  error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("Unable to connect to server %s:%d: %v", e.Host, e.Port, e.Err)
}

func (e *ResolveError) Unwrap() error { return e.Err }

// ConnectError reports that every resolved candidate address was
// tried and discarded.  Err is the last per-candidate failure
// observed (socket creation, bind, connect, or deadline wait).
type ConnectError struct {
	Host string
	Port int
	Err  error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("Unable to connect to server %s:%d: %v", e.Host, e.Port, e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// HandshakeError reports a failed TLS negotiation or certificate
// verification after a successful raw connect.  It is terminal for
// the connect call: remaining candidates are not tried.
type HandshakeError struct {
	Host string
	Port int
	Err  error
}

func (e *HandshakeError) Error() string {
	return fmt.Sprintf("Unable to connect to server %s:%d: TLS handshake: %v", e.Host, e.Port, e.Err)
}

func (e *HandshakeError) Unwrap() error { return e.Err }

// IOError represents a failed read or write on an established
// connection, including the idle-timeout case.
type IOError struct {
	Op      string // "read" or "write"
	Err     error
	Timeout bool // the configured socket timeout elapsed
}

func (e *IOError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("%s: %v (timeout)", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// LookupError reports that a local interface name could not be
// resolved to an IPv4 address.
type LookupError struct {
	Interface string
	Err       error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("interface %s: %v", e.Interface, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

// ── Constructors ─────────────────────────────────────────────────────

// WrapIO creates an IOError, detecting the timeout case from the
// underlying error.
func WrapIO(op string, err error) *IOError {
	return &IOError{Op: op, Err: err, Timeout: IsTimeout(err)}
}

// ── Classification helpers ───────────────────────────────────────────

// IsTimeout reports whether err represents an elapsed deadline,
// either ours or the runtime's.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTimeout) || errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var ne net.Error
	if errors.As(err, &ne) {
		return ne.Timeout()
	}
	return false
}

// ── Re-exports for convenience ───────────────────────────────────────
//
// These allow callers to use fetchwire/internal/errors as a drop-in
// replacement for the standard library in common operations.

// As is [errors.As].
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// New is [errors.New].
func New(text string) error { return errors.New(text) }

// Unwrap is [errors.Unwrap].
func Unwrap(err error) error { return errors.Unwrap(err) }

// Join is [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }
