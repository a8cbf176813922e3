// Package config defines the runtime configuration for a fetchwire
// session and its validation rules.
package config

import (
	"fmt"
	"time"
)

// Config holds every tuneable for a single probe session.
type Config struct {
	// ── Target ───────────────────────────────────────────────────────
	Host   string
	Port   int
	Secure bool // wrap the connection in TLS

	// ── Local endpoint ───────────────────────────────────────────────
	Interface string // -i: local interface name to bind to
	LocalAddr string // IPv4 address resolved from Interface

	// ── Resolution ───────────────────────────────────────────────────
	IPv4Only bool
	IPv6Only bool

	// ── Timing ───────────────────────────────────────────────────────
	Timeout time.Duration // connect deadline and I/O timeout; 0 = none

	// ── Modes ────────────────────────────────────────────────────────
	Lookup string // --lookup: print an interface's IPv4 address and exit

	// ── Output ───────────────────────────────────────────────────────
	Verbose int
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Lookup != "" {
		return nil
	}

	if c.Host == "" {
		return fmt.Errorf("hostname is required (use --help for usage)")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range 1-65535", c.Port)
	}
	if c.IPv4Only && c.IPv6Only {
		return fmt.Errorf("-4 and -6 are mutually exclusive")
	}
	if c.Interface != "" && c.IPv6Only {
		return fmt.Errorf("interface binding is IPv4 only and cannot be combined with -6")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return nil
}
