// Package probe implements the connectivity check driven by the CLI:
// resolve, connect (optionally over TLS, optionally bound to a local
// interface), report, close.  It is the reference caller of the
// connection layer; a download engine drives the same surface once
// per segment.
package probe

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"fetchwire/config"
	"fetchwire/internal/ifaddr"
	"fetchwire/internal/metrics"
	"fetchwire/internal/resolver"
	"fetchwire/internal/transport"
	"fetchwire/util"
)

// Probe runs a single session.
type Probe struct {
	Config  *config.Config
	Logger  *util.Logger
	Metrics *metrics.Collector

	// Output defaults to os.Stdout when nil.  Override in tests.
	Output io.Writer
}

// New returns a ready-to-run Probe.
func New(cfg *config.Config, logger *util.Logger) *Probe {
	return &Probe{Config: cfg, Logger: logger, Metrics: metrics.New()}
}

func (p *Probe) out() io.Writer {
	if p.Output != nil {
		return p.Output
	}
	return os.Stdout
}

// Run dispatches to the requested mode.
func (p *Probe) Run(ctx context.Context) error {
	if p.Config.Lookup != "" {
		return p.runLookup()
	}
	return p.runConnect(ctx)
}

// runLookup resolves an interface name to its IPv4 address and prints
// it — the standalone surface of the interface lookup.
func (p *Probe) runLookup() error {
	ip, err := ifaddr.Lookup(p.Config.Lookup)
	if err != nil {
		return err
	}
	fmt.Fprintln(p.out(), ip)
	return nil
}

// runConnect establishes one connection to the target and reports the
// outcome.
func (p *Probe) runConnect(ctx context.Context) error {
	cfg := p.Config

	localAddr := cfg.LocalAddr
	if cfg.Interface != "" && localAddr == "" {
		ip, err := ifaddr.Lookup(cfg.Interface)
		if err != nil {
			return fmt.Errorf("local interface: %w", err)
		}
		localAddr = ip
		p.Logger.Verbose("interface %s has address %s", cfg.Interface, ip)
	}

	family := resolver.FamilyAny
	switch {
	case cfg.IPv4Only:
		family = resolver.FamilyIPv4
	case cfg.IPv6Only:
		family = resolver.FamilyIPv6
	}

	d := &transport.Dialer{
		Resolver:  &resolver.Resolver{Family: family},
		LocalAddr: localAddr,
		IOTimeout: cfg.Timeout,
		Logger:    p.Logger,
		Metrics:   p.Metrics,
	}

	start := time.Now()
	conn, err := d.Connect(ctx, cfg.Host, cfg.Port, cfg.Secure)
	if err != nil {
		return err
	}
	defer conn.Close()
	elapsed := time.Since(start).Truncate(time.Millisecond)

	mode := "tcp"
	if conn.Secure() {
		mode = "tls"
	}
	fmt.Fprintf(p.out(), "open  %s  %s  %s  %v\n",
		util.FormatAddr(cfg.Host, cfg.Port), conn.RemoteAddr(), mode, elapsed)

	if p.Logger.Level() >= util.LogVerbose {
		fmt.Fprintln(p.out(), p.Metrics.JSON())
	}
	return nil
}
