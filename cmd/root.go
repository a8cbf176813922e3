// Package cmd wires up the CLI flags and dispatches to the probe.
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"fetchwire/config"
	"fetchwire/probe"
	"fetchwire/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X fetchwire/cmd.version=2.0.0"
var version = "1.0.0" //nolint:gochecknoglobals

// Execute parses args and runs the appropriate fetchwire mode.
func Execute(ctx context.Context, args []string) error {
	cfg := &config.Config{}
	config.LoadFromEnv(cfg)

	fs := flag.NewFlagSet("fetchwire", flag.ContinueOnError)

	// ── connection ───────────────────────────────────────────────
	fs.BoolVarP(&cfg.Secure, "secure", "s", cfg.Secure, "Wrap the connection in TLS")
	fs.StringVarP(&cfg.Interface, "interface", "i", cfg.Interface, "Bind to this local interface (IPv4)")
	fs.BoolVarP(&cfg.IPv4Only, "ipv4", "4", cfg.IPv4Only, "Resolve IPv4 addresses only")
	fs.BoolVarP(&cfg.IPv6Only, "ipv6", "6", cfg.IPv6Only, "Resolve IPv6 addresses only")

	timeoutSec := int(config.DefaultIOTimeout / time.Second)
	if cfg.Timeout > 0 {
		timeoutSec = int(cfg.Timeout / time.Second)
	}
	fs.IntVarP(&timeoutSec, "timeout", "w", timeoutSec, "Connect and I/O timeout in seconds (0 = none)")

	// ── modes ────────────────────────────────────────────────────
	fs.StringVar(&cfg.Lookup, "lookup", "", "Print the IPv4 address of an interface and exit")

	// ── output ───────────────────────────────────────────────────
	fs.CountVarP(&cfg.Verbose, "verbose", "v", "Increase verbosity (repeatable)")

	var showVersion, showHelp bool
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")

	fs.Usage = func() { printUsage(fs) }

	// ── parse ────────────────────────────────────────────────────
	if err := fs.Parse(args); err != nil {
		return err
	}

	if showHelp || len(args) == 0 {
		printUsage(fs)
		return nil
	}
	if showVersion {
		fmt.Printf("fetchwire %s\n", version)
		return nil
	}

	cfg.Timeout = time.Duration(timeoutSec) * time.Second

	// ── positional arguments ─────────────────────────────────────
	if err := parsePositional(cfg, fs.Args()); err != nil {
		return err
	}

	// ── validate ─────────────────────────────────────────────────
	if err := cfg.Validate(); err != nil {
		return err
	}

	// ── run ──────────────────────────────────────────────────────
	logger := util.NewLogger(cfg.Verbose)
	return probe.New(cfg, logger).Run(ctx)
}

// ── helpers ──────────────────────────────────────────────────────────

func parsePositional(cfg *config.Config, remaining []string) error {
	if cfg.Lookup != "" {
		if len(remaining) > 0 {
			return fmt.Errorf("--lookup takes no positional arguments")
		}
		return nil
	}

	switch len(remaining) {
	case 0:
		return fmt.Errorf("hostname required (use --help for usage)")
	case 1:
		cfg.Host = remaining[0]
		cfg.Port = config.DefaultHTTPPort
		if cfg.Secure {
			cfg.Port = config.DefaultHTTPSPort
		}
	case 2:
		cfg.Host = remaining[0]
		port, err := util.ParsePort(remaining[1])
		if err != nil {
			return fmt.Errorf("port: %w", err)
		}
		cfg.Port = port
	default:
		return fmt.Errorf("too many arguments")
	}
	return nil
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `fetchwire – connection probe for download mirrors v%s

Establishes one outbound TCP connection, optionally over TLS and
optionally bound to a local interface, and reports the result.

Usage:
  fetchwire [options] <host> [port]           Probe a mirror
  fetchwire --lookup <interface>              Print an interface's IPv4 address

Options:
`, version)
	fs.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Examples:
  fetchwire mirror.example.com 80             Plain TCP probe
  fetchwire -s mirror.example.com             TLS probe on 443
  fetchwire -i eth1 mirror.example.com 21     Probe from a specific interface
  fetchwire -w 5 -v mirror.example.com 80     5 second timeout, verbose
  fetchwire --lookup eth0                     Show eth0's IPv4 address
`)
}
