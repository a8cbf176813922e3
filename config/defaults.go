package config

import "time"

// ── Default values ───────────────────────────────────────────────────
//
// All tuneable defaults live here so they are easy to audit and reuse
// across CLI flags and environment variable loading.

const (
	// DefaultIOTimeout bounds the connect phase and each subsequent
	// read/write.  Matches the classic download-accelerator default.
	DefaultIOTimeout = 120 * time.Second

	// DefaultHTTPPort is used when the target is given without a port.
	DefaultHTTPPort = 80

	// DefaultHTTPSPort is the implied port when --secure is set and no
	// port is given.
	DefaultHTTPSPort = 443
)
