// Package transport establishes outbound TCP connections.  It walks
// the resolver's candidate list in order, optionally binds to a local
// IPv4 address, enforces a per-candidate connect deadline, and hands
// the connected socket to the channel layer — plain or TLS-wrapped —
// independent of what flows over it afterwards.
package transport

import (
	"context"
	"net"

	"fetchwire/internal/channel"
)

// Securer upgrades a connected raw socket to an encrypted channel.
// The production implementation is TLSSecurer; tests substitute fakes.
// A Securer never closes the raw connection — the dialer owns that
// decision on handshake failure.
type Securer interface {
	Secure(ctx context.Context, raw net.Conn, serverName string) (channel.Channel, error)
}
