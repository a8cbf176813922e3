package transport

import (
	"context"
	"crypto/tls"
	"net"

	"fetchwire/internal/channel"
)

// TLSSecurer performs a TLS handshake over an already-connected
// transport, verifying the peer certificate chain against serverName.
type TLSSecurer struct {
	// Config is cloned per handshake; ServerName is filled in from
	// the dial target when unset.  Nil means a default config with
	// standard verification.
	Config *tls.Config
}

// Secure runs the handshake and returns the encrypted channel.  The
// raw connection is left open on failure for the caller to close.
func (s *TLSSecurer) Secure(ctx context.Context, raw net.Conn, serverName string) (channel.Channel, error) {
	cfg := s.Config.Clone()
	if cfg == nil {
		cfg = &tls.Config{}
	}
	if cfg.ServerName == "" {
		cfg.ServerName = serverName
	}

	tc := tls.Client(raw, cfg)
	if err := tc.HandshakeContext(ctx); err != nil {
		return nil, err
	}
	return channel.NewSecure(tc), nil
}
