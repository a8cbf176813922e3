package transport

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/google/uuid"

	"fetchwire/internal/channel"
	"fetchwire/internal/errors"
	"fetchwire/internal/metrics"
	"fetchwire/internal/resolver"
	"fetchwire/util"
)

// CandidateResolver produces the ordered endpoint list for a target.
// Satisfied by *resolver.Resolver; tests inject fixed candidate sets.
type CandidateResolver interface {
	Resolve(ctx context.Context, host string, port int) ([]resolver.Candidate, error)
}

// Dialer establishes one connection per Connect call.  Separate calls
// share no state, so a Dialer may serve many segments concurrently.
type Dialer struct {
	// Resolver supplies candidate endpoints.  Nil means the default
	// platform resolver with no family preference.
	Resolver CandidateResolver

	// LocalAddr is a local IPv4 address to bind outbound sockets to,
	// with an ephemeral port.  Empty disables binding.  Binding is
	// IPv4 only: IPv6 candidates proceed unbound with a warning.
	LocalAddr string

	// IOTimeout bounds each candidate's connect phase and, once
	// connected, every read and write on the returned Conn.  Zero
	// means no deadline anywhere.
	IOTimeout time.Duration

	// Securer upgrades the raw socket when secure mode is requested.
	// Nil means standard TLS verification.
	Securer Securer

	Logger  *util.Logger
	Metrics *metrics.Collector
}

// Connect resolves host, tries each candidate in order, and returns
// the first successfully established connection, TLS-wrapped when
// secure is set.  A handshake failure is terminal: remaining
// candidates are not tried.
func (d *Dialer) Connect(ctx context.Context, host string, port int, secure bool) (*channel.Conn, error) {
	id := uuid.NewString()
	d.Metrics.ConnectAttempted()

	cands, err := d.candidateResolver().Resolve(ctx, host, port)
	if err != nil {
		d.Metrics.RecordError(err.Error())
		return nil, err
	}

	var raw net.Conn
	var lastErr error
	for i, cand := range cands {
		d.Metrics.CandidateTried()
		d.logger().Verbose("[%s] trying %s (%d of %d)", id, cand.Address(), i+1, len(cands))

		conn, err := d.dialCandidate(ctx, cand)
		if err != nil {
			d.logger().Debug("[%s] %s: %v", id, cand.Address(), err)
			lastErr = err
			continue
		}
		raw = conn
		break
	}

	if raw == nil {
		cerr := &errors.ConnectError{Host: host, Port: port, Err: lastErr}
		d.Metrics.RecordError(cerr.Error())
		return nil, cerr
	}

	var ch channel.Channel = channel.NewPlain(raw)
	if secure {
		sc, err := d.securer().Secure(ctx, raw, host)
		if err != nil {
			raw.Close()
			herr := &errors.HandshakeError{Host: host, Port: port, Err: err}
			d.Metrics.RecordError(herr.Error())
			return nil, herr
		}
		d.Metrics.HandshakeCompleted()
		d.logger().Verbose("[%s] TLS session established with %s", id, host)
		ch = sc
	}

	d.Metrics.ConnectSucceeded()
	d.logger().Verbose("[%s] connected to %s", id, raw.RemoteAddr())

	return channel.New(id, ch, secure, d.IOTimeout, d.Metrics), nil
}

// dialCandidate is the connect-with-deadline primitive shared by every
// candidate attempt: bind (IPv4 only), connect, and wait for the
// socket bounded by IOTimeout.
func (d *Dialer) dialCandidate(ctx context.Context, cand resolver.Candidate) (net.Conn, error) {
	nd := net.Dialer{Timeout: d.IOTimeout}

	if d.LocalAddr != "" {
		if cand.IsIPv4() {
			ip := net.ParseIP(d.LocalAddr)
			if ip == nil || ip.To4() == nil {
				return nil, fmt.Errorf("bind to %s: not an IPv4 address", d.LocalAddr)
			}
			// Ephemeral source port; only the address is pinned.
			nd.LocalAddr = &net.TCPAddr{IP: ip}
		} else {
			d.logger().Warn("local address %s ignored: binding is IPv4 only, candidate %s is IPv6",
				d.LocalAddr, cand.Address())
		}
	}

	return nd.DialContext(ctx, cand.Network(), cand.Address())
}

func (d *Dialer) candidateResolver() CandidateResolver {
	if d.Resolver != nil {
		return d.Resolver
	}
	return &resolver.Resolver{}
}

func (d *Dialer) securer() Securer {
	if d.Securer != nil {
		return d.Securer
	}
	return &TLSSecurer{}
}

func (d *Dialer) logger() *util.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return quietLogger
}

var quietLogger = util.NewLogger(0)
