// Package resolver turns a hostname, port, and address-family
// preference into an ordered list of candidate endpoints for the
// transport layer to try.
//
// Families that have no address configured on the local host are
// filtered out so the dialer never burns a connect attempt on a
// family it cannot reach (the getaddrinfo AI_ADDRCONFIG behaviour).
package resolver

import (
	"context"
	"net"

	"fetchwire/internal/errors"
	"fetchwire/util"
)

// Family restricts resolution to one address family.
type Family int

const (
	FamilyAny Family = iota
	FamilyIPv4
	FamilyIPv6
)

func (f Family) String() string {
	switch f {
	case FamilyIPv4:
		return "ipv4"
	case FamilyIPv6:
		return "ipv6"
	default:
		return "any"
	}
}

// Candidate is one resolved endpoint eligible for a connect attempt.
// Candidates are consumed by the dialer in order and never persisted.
type Candidate struct {
	IP   net.IP
	Zone string // IPv6 scope zone, if any
	Port int
}

// IsIPv4 reports whether the candidate belongs to the IPv4 family.
func (c Candidate) IsIPv4() bool { return c.IP.To4() != nil }

// Network returns the dial network for the candidate's family.
func (c Candidate) Network() string {
	if c.IsIPv4() {
		return "tcp4"
	}
	return "tcp6"
}

// Address returns the candidate as a dialable "host:port" string.
func (c Candidate) Address() string {
	host := c.IP.String()
	if c.Zone != "" {
		host += "%" + c.Zone
	}
	return util.FormatAddr(host, c.Port)
}

// Resolver produces candidate endpoints using the platform resolver.
// The zero value resolves all families with the default resolver.
type Resolver struct {
	Family Family

	// LookupIPAddr overrides the name lookup.  Tests inject fixed
	// candidate sets here; production code leaves it nil.
	LookupIPAddr func(ctx context.Context, host string) ([]net.IPAddr, error)

	// InterfaceAddrs overrides the local address listing used for
	// family filtering.  Nil means net.InterfaceAddrs.
	InterfaceAddrs func() ([]net.Addr, error)
}

// Resolve returns the ordered candidate list for host:port.  The
// resolver's own diagnostic is preserved inside the returned
// ResolveError when no usable address exists.
func (r *Resolver) Resolve(ctx context.Context, host string, port int) ([]Candidate, error) {
	lookup := r.LookupIPAddr
	if lookup == nil {
		lookup = net.DefaultResolver.LookupIPAddr
	}

	addrs, err := lookup(ctx, host)
	if err != nil {
		return nil, &errors.ResolveError{Host: host, Port: port, Err: err}
	}

	wantV4, wantV6 := r.configuredFamilies()
	switch r.Family {
	case FamilyIPv4:
		wantV6 = false
	case FamilyIPv6:
		wantV4 = false
	}

	cands := make([]Candidate, 0, len(addrs))
	for _, a := range addrs {
		if a.IP.To4() != nil {
			if !wantV4 {
				continue
			}
		} else if !wantV6 {
			continue
		}
		cands = append(cands, Candidate{IP: a.IP, Zone: a.Zone, Port: port})
	}

	if len(cands) == 0 {
		return nil, &errors.ResolveError{Host: host, Port: port, Err: errors.ErrNoAddresses}
	}
	return cands, nil
}

// configuredFamilies reports which address families have at least one
// address assigned on this host.  Listing failures degrade to "both",
// which only costs wasted connect attempts, never missed ones.
func (r *Resolver) configuredFamilies() (v4, v6 bool) {
	list := r.InterfaceAddrs
	if list == nil {
		list = net.InterfaceAddrs
	}

	addrs, err := list()
	if err != nil {
		return true, true
	}
	for _, a := range addrs {
		var ip net.IP
		switch v := a.(type) {
		case *net.IPNet:
			ip = v.IP
		case *net.IPAddr:
			ip = v.IP
		default:
			continue
		}
		if ip.To4() != nil {
			v4 = true
		} else {
			v6 = true
		}
		if v4 && v6 {
			break
		}
	}
	return v4, v6
}
