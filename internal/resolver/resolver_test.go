package resolver

import (
	"context"
	"fmt"
	"net"
	"testing"

	"fetchwire/internal/errors"
)

// fixedLookup returns a lookup hook producing the given IPs in order.
func fixedLookup(ips ...string) func(context.Context, string) ([]net.IPAddr, error) {
	return func(_ context.Context, _ string) ([]net.IPAddr, error) {
		out := make([]net.IPAddr, 0, len(ips))
		for _, s := range ips {
			out = append(out, net.IPAddr{IP: net.ParseIP(s)})
		}
		return out, nil
	}
}

// dualStackAddrs reports both families as locally configured.
func dualStackAddrs() ([]net.Addr, error) {
	_, v4, _ := net.ParseCIDR("192.0.2.10/24")
	_, v6, _ := net.ParseCIDR("2001:db8::10/64")
	return []net.Addr{v4, v6}, nil
}

// v4OnlyAddrs reports an IPv4-only host.
func v4OnlyAddrs() ([]net.Addr, error) {
	_, v4, _ := net.ParseCIDR("192.0.2.10/24")
	return []net.Addr{v4}, nil
}

func TestResolve_OrderPreserved(t *testing.T) {
	r := &Resolver{
		LookupIPAddr:   fixedLookup("192.0.2.1", "192.0.2.2", "2001:db8::1"),
		InterfaceAddrs: dualStackAddrs,
	}

	cands, err := r.Resolve(context.Background(), "mirror.example.com", 80)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	want := []string{"192.0.2.1:80", "192.0.2.2:80", "[2001:db8::1]:80"}
	if len(cands) != len(want) {
		t.Fatalf("got %d candidates, want %d", len(cands), len(want))
	}
	for i, c := range cands {
		if c.Address() != want[i] {
			t.Errorf("candidate %d = %q, want %q", i, c.Address(), want[i])
		}
	}
}

func TestResolve_FamilyPreference(t *testing.T) {
	tests := []struct {
		name   string
		family Family
		want   []string
	}{
		{"any", FamilyAny, []string{"192.0.2.1:443", "[2001:db8::1]:443"}},
		{"ipv4", FamilyIPv4, []string{"192.0.2.1:443"}},
		{"ipv6", FamilyIPv6, []string{"[2001:db8::1]:443"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Resolver{
				Family:         tt.family,
				LookupIPAddr:   fixedLookup("192.0.2.1", "2001:db8::1"),
				InterfaceAddrs: dualStackAddrs,
			}
			cands, err := r.Resolve(context.Background(), "h", 443)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if len(cands) != len(tt.want) {
				t.Fatalf("got %d candidates, want %d", len(cands), len(tt.want))
			}
			for i, c := range cands {
				if c.Address() != tt.want[i] {
					t.Errorf("candidate %d = %q, want %q", i, c.Address(), tt.want[i])
				}
			}
		})
	}
}

func TestResolve_SkipsUnconfiguredFamily(t *testing.T) {
	// IPv6 results must be dropped on an IPv4-only host.
	r := &Resolver{
		LookupIPAddr:   fixedLookup("2001:db8::1", "192.0.2.1"),
		InterfaceAddrs: v4OnlyAddrs,
	}

	cands, err := r.Resolve(context.Background(), "h", 80)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(cands) != 1 || !cands[0].IsIPv4() {
		t.Fatalf("got %v, want single IPv4 candidate", cands)
	}
}

func TestResolve_LookupFailure(t *testing.T) {
	lookupErr := &net.DNSError{Err: "no such host", Name: "nohost.invalid", IsNotFound: true}
	r := &Resolver{
		LookupIPAddr: func(context.Context, string) ([]net.IPAddr, error) {
			return nil, lookupErr
		},
		InterfaceAddrs: dualStackAddrs,
	}

	_, err := r.Resolve(context.Background(), "nohost.invalid", 80)
	if err == nil {
		t.Fatal("expected error")
	}

	var re *errors.ResolveError
	if !errors.As(err, &re) {
		t.Fatalf("want ResolveError, got %T: %v", err, err)
	}
	if re.Host != "nohost.invalid" || re.Port != 80 {
		t.Errorf("wrong target: %s:%d", re.Host, re.Port)
	}
	if !errors.Is(err, lookupErr) {
		t.Error("resolver diagnostic should be preserved")
	}
}

func TestResolve_AllFiltered(t *testing.T) {
	// Family preference leaves nothing usable.
	r := &Resolver{
		Family:         FamilyIPv6,
		LookupIPAddr:   fixedLookup("192.0.2.1"),
		InterfaceAddrs: dualStackAddrs,
	}

	_, err := r.Resolve(context.Background(), "h", 80)
	if !errors.Is(err, errors.ErrNoAddresses) {
		t.Fatalf("want ErrNoAddresses, got %v", err)
	}
}

func TestResolve_InterfaceListingFailure(t *testing.T) {
	// A failed interface listing must not filter anything out.
	r := &Resolver{
		LookupIPAddr: fixedLookup("192.0.2.1", "2001:db8::1"),
		InterfaceAddrs: func() ([]net.Addr, error) {
			return nil, fmt.Errorf("permission denied")
		},
	}

	cands, err := r.Resolve(context.Background(), "h", 80)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(cands) != 2 {
		t.Fatalf("got %d candidates, want 2", len(cands))
	}
}

func TestCandidate_Network(t *testing.T) {
	v4 := Candidate{IP: net.ParseIP("192.0.2.1"), Port: 80}
	if v4.Network() != "tcp4" {
		t.Errorf("got %q, want tcp4", v4.Network())
	}
	v6 := Candidate{IP: net.ParseIP("2001:db8::1"), Port: 80}
	if v6.Network() != "tcp6" {
		t.Errorf("got %q, want tcp6", v6.Network())
	}
}

func TestCandidate_AddressWithZone(t *testing.T) {
	c := Candidate{IP: net.ParseIP("fe80::1"), Zone: "eth0", Port: 8080}
	if got, want := c.Address(), "[fe80::1%eth0]:8080"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFamily_String(t *testing.T) {
	tests := []struct {
		f    Family
		want string
	}{
		{FamilyAny, "any"},
		{FamilyIPv4, "ipv4"},
		{FamilyIPv6, "ipv6"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}
