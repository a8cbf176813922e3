// Package ifaddr resolves a local network interface name to its
// assigned IPv4 address.  Callers use it to validate a user-supplied
// interface option before asking the dialer to bind to it.
//
// On Linux the lookup asks the kernel directly through a throwaway
// datagram socket and the SIOCGIFADDR ioctl; elsewhere it falls back
// to the interface table exposed by the net package.
package ifaddr

import (
	"fetchwire/internal/errors"
)

// Lookup returns the dotted-quad IPv4 address assigned to the named
// interface.  Unknown interfaces, interfaces without an IPv4 address,
// and permission errors all come back as a LookupError, never a
// panic, and never partial output.
func Lookup(name string) (string, error) {
	ip, err := lookupIPv4(name)
	if err != nil {
		return "", &errors.LookupError{Interface: name, Err: err}
	}
	return ip, nil
}
