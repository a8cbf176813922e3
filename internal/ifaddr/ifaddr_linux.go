//go:build linux

package ifaddr

import (
	"net"

	"golang.org/x/sys/unix"
)

// lookupIPv4 queries the kernel interface table via SIOCGIFADDR.  The
// datagram socket exists only as an ioctl handle and is released
// regardless of outcome.
func lookupIPv4(name string) (string, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return "", err
	}
	defer unix.Close(fd)

	ifr, err := unix.NewIfreq(name)
	if err != nil {
		return "", err
	}
	if err := unix.IoctlIfreq(fd, unix.SIOCGIFADDR, ifr); err != nil {
		return "", err
	}

	addr, err := ifr.Inet4Addr()
	if err != nil {
		return "", err
	}
	return net.IP(addr).String(), nil
}
