//go:build linux

package tun

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// ifreq mirrors struct ifreq from <linux/if.h>: the name buffer
// followed by a union whose active member here is the 16-bit flags
// word. It is handed to the kernel by raw pointer, so field order,
// sizes and total size must match the native layout exactly, and every
// byte outside Name and Flags must stay zero.
type ifreq struct {
	Name  InterfaceName
	Flags uint16
	_     [22]byte // rest of the ifr_ifru union
}

// Tun ioctl request numbers share the 'T' magic byte. TUNSETIFF is
// command 202; the neighbouring TUNSETPERSIST (203), TUNSETOWNER (204)
// and TUNSETGROUP (206) manage persistence and ownership and are not
// issued by this package. All four are defined by
// golang.org/x/sys/unix, as are the IFF_TUN, IFF_TAP and IFF_NO_PI
// flag bits.

// newIfreq builds a TUNSETIFF request for the given name and flags.
func newIfreq(name string, flags uint16) (*ifreq, error) {
	n, err := EncodeName(name)
	if err != nil {
		return nil, err
	}
	return &ifreq{Name: n, Flags: flags}, nil
}

// setInterface upgrades fd, an open /dev/net/tun descriptor, into the
// device described by req. On success the kernel has bound fd to a new
// or existing interface and overwritten req.Name with the definitive
// name, which matters when the caller asked for auto-naming. Failures
// are never transient; there is nothing to retry.
//
// fd must come from /dev/net/tun and req from newIfreq. With anything
// else the errno is whatever the kernel fancies.
func setInterface(fd uintptr, req *ifreq) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, uintptr(unix.TUNSETIFF), uintptr(unsafe.Pointer(req)))
	if errno != 0 {
		return &IoctlError{Errno: errno}
	}
	return nil
}
