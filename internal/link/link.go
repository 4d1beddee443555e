// Package link applies post-creation settings to a network interface.
// Creating a TUN/TAP device leaves it down and unaddressed; this is the
// optional step that makes it usable.
package link

// Settings holds the link-level options applied after device creation.
// Zero values mean "leave alone".
type Settings struct {
	MTU      int
	Address  string // IPv4 CIDR, e.g. "10.200.200.1/24"
	Address6 string // IPv6 CIDR, e.g. "fd00:200::1/64"
	Up       bool
}

// IsZero reports whether there is nothing to apply.
func (s Settings) IsZero() bool {
	return s.MTU == 0 && s.Address == "" && s.Address6 == "" && !s.Up
}
