//go:build linux

package link

import (
	"fmt"

	"github.com/vishvananda/netlink"
)

// Apply configures the named interface via netlink.
func Apply(name string, s Settings) error {
	nl, err := netlink.LinkByName(name)
	if err != nil {
		return fmt.Errorf("failed to find link %s: %w", name, err)
	}

	if s.MTU > 0 {
		if err := netlink.LinkSetMTU(nl, s.MTU); err != nil {
			return fmt.Errorf("failed to set MTU on %s: %w", name, err)
		}
	}

	for _, cidr := range []string{s.Address, s.Address6} {
		if cidr == "" {
			continue
		}
		addr, err := netlink.ParseAddr(cidr)
		if err != nil {
			return fmt.Errorf("invalid address %s: %w", cidr, err)
		}
		if err := netlink.AddrAdd(nl, addr); err != nil {
			return fmt.Errorf("failed to add address %s to %s: %w", cidr, name, err)
		}
	}

	if s.Up {
		if err := netlink.LinkSetUp(nl); err != nil {
			return fmt.Errorf("failed to bring %s up: %w", name, err)
		}
	}

	return nil
}
