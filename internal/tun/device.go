package tun

import (
	"fmt"
	"io"
)

// Mode selects the layer a device operates at.
type Mode int

const (
	// TUN is a layer 3 point-to-point interface carrying raw IP packets.
	TUN Mode = iota
	// TAP is a layer 2 interface carrying Ethernet frames; unlike TUN
	// devices it can be added to a bridge.
	TAP
)

func (m Mode) String() string {
	if m == TAP {
		return "tap"
	}
	return "tun"
}

// ParseMode converts a config/CLI string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "tun":
		return TUN, nil
	case "tap":
		return TAP, nil
	}
	return TUN, fmt.Errorf("unknown device mode %q (want tun or tap)", s)
}

// Device is an opened TUN or TAP interface.
//
// Read and Write exchange one packet (TUN) or frame (TAP) per call,
// forwarded straight to the file descriptor with no buffering. With
// packet info enabled each unit carries an extra 4-byte kernel header
// that is passed through untouched. Closing the device detaches the
// interface unless it was made persistent elsewhere.
type Device interface {
	io.ReadWriteCloser

	// Name returns the interface name, which is kernel-assigned when
	// the config requested auto-naming.
	Name() string

	// Mode reports whether this is a TUN or a TAP device.
	Mode() Mode

	// File returns the underlying file descriptor.
	File() int

	// String renders mode and name for diagnostics, e.g. "tap(tap0)".
	String() string
}

// Config describes the device to create. It is a plain value consumed
// by a single Open call; no field changes after that.
type Config struct {
	// Name is the requested interface name. Empty asks the kernel to
	// assign a free one.
	Name string

	// Mode picks TUN or TAP. The zero value is TUN.
	Mode Mode

	// PacketInfo keeps the kernel's 4-byte metadata prefix on every
	// read and write. Most users want it off (IFF_NO_PI).
	PacketInfo bool
}

// DefaultConfig returns a config for an auto-named TUN device without
// packet info.
func DefaultConfig() Config {
	return Config{Mode: TUN}
}
