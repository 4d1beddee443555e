//go:build !linux

package tun

import (
	"fmt"
	"runtime"
)

// Open returns an error on non-Linux platforms.
func Open(cfg Config) (Device, error) {
	return nil, fmt.Errorf("TUN/TAP devices are only supported on Linux, current platform: %s", runtime.GOOS)
}
