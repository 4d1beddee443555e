//go:build !linux

package link

import (
	"fmt"
	"runtime"
)

// Apply returns an error on non-Linux platforms.
func Apply(name string, s Settings) error {
	return fmt.Errorf("link configuration is only supported on Linux, current platform: %s", runtime.GOOS)
}
