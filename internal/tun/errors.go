package tun

import (
	"errors"
	"fmt"
	"syscall"
)

// Errors reported by the name codec. Together with ErrMangledName these
// are the only ways EncodeName and DecodeName can fail.
type (
	// NameTooLongError reports a name that does not fit in the
	// interface name buffer with its terminator.
	NameTooLongError struct {
		Capacity int
	}

	// EmbeddedNULError reports a NUL byte inside a requested name.
	EmbeddedNULError struct {
		Position int
	}

	// InvalidCharacterError reports the first non-ASCII character in a
	// name, by character position.
	InvalidCharacterError struct {
		Position int
	}
)

// ErrMangledName is returned by DecodeName when the buffer holds no NUL
// terminator at all.
var ErrMangledName = errors.New("interface name buffer has no NUL terminator")

func (e *NameTooLongError) Error() string {
	return fmt.Sprintf("interface name too long, at most %d bytes", e.Capacity-1)
}

func (e *EmbeddedNULError) Error() string {
	return fmt.Sprintf("interface name contains NUL at position %d", e.Position)
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("interface name contains non-ASCII character at position %d", e.Position)
}

// Errors reported by Open. ErrDeviceNotFound and ErrPermissionDenied
// are the two open failures a caller is expected to branch on; every
// other failure arrives as *OpenError, *IoctlError or
// *InvalidNameError with the cause attached.
var (
	// ErrDeviceNotFound means /dev/net/tun does not exist; loading the
	// tun kernel module (modprobe tun) usually fixes it.
	ErrDeviceNotFound = errors.New("/dev/net/tun does not exist (is the tun kernel module loaded?)")

	// ErrPermissionDenied means the process lacks CAP_NET_ADMIN.
	ErrPermissionDenied = errors.New("permission denied opening /dev/net/tun (CAP_NET_ADMIN required)")
)

// OpenError wraps an open failure on /dev/net/tun that is neither a
// missing file nor a permission problem.
type OpenError struct {
	Err error
}

func (e *OpenError) Error() string {
	return "failed to open /dev/net/tun: " + e.Err.Error()
}

func (e *OpenError) Unwrap() error { return e.Err }

// IoctlError wraps the errno of a failed TUNSETIFF call.
type IoctlError struct {
	Errno syscall.Errno
}

func (e *IoctlError) Error() string {
	return "TUNSETIFF ioctl failed: " + e.Errno.Error()
}

func (e *IoctlError) Unwrap() error { return e.Errno }

// InvalidNameError wraps a name codec failure hit while creating a
// device, either encoding the requested name or decoding the one the
// kernel assigned.
type InvalidNameError struct {
	Err error
}

func (e *InvalidNameError) Error() string {
	return "invalid interface name: " + e.Err.Error()
}

func (e *InvalidNameError) Unwrap() error { return e.Err }
