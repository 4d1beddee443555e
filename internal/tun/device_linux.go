//go:build linux

package tun

import (
	"errors"
	"io/fs"
	"os"

	"golang.org/x/sys/unix"
)

const tunPath = "/dev/net/tun"

// device implements Device for Linux.
type device struct {
	file *os.File
	name string
	mode Mode
}

// Open creates a TUN or TAP interface per cfg and returns it as a
// Device. The interface exists until the device is closed (or the
// process exits), and no kernel state is touched if any step fails.
func Open(cfg Config) (Device, error) {
	file, err := openDevice(tunPath)
	if err != nil {
		return nil, err
	}

	flags := uint16(unix.IFF_TUN)
	if cfg.Mode == TAP {
		flags = unix.IFF_TAP
	}
	if !cfg.PacketInfo {
		flags |= unix.IFF_NO_PI
	}

	req, err := newIfreq(cfg.Name, flags)
	if err != nil {
		file.Close()
		return nil, &InvalidNameError{Err: err}
	}

	if err := setInterface(file.Fd(), req); err != nil {
		file.Close()
		return nil, err
	}

	name, err := DecodeName(req.Name)
	if err != nil {
		file.Close()
		return nil, &InvalidNameError{Err: err}
	}

	return &device{file: file, name: name, mode: cfg.Mode}, nil
}

// openDevice opens the tun device file read-write, mapping the two
// failure kinds a caller can act on to their sentinels.
func openDevice(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, ErrDeviceNotFound
		case errors.Is(err, fs.ErrPermission):
			return nil, ErrPermissionDenied
		default:
			return nil, &OpenError{Err: err}
		}
	}
	return file, nil
}

func (d *device) Read(p []byte) (int, error) {
	return d.file.Read(p)
}

func (d *device) Write(p []byte) (int, error) {
	return d.file.Write(p)
}

// Close releases the file descriptor, detaching the interface.
func (d *device) Close() error {
	return d.file.Close()
}

func (d *device) Name() string {
	return d.name
}

func (d *device) Mode() Mode {
	return d.mode
}

func (d *device) File() int {
	return int(d.file.Fd())
}

func (d *device) String() string {
	return d.mode.String() + "(" + d.name + ")"
}
