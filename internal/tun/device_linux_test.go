//go:build linux

package tun

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"unsafe"

	"golang.org/x/sys/unix"
)

func TestConstants(t *testing.T) {
	// NameSize and the flag bits must match the platform headers as
	// exposed by x/sys, not locally invented values.
	if NameSize != unix.IFNAMSIZ {
		t.Errorf("NameSize = %d, want IFNAMSIZ = %d", NameSize, unix.IFNAMSIZ)
	}
	if unix.IFF_TUN&unix.IFF_TAP != 0 {
		t.Error("IFF_TUN and IFF_TAP must not share bits")
	}
}

func TestIfreq_Layout(t *testing.T) {
	// The request is passed to the kernel by raw pointer, so its size
	// must match the native struct ifreq exactly.
	if got, want := unsafe.Sizeof(ifreq{}), unsafe.Sizeof(unix.Ifreq{}); got != want {
		t.Errorf("sizeof(ifreq) = %d, want %d", got, want)
	}
	if off := unsafe.Offsetof(ifreq{}.Flags); off != NameSize {
		t.Errorf("offsetof(Flags) = %d, want %d", off, NameSize)
	}
}

func TestNewIfreq(t *testing.T) {
	req, err := newIfreq("tap3", unix.IFF_TAP|unix.IFF_NO_PI)
	if err != nil {
		t.Fatalf("newIfreq error = %v", err)
	}

	name, err := DecodeName(req.Name)
	if err != nil {
		t.Fatalf("DecodeName error = %v", err)
	}
	if name != "tap3" {
		t.Errorf("name = %q, want tap3", name)
	}
	if req.Flags != unix.IFF_TAP|unix.IFF_NO_PI {
		t.Errorf("flags = %#04x, want %#04x", req.Flags, unix.IFF_TAP|unix.IFF_NO_PI)
	}

	// Everything past name+flags belongs to union members this package
	// never sets; the kernel requires those bytes to be zero.
	raw := (*[unsafe.Sizeof(ifreq{})]byte)(unsafe.Pointer(req))
	for i := NameSize + 2; i < len(raw); i++ {
		if raw[i] != 0 {
			t.Fatalf("byte %d of request = %#02x, want 0", i, raw[i])
		}
	}
}

func TestNewIfreq_BadName(t *testing.T) {
	_, err := newIfreq("tuné0", unix.IFF_TUN)
	var invalid *InvalidCharacterError
	if !errors.As(err, &invalid) {
		t.Errorf("error = %v, want *InvalidCharacterError", err)
	}
}

func TestOpenDevice_NotFound(t *testing.T) {
	_, err := openDevice(filepath.Join(t.TempDir(), "no-such-tun"))
	if !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("error = %v, want ErrDeviceNotFound", err)
	}
}

func TestOpenDevice_PermissionDenied(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("skipping permission test when running as root")
	}

	path := filepath.Join(t.TempDir(), "locked")
	if err := os.WriteFile(path, nil, 0o000); err != nil {
		t.Fatal(err)
	}

	_, err := openDevice(path)
	if !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("error = %v, want ErrPermissionDenied", err)
	}
}

func TestOpenDevice_OtherFailure(t *testing.T) {
	// Opening a directory read-write fails with EISDIR, which is
	// neither of the two distinguished conditions.
	_, err := openDevice(t.TempDir())
	var openErr *OpenError
	if !errors.As(err, &openErr) {
		t.Errorf("error = %v, want *OpenError", err)
	}
}

func TestOpen_NoPrivilege(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("skipping unprivileged test when running as root")
	}
	if _, err := os.Stat(tunPath); os.IsNotExist(err) {
		t.Skipf("%s does not exist", tunPath)
	}

	dev, err := Open(Config{Name: "tuntest0", Mode: TUN})
	if err == nil {
		dev.Close()
		t.Fatal("Open() should fail without CAP_NET_ADMIN")
	}

	// Depending on the system the refusal comes from open(2) or from
	// the ioctl itself.
	var ioctlErr *IoctlError
	if !errors.Is(err, ErrPermissionDenied) && !errors.As(err, &ioctlErr) {
		t.Errorf("error = %v, want ErrPermissionDenied or *IoctlError", err)
	}
}

func TestOpen_InvalidName(t *testing.T) {
	if _, err := os.Stat(tunPath); err != nil {
		t.Skipf("%s not available", tunPath)
	}

	_, err := Open(Config{Name: "интерфейс", Mode: TUN})
	if err == nil {
		t.Fatal("Open() should reject a non-ASCII name")
	}
	// Name validation happens after open(2), so an unprivileged run
	// may fail earlier with a permission error instead.
	var invalid *InvalidNameError
	if !errors.As(err, &invalid) && !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("error = %v, want *InvalidNameError", err)
	}
}

func TestOpen_RequestedName(t *testing.T) {
	if os.Getuid() != 0 {
		t.Skip("requires root")
	}
	if _, err := os.Stat(tunPath); err != nil {
		t.Skipf("%s not available: %v", tunPath, err)
	}

	dev, err := Open(Config{Name: "tuntest0", Mode: TUN})
	if err != nil {
		t.Fatalf("Open error = %v", err)
	}
	defer dev.Close()

	if dev.Name() != "tuntest0" {
		t.Errorf("Name() = %q, want tuntest0", dev.Name())
	}
	if dev.Mode() != TUN {
		t.Errorf("Mode() = %v, want TUN", dev.Mode())
	}
	if dev.String() != "tun(tuntest0)" {
		t.Errorf("String() = %q, want tun(tuntest0)", dev.String())
	}
	if dev.File() < 0 {
		t.Errorf("File() = %d, want a valid descriptor", dev.File())
	}
}

func TestOpen_AutoName(t *testing.T) {
	if os.Getuid() != 0 {
		t.Skip("requires root")
	}
	if _, err := os.Stat(tunPath); err != nil {
		t.Skipf("%s not available: %v", tunPath, err)
	}

	dev, err := Open(Config{Mode: TAP})
	if err != nil {
		t.Fatalf("Open error = %v", err)
	}
	defer dev.Close()

	if dev.Name() == "" {
		t.Error("auto-assigned name should not be empty")
	}
	if len(dev.Name()) >= NameSize {
		t.Errorf("Name() = %q, longer than the buffer allows", dev.Name())
	}
}
