package tun

import "unicode"

// NameSize is the size of the kernel interface name buffer (IFNAMSIZ),
// terminator included. A usable name is therefore at most NameSize-1
// bytes long.
const NameSize = 16

// InterfaceName is the fixed-size, NUL-terminated name buffer embedded
// in interface requests. The zero value requests kernel auto-naming.
type InterfaceName [NameSize]byte

// EncodeName validates name and copies it into an InterfaceName.
//
// The empty string encodes to the zero buffer, which asks the kernel to
// pick a free name (tun0, tap1, ...). Anything else must be ASCII,
// contain no NUL byte, and be shorter than NameSize so that the last
// byte can hold the terminator.
func EncodeName(name string) (InterfaceName, error) {
	var buf InterfaceName
	if name == "" {
		return buf, nil
	}

	pos := 0
	for _, r := range name {
		if r == 0 {
			return buf, &EmbeddedNULError{Position: pos}
		}
		if r > unicode.MaxASCII {
			return buf, &InvalidCharacterError{Position: pos}
		}
		pos++
	}

	if len(name) >= NameSize {
		return buf, &NameTooLongError{Capacity: NameSize}
	}

	// The buffer starts zeroed and the name is strictly shorter than
	// NameSize, so the terminator is already in place.
	copy(buf[:], name)
	return buf, nil
}

// DecodeName extracts the string held in buf. The kernel writes the
// assigned name back into the request on TUNSETIFF, so this is how the
// final device name is recovered after auto-naming.
func DecodeName(buf InterfaceName) (string, error) {
	end := -1
	for i, b := range buf {
		if b == 0 {
			end = i
			break
		}
	}
	if end < 0 {
		return "", ErrMangledName
	}

	for i, b := range buf[:end] {
		if b > unicode.MaxASCII {
			return "", &InvalidCharacterError{Position: i}
		}
	}
	return string(buf[:end]), nil
}
