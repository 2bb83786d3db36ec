// Package wide converts between Go strings and the host's wide-character
// strings: null-terminated UTF-16 in little-endian byte order.
package wide

import (
	"encoding/binary"
	"unicode/utf16"
	"unsafe"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// MaxScan bounds how far FromPtr walks looking for a terminator.
const MaxScan = 32 * 1024

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// Encode returns s as UTF-16 code units without a terminator.
// Invalid UTF-8 is replaced with U+FFFD.
func Encode(s string) []uint16 {
	if s == "" {
		return nil
	}
	b, err := encoding.ReplaceUnsupported(utf16le.NewEncoder()).Bytes([]byte(s))
	if err != nil {
		return utf16.Encode([]rune(s))
	}
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	return units
}

// Terminated returns s as UTF-16 code units followed by a zero terminator.
func Terminated(s string) []uint16 {
	return append(Encode(s), 0)
}

// CopyTerminated writes s into dst as a null-terminated wide string.
//
// At most len(dst)-1 units of s are copied; the rest of dst is zero filled,
// so dst always holds a terminator. A longer s is truncated, never
// overflowed. It returns the number of units copied, excluding the
// terminator. An empty dst is left untouched.
func CopyTerminated(dst []uint16, s string) int {
	if len(dst) == 0 {
		return 0
	}
	units := Encode(s)
	n := copy(dst[:len(dst)-1], units)
	clear(dst[n:])
	return n
}

// Decode converts UTF-16 units to a string, stopping at the first zero.
func Decode(units []uint16) string {
	for i, u := range units {
		if u == 0 {
			units = units[:i]
			break
		}
	}
	if len(units) == 0 {
		return ""
	}
	b := make([]byte, 2*len(units))
	for i, u := range units {
		binary.LittleEndian.PutUint16(b[2*i:], u)
	}
	out, err := utf16le.NewDecoder().Bytes(b)
	if err != nil {
		return string(utf16.Decode(units))
	}
	return string(out)
}

// FromPtr reads a null-terminated wide string owned by the host.
// A nil pointer yields "". Reading stops after MaxScan units if no
// terminator is found.
func FromPtr(p *uint16) string {
	if p == nil {
		return ""
	}
	var n int
	for ptr := unsafe.Pointer(p); n < MaxScan; n++ {
		if *(*uint16)(unsafe.Add(ptr, n*2)) == 0 {
			break
		}
	}
	return Decode(unsafe.Slice(p, n))
}
