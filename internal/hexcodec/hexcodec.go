// Package hexcodec converts between fixed-width unsigned integers, raw bytes
// and the lowercase hexadecimal identifiers used by the universal model.
package hexcodec

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrOverflow is returned when a value does not fit in the requested width.
	ErrOverflow = errors.New("hexcodec: value does not fit in byte count")

	// ErrByteCount is returned for a negative byte count.
	ErrByteCount = errors.New("hexcodec: byte count must not be negative")

	// ErrInvalidCharacter is returned by Decode for input containing a
	// non-hex character.
	ErrInvalidCharacter = errors.New("hexcodec: invalid hex character")
)

// EncodeBigEndian writes value into byteCount little-endian bytes, reverses
// them and returns the lowercase hex form, two characters per byte.
// Widths above 8 bytes are zero-padded on the left.
func EncodeBigEndian(value uint64, byteCount int) (string, error) {
	if byteCount < 0 {
		return "", ErrByteCount
	}

	var native [8]byte
	binary.LittleEndian.PutUint64(native[:], value)

	buf := make([]byte, byteCount)
	for i, b := range native {
		if i < byteCount {
			buf[i] = b
			continue
		}
		if b != 0 {
			return "", fmt.Errorf("%w: %d in %d bytes", ErrOverflow, value, byteCount)
		}
	}
	slices.Reverse(buf)

	return BytesToHex(buf), nil
}

// Uint32 returns the 8-character big-endian form of v. Every identifier
// carried by a device (16 or 32 bits wide) is rendered through this width.
func Uint32(v uint32) string {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	return BytesToHex(buf[:])
}

// HexToBytes decodes s, skipping an optional "0x" prefix. Upper and lower
// case digits are accepted and a trailing odd nibble becomes its own byte.
// Any other character makes the whole result empty, never partial.
func HexToBytes(s string) []byte {
	s = strings.TrimPrefix(s, "0x")

	out := make([]byte, 0, len(s)/2+1)
	var (
		pending byte
		half    bool
	)
	for i := 0; i < len(s); i++ {
		v, ok := nibble(s[i])
		if !ok {
			return []byte{}
		}
		if half {
			out = append(out, pending<<4|v)
			half = false
		} else {
			pending = v
			half = true
		}
	}
	if half {
		out = append(out, pending)
	}
	return out
}

// Decode is the strict form of HexToBytes for callers that need an error
// instead of an empty slice.
func Decode(s string) ([]byte, error) {
	b := HexToBytes(s)
	if len(b) == 0 && strings.TrimPrefix(s, "0x") != "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCharacter, s)
	}
	return b, nil
}

// BytesToHex renders each byte as exactly two lowercase hex characters.
func BytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}

func nibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
