// Copyright 2026 The Teleost Authors
// SPDX-License-Identifier: Apache-2.0

package itf8

import (
	"fmt"
	"io"
)

// MaxLen is the maximum number of bytes an ITF8 value occupies.
const MaxLen = 5

// Size returns the number of bytes the ITF8 encoding of value
// occupies. Negative values always occupy MaxLen bytes.
func Size(value int32) int {
	u := uint32(value)
	switch {
	case u < 0x80:
		return 1
	case u < 0x4000:
		return 2
	case u < 0x200000:
		return 3
	case u < 0x10000000:
		return 4
	default:
		return 5
	}
}

// Append appends the ITF8 encoding of value to dst and returns the
// extended slice.
func Append(dst []byte, value int32) []byte {
	u := uint32(value)
	switch {
	case u < 0x80:
		return append(dst, byte(u))
	case u < 0x4000:
		return append(dst, byte(u>>8)|0x80, byte(u))
	case u < 0x200000:
		return append(dst, byte(u>>16)|0xc0, byte(u>>8), byte(u))
	case u < 0x10000000:
		return append(dst, byte(u>>24)|0xe0, byte(u>>16), byte(u>>8), byte(u))
	default:
		// The final byte carries only the low nibble.
		return append(dst, byte(u>>28)|0xf0, byte(u>>20), byte(u>>12), byte(u>>4), byte(u)&0x0f)
	}
}

// Encoded returns the ITF8 encoding of value as a new slice.
func Encoded(value int32) []byte {
	return Append(make([]byte, 0, MaxLen), value)
}

// Decode decodes one ITF8 value from the front of data. It returns
// the value and the number of bytes consumed. An empty or truncated
// encoding returns an error.
func Decode(data []byte) (int32, int, error) {
	if len(data) == 0 {
		return 0, 0, io.ErrUnexpectedEOF
	}

	b0 := data[0]
	n := 1
	switch {
	case b0&0x80 == 0:
		// fall through with n = 1
	case b0&0x40 == 0:
		n = 2
	case b0&0x20 == 0:
		n = 3
	case b0&0x10 == 0:
		n = 4
	default:
		n = 5
	}
	if len(data) < n {
		return 0, 0, fmt.Errorf("itf8: truncated encoding: have %d of %d bytes", len(data), n)
	}

	switch n {
	case 1:
		return int32(b0), 1, nil
	case 2:
		return int32(uint32(b0&0x3f)<<8 | uint32(data[1])), 2, nil
	case 3:
		return int32(uint32(b0&0x1f)<<16 | uint32(data[1])<<8 | uint32(data[2])), 3, nil
	case 4:
		return int32(uint32(b0&0x0f)<<24 | uint32(data[1])<<16 | uint32(data[2])<<8 | uint32(data[3])), 4, nil
	default:
		u := uint32(b0&0x0f)<<28 |
			uint32(data[1])<<20 |
			uint32(data[2])<<12 |
			uint32(data[3])<<4 |
			uint32(data[4])&0x0f
		return int32(u), 5, nil
	}
}

// Write writes the ITF8 encoding of value to w.
func Write(w io.Writer, value int32) error {
	var scratch [MaxLen]byte
	encoded := Append(scratch[:0], value)
	if _, err := w.Write(encoded); err != nil {
		return fmt.Errorf("itf8: writing value %d: %w", value, err)
	}
	return nil
}

// Read reads one ITF8 value from r.
func Read(r io.Reader) (int32, error) {
	var scratch [MaxLen]byte
	if _, err := io.ReadFull(r, scratch[:1]); err != nil {
		return 0, err
	}

	b0 := scratch[0]
	n := 1
	switch {
	case b0&0x80 == 0:
	case b0&0x40 == 0:
		n = 2
	case b0&0x20 == 0:
		n = 3
	case b0&0x10 == 0:
		n = 4
	default:
		n = 5
	}
	if n > 1 {
		if _, err := io.ReadFull(r, scratch[1:n]); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return 0, fmt.Errorf("itf8: truncated encoding: %w", err)
		}
	}

	value, _, err := Decode(scratch[:n])
	return value, err
}
