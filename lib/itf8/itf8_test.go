// Copyright 2026 The Teleost Authors
// SPDX-License-Identifier: Apache-2.0

package itf8

import (
	"bytes"
	"math"
	"testing"
)

// encodingMatrix spans every encoded width, including the exact
// breakpoint values on both sides and negative values.
var encodingMatrix = []struct {
	value int32
	size  int
}{
	{0, 1},
	{1, 1},
	{127, 1},
	{128, 2},
	{4096, 2},
	{16383, 2},
	{16384, 3},
	{100000, 3},
	{2097151, 3},
	{2097152, 4},
	{10000000, 4},
	{268435455, 4},
	{268435456, 5},
	{math.MaxInt32, 5},
	{-1, 5},
	{-2, 5},
	{-4096, 5},
	{math.MinInt32, 5},
}

func TestSizeMatchesEncodedLength(t *testing.T) {
	for _, tt := range encodingMatrix {
		encoded := Encoded(tt.value)
		if len(encoded) != tt.size {
			t.Errorf("Encoded(%d) is %d bytes, want %d", tt.value, len(encoded), tt.size)
		}
		if got := Size(tt.value); got != tt.size {
			t.Errorf("Size(%d) = %d, want %d", tt.value, got, tt.size)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, tt := range encodingMatrix {
		encoded := Encoded(tt.value)

		decoded, n, err := Decode(encoded)
		if err != nil {
			t.Fatalf("Decode(Encoded(%d)): %v", tt.value, err)
		}
		if decoded != tt.value {
			t.Errorf("Decode(Encoded(%d)) = %d", tt.value, decoded)
		}
		if n != len(encoded) {
			t.Errorf("Decode(Encoded(%d)) consumed %d bytes, want %d", tt.value, n, len(encoded))
		}
	}
}

func TestDecodeWithTrailingBytes(t *testing.T) {
	// Decode must consume exactly one value and report its width.
	data := append(Encoded(300), 0xde, 0xad)
	value, n, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if value != 300 || n != 2 {
		t.Errorf("Decode = (%d, %d), want (300, 2)", value, n)
	}
}

func TestDecodeTruncated(t *testing.T) {
	for _, tt := range encodingMatrix {
		encoded := Encoded(tt.value)
		for cut := 0; cut < len(encoded); cut++ {
			if _, _, err := Decode(encoded[:cut]); err == nil {
				t.Errorf("Decode(%d-byte prefix of Encoded(%d)) succeeded", cut, tt.value)
			}
		}
	}
}

func TestReadWriteStream(t *testing.T) {
	var buffer bytes.Buffer
	for _, tt := range encodingMatrix {
		if err := Write(&buffer, tt.value); err != nil {
			t.Fatalf("Write(%d): %v", tt.value, err)
		}
	}

	for _, tt := range encodingMatrix {
		value, err := Read(&buffer)
		if err != nil {
			t.Fatalf("Read (expecting %d): %v", tt.value, err)
		}
		if value != tt.value {
			t.Errorf("Read = %d, want %d", value, tt.value)
		}
	}
	if buffer.Len() != 0 {
		t.Errorf("%d bytes left over after reading all values", buffer.Len())
	}
}

func BenchmarkAppend(b *testing.B) {
	buffer := make([]byte, 0, MaxLen)
	for b.Loop() {
		for _, tt := range encodingMatrix {
			buffer = Append(buffer[:0], tt.value)
		}
	}
}
