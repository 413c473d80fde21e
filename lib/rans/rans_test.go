// Copyright 2026 The Teleost Authors
// SPDX-License-Identifier: Apache-2.0

package rans

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
)

// roundTripInputs covers the payload shapes exercised elsewhere in
// the codec: compressible text, a single repeated symbol, full-range
// byte spreads, and lengths around the four-state interleave.
func roundTripInputs(t *testing.T) map[string][]byte {
	t.Helper()

	rng := rand.New(rand.NewSource(7))
	random := make([]byte, 10000)
	rng.Read(random)

	allBytes := make([]byte, 256)
	for i := range allBytes {
		allBytes[i] = byte(i)
	}

	return map[string][]byte{
		"text":            []byte(strings.Repeat("the quick brown fox jumps. ", 40)),
		"single byte":     {0x42},
		"two bytes":       {0x42, 0x43},
		"three bytes":     {1, 2, 3},
		"five bytes":      {9, 9, 9, 9, 9},
		"single symbol":   bytes.Repeat([]byte{7}, 1000),
		"all byte values": allBytes,
		"random":          random,
		"genomic-ish":     bytes.Repeat([]byte("ACGTACGGTTAACCN"), 333),
	}
}

func TestRoundTripOrder0(t *testing.T) {
	for name, input := range roundTripInputs(t) {
		t.Run(name, func(t *testing.T) {
			testRoundTrip(t, Order0, input)
		})
	}
}

func TestRoundTripOrder1(t *testing.T) {
	for name, input := range roundTripInputs(t) {
		t.Run(name, func(t *testing.T) {
			testRoundTrip(t, Order1, input)
		})
	}
}

func testRoundTrip(t *testing.T, order uint8, input []byte) {
	t.Helper()

	encoded, err := Encode(order, input)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(decoded, input) {
		t.Errorf("round trip mismatch: got %d bytes, want %d bytes", len(decoded), len(input))
	}
}

func TestRoundTripEmpty(t *testing.T) {
	for _, order := range []uint8{Order0, Order1} {
		encoded, err := Encode(order, nil)
		if err != nil {
			t.Fatalf("Encode(order %d, nil): %v", order, err)
		}
		if len(encoded) != headerLen {
			t.Errorf("empty payload encoded to %d bytes, want the %d-byte header", len(encoded), headerLen)
		}

		decoded, err := Decode(encoded)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if len(decoded) != 0 {
			t.Errorf("Decode of empty payload = %d bytes", len(decoded))
		}
	}
}

func TestCompressesSkewedInput(t *testing.T) {
	// A heavily skewed distribution must come out smaller than the
	// input; this is the codec's whole purpose.
	input := bytes.Repeat([]byte("AAAAAAAAAAAAAAAC"), 256)

	encoded, err := Encode(Order0, input)
	if err != nil {
		t.Fatal(err)
	}
	if len(encoded) >= len(input) {
		t.Errorf("encoded %d input bytes to %d bytes, expected compression", len(input), len(encoded))
	}
}

func TestEncodeInvalidOrder(t *testing.T) {
	if _, err := Encode(2, []byte("data")); err == nil {
		t.Error("Encode(order 2) succeeded")
	}
}

func TestDecodeErrors(t *testing.T) {
	valid, err := Encode(Order0, []byte("some reasonable input data"))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short header", valid[:5]},
		{"invalid order", append([]byte{9}, valid[1:]...)},
		{"truncated payload", valid[:len(valid)-4]},
		{"header only with nonzero size", valid[:headerLen]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.data); err == nil {
				t.Error("Decode succeeded on corrupt input")
			}
		})
	}
}

func TestDecodeIgnoresTrailingBytes(t *testing.T) {
	input := []byte("payload with trailing garbage after it")
	encoded, err := Encode(Order1, input)
	if err != nil {
		t.Fatal(err)
	}
	encoded = append(encoded, 0xff, 0xff, 0xff)

	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(decoded, input) {
		t.Error("round trip mismatch with trailing bytes present")
	}
}

func TestNormalizeFrequenciesSumsToTotal(t *testing.T) {
	tests := []struct {
		name   string
		counts func() [256]uint32
	}{
		{"single symbol", func() (c [256]uint32) { c[65] = 12345; return }},
		{"uniform", func() (c [256]uint32) {
			for i := range c {
				c[i] = 1
			}
			return
		}},
		{"skewed with rare tail", func() (c [256]uint32) {
			c[0] = 1 << 20
			for i := 1; i < 200; i++ {
				c[i] = 1
			}
			return
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counts := tt.counts()
			freqs := normalizeFrequencies(&counts)

			var sum uint32
			for i, f := range freqs {
				sum += f
				if counts[i] > 0 && f == 0 {
					t.Errorf("symbol %d present in input but normalized to 0", i)
				}
				if counts[i] == 0 && f != 0 {
					t.Errorf("symbol %d absent from input but normalized to %d", i, f)
				}
			}
			if sum != total {
				t.Errorf("normalized frequencies sum to %d, want %d", sum, total)
			}
		})
	}
}

func BenchmarkDecodeOrder0(b *testing.B) {
	input := bytes.Repeat([]byte("ACGTACGGTTAACCN"), 1000)
	encoded, err := Encode(Order0, input)
	if err != nil {
		b.Fatal(err)
	}
	for b.Loop() {
		if _, err := Decode(encoded); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodeOrder1(b *testing.B) {
	input := bytes.Repeat([]byte("ACGTACGGTTAACCN"), 1000)
	for b.Loop() {
		if _, err := Encode(Order1, input); err != nil {
			b.Fatal(err)
		}
	}
}
