// Copyright 2026 The Teleost Authors
// SPDX-License-Identifier: Apache-2.0

package bitio

import (
	"bytes"
	"io"
	"math/rand"
	"testing"
)

func TestWriterBitPacking(t *testing.T) {
	var writer Writer

	// 1 + 01 + 10011 = 10110011 = 0xb3.
	mustWrite(t, &writer, 1, 1)
	mustWrite(t, &writer, 0b01, 2)
	mustWrite(t, &writer, 0b10011, 5)

	got := writer.Finish()
	if !bytes.Equal(got, []byte{0xb3}) {
		t.Errorf("Finish() = %x, want b3", got)
	}
}

func TestWriterPadsFinalByte(t *testing.T) {
	var writer Writer
	mustWrite(t, &writer, 0b101, 3)

	got := writer.Finish()
	if !bytes.Equal(got, []byte{0b10100000}) {
		t.Errorf("Finish() = %08b, want 10100000", got[0])
	}
}

func TestWriterEmpty(t *testing.T) {
	var writer Writer
	if got := writer.Finish(); len(got) != 0 {
		t.Errorf("Finish() on empty writer = %x, want empty", got)
	}
}

func TestWriterCrossesByteBoundary(t *testing.T) {
	var writer Writer
	mustWrite(t, &writer, 0xdeadbeef, 32)
	mustWrite(t, &writer, 0b1111, 4)

	got := writer.Finish()
	want := []byte{0xde, 0xad, 0xbe, 0xef, 0xf0}
	if !bytes.Equal(got, want) {
		t.Errorf("Finish() = %x, want %x", got, want)
	}
}

func TestBitCount(t *testing.T) {
	var writer Writer
	if writer.BitCount() != 0 {
		t.Errorf("BitCount() = %d on empty writer", writer.BitCount())
	}
	mustWrite(t, &writer, 0, 13)
	if writer.BitCount() != 13 {
		t.Errorf("BitCount() = %d, want 13", writer.BitCount())
	}
}

func TestWriterRejectsBadWidth(t *testing.T) {
	var writer Writer
	if err := writer.WriteBits(0, 33); err == nil {
		t.Error("WriteBits(0, 33) succeeded")
	}
	if err := writer.WriteBits(0, -1); err == nil {
		t.Error("WriteBits(0, -1) succeeded")
	}
}

func TestRoundTripRandomWidths(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	type field struct {
		value uint32
		width int
	}
	var fields []field
	var writer Writer
	for i := 0; i < 1000; i++ {
		width := rng.Intn(33)
		value := rng.Uint32()
		if width < 32 {
			value &= 1<<uint(width) - 1
		}
		fields = append(fields, field{value, width})
		mustWrite(t, &writer, value, width)
	}

	reader := NewReader(writer.Finish())
	for i, f := range fields {
		got, err := reader.ReadBits(f.width)
		if err != nil {
			t.Fatalf("field %d: ReadBits(%d): %v", i, f.width, err)
		}
		if got != f.value {
			t.Fatalf("field %d: ReadBits(%d) = %d, want %d", i, f.width, got, f.value)
		}
	}
}

func TestReaderPastEnd(t *testing.T) {
	reader := NewReader([]byte{0xff})
	if _, err := reader.ReadBits(8); err != nil {
		t.Fatal(err)
	}
	if _, err := reader.ReadBits(1); err != io.ErrUnexpectedEOF {
		t.Errorf("ReadBits past end = %v, want io.ErrUnexpectedEOF", err)
	}
}

func mustWrite(t *testing.T, w *Writer, value uint32, n int) {
	t.Helper()
	if err := w.WriteBits(value, n); err != nil {
		t.Fatalf("WriteBits(%#x, %d): %v", value, n, err)
	}
}
