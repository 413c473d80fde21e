// Copyright 2026 The Teleost Authors
// SPDX-License-Identifier: Apache-2.0

// Package bitio provides MSB-first bit-level reading and writing over
// in-memory byte buffers. The container format's core bitstream packs
// per-record fields at bit granularity; [Writer] accumulates bits and
// [Writer.Finish] zero-pads the final partial byte, so every stream it
// produces is a whole number of bytes. [Reader] mirrors the writer.
package bitio

import (
	"fmt"
	"io"
)

// Writer accumulates bits most-significant-first into a growing byte
// buffer. The zero value is ready to use.
type Writer struct {
	buffer  []byte
	current byte
	pending int // bits held in current, 0..7
}

// WriteBits writes the low n bits of value, most significant first.
// n must be between 0 and 32.
func (w *Writer) WriteBits(value uint32, n int) error {
	if n < 0 || n > 32 {
		return fmt.Errorf("bitio: bit count %d out of range [0, 32]", n)
	}
	for n > 0 {
		n--
		bit := byte(value>>uint(n)) & 1
		w.current = w.current<<1 | bit
		w.pending++
		if w.pending == 8 {
			w.buffer = append(w.buffer, w.current)
			w.current = 0
			w.pending = 0
		}
	}
	return nil
}

// WriteBit writes a single bit.
func (w *Writer) WriteBit(bit bool) error {
	if bit {
		return w.WriteBits(1, 1)
	}
	return w.WriteBits(0, 1)
}

// BitCount returns the number of bits written so far.
func (w *Writer) BitCount() int {
	return len(w.buffer)*8 + w.pending
}

// Finish zero-pads the final partial byte and returns the accumulated
// buffer. The writer is left empty and may be reused.
func (w *Writer) Finish() []byte {
	if w.pending > 0 {
		w.buffer = append(w.buffer, w.current<<uint(8-w.pending))
	}
	buffer := w.buffer
	w.buffer = nil
	w.current = 0
	w.pending = 0
	return buffer
}

// Reader consumes bits most-significant-first from a byte slice.
type Reader struct {
	data     []byte
	position int // next byte index
	pending  int // unread bits remaining in data[position-1], 0..7
	current  byte
}

// NewReader returns a Reader over data. The slice is not copied.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// ReadBits reads n bits (0 to 32), most significant first.
func (r *Reader) ReadBits(n int) (uint32, error) {
	if n < 0 || n > 32 {
		return 0, fmt.Errorf("bitio: bit count %d out of range [0, 32]", n)
	}
	var value uint32
	for n > 0 {
		if r.pending == 0 {
			if r.position >= len(r.data) {
				return 0, io.ErrUnexpectedEOF
			}
			r.current = r.data[r.position]
			r.position++
			r.pending = 8
		}
		r.pending--
		n--
		bit := uint32(r.current>>uint(r.pending)) & 1
		value = value<<1 | bit
	}
	return value, nil
}

// ReadBit reads a single bit.
func (r *Reader) ReadBit() (bool, error) {
	bit, err := r.ReadBits(1)
	return bit == 1, err
}
