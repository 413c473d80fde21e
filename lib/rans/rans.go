// Copyright 2026 The Teleost Authors
// SPDX-License-Identifier: Apache-2.0

package rans

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/teleost/cram/lib/itf8"
)

// Format constants. Changing these breaks container format
// compatibility.
const (
	// Order0 codes every byte against one global frequency table.
	Order0 = 0

	// Order1 codes every byte against the frequency table selected
	// by the preceding byte.
	Order1 = 1

	// lowBound is the renormalization threshold: every coder state
	// stays in [lowBound, lowBound<<8) between symbols.
	lowBound = 1 << 23

	// totalShift is the frequency precision: symbol frequencies in a
	// table sum to 1<<totalShift.
	totalShift = 12
	total      = 1 << totalShift

	// stateCount is the number of interleaved coder states.
	stateCount = 4

	// headerLen is the fixed prefix: order u8, compressed size
	// u32-LE, uncompressed size u32-LE.
	headerLen = 9
)

// Decode decompresses a complete rANS stream (header, frequency
// table, state stream) and returns the original bytes. Trailing bytes
// beyond the header's compressed size are ignored. A malformed or
// truncated stream returns an error.
func Decode(data []byte) ([]byte, error) {
	if len(data) < headerLen {
		return nil, fmt.Errorf("rans: header truncated: %d bytes", len(data))
	}

	order := data[0]
	compressedLen := binary.LittleEndian.Uint32(data[1:5])
	uncompressedLen := binary.LittleEndian.Uint32(data[5:9])

	if uncompressedLen == 0 {
		return []byte{}, nil
	}

	payload := data[headerLen:]
	if uint64(len(payload)) < uint64(compressedLen) {
		return nil, fmt.Errorf("rans: payload truncated: have %d bytes, header declares %d",
			len(payload), compressedLen)
	}
	payload = payload[:compressedLen]

	output := make([]byte, uncompressedLen)
	cursor := &cursor{data: payload}

	switch order {
	case Order0:
		if err := decode0(cursor, output); err != nil {
			return nil, err
		}
	case Order1:
		if err := decode1(cursor, output); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("rans: invalid order %d", order)
	}

	return output, nil
}

// Encode compresses data with the given order (Order0 or Order1) and
// returns a complete stream that Decode inverts. Empty input encodes
// to the 9-byte header alone.
func Encode(order uint8, data []byte) ([]byte, error) {
	var table, stream []byte

	switch order {
	case Order0:
		if len(data) > 0 {
			table, stream = encode0(data)
		}
	case Order1:
		if len(data) > 0 {
			table, stream = encode1(data)
		}
	default:
		return nil, fmt.Errorf("rans: invalid order %d", order)
	}

	compressedLen := len(table) + len(stream)
	out := make([]byte, 0, headerLen+compressedLen)
	out = append(out, order)
	out = binary.LittleEndian.AppendUint32(out, uint32(compressedLen))
	out = binary.LittleEndian.AppendUint32(out, uint32(len(data)))
	out = append(out, table...)
	out = append(out, stream...)
	return out, nil
}

// cursor tracks a read position within the compressed payload.
type cursor struct {
	data []byte
	pos  int
}

func (c *cursor) u8() (byte, error) {
	if c.pos >= len(c.data) {
		return 0, io.ErrUnexpectedEOF
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}

func (c *cursor) u32() (uint32, error) {
	if c.pos+4 > len(c.data) {
		return 0, io.ErrUnexpectedEOF
	}
	v := binary.LittleEndian.Uint32(c.data[c.pos:])
	c.pos += 4
	return v, nil
}

func (c *cursor) itf8() (int32, error) {
	v, n, err := itf8.Decode(c.data[c.pos:])
	if err != nil {
		return 0, err
	}
	c.pos += n
	return v, nil
}

// model is one normalized frequency table with its cumulative sums
// and slot-to-symbol lookup.
type model struct {
	freqs      [256]uint32
	cumulative [257]uint32
	symbols    []byte // one entry per frequency slot
}

// readFrequencies reads one RLE-packed frequency table: runs of
// (symbol, optional run length, ITF8 frequency) entries terminated by
// a zero symbol byte. Consecutive symbols after the first in a run
// carry no symbol byte of their own.
func readFrequencies(c *cursor) (*model, error) {
	m := &model{}

	sym, err := c.u8()
	if err != nil {
		return nil, err
	}
	lastSym := sym
	rle := 0

	for {
		f, err := c.itf8()
		if err != nil {
			return nil, err
		}
		if f < 0 || f > total {
			return nil, fmt.Errorf("rans: frequency %d for symbol %d out of range", f, sym)
		}
		m.freqs[sym] = uint32(f)

		if rle > 0 {
			rle--
			sym++
		} else {
			sym, err = c.u8()
			if err != nil {
				return nil, err
			}
			if lastSym < 255 && sym == lastSym+1 {
				runLen, err := c.u8()
				if err != nil {
					return nil, err
				}
				rle = int(runLen)
			}
		}
		lastSym = sym
		if sym == 0 {
			break
		}
	}

	for i := 0; i < 256; i++ {
		m.cumulative[i+1] = m.cumulative[i] + m.freqs[i]
	}
	sum := m.cumulative[256]
	if sum == 0 || sum > total {
		return nil, fmt.Errorf("rans: frequency table sums to %d, want 1..%d", sum, total)
	}

	m.symbols = make([]byte, sum)
	for s := 0; s < 256; s++ {
		for slot := m.cumulative[s]; slot < m.cumulative[s+1]; slot++ {
			m.symbols[slot] = byte(s)
		}
	}
	return m, nil
}

// advance applies one decode step to state x for the symbol occupying
// slot, then renormalizes from the cursor.
func (m *model) advance(c *cursor, x, slot uint32) (byte, uint32, error) {
	s := m.symbols[slot]
	x = m.freqs[s]*(x>>totalShift) + slot - m.cumulative[s]
	for x < lowBound {
		b, err := c.u8()
		if err != nil {
			return 0, 0, fmt.Errorf("rans: state stream truncated: %w", err)
		}
		x = x<<8 | uint32(b)
	}
	return s, x, nil
}

func decode0(c *cursor, output []byte) error {
	m, err := readFrequencies(c)
	if err != nil {
		return err
	}

	var states [stateCount]uint32
	for j := range states {
		if states[j], err = c.u32(); err != nil {
			return fmt.Errorf("rans: reading initial state %d: %w", j, err)
		}
	}

	slots := uint32(len(m.symbols))
	for i := range output {
		j := i & 3
		slot := states[j] & (total - 1)
		if slot >= slots {
			return fmt.Errorf("rans: state slot %d outside frequency table (%d slots)", slot, slots)
		}
		s, x, err := m.advance(c, states[j], slot)
		if err != nil {
			return err
		}
		output[i] = s
		states[j] = x
	}
	return nil
}

// readContextFrequencies reads the order-1 table: an outer RLE run of
// context bytes, each followed by an inner order-0 style table for
// that context, terminated by a zero context byte.
func readContextFrequencies(c *cursor) (*[256]*model, error) {
	models := new([256]*model)

	ctx, err := c.u8()
	if err != nil {
		return nil, err
	}
	lastCtx := ctx
	rle := 0

	for {
		m, err := readFrequencies(c)
		if err != nil {
			return nil, fmt.Errorf("rans: context %d: %w", ctx, err)
		}
		models[ctx] = m

		if rle > 0 {
			rle--
			ctx++
		} else {
			ctx, err = c.u8()
			if err != nil {
				return nil, err
			}
			if lastCtx < 255 && ctx == lastCtx+1 {
				runLen, err := c.u8()
				if err != nil {
					return nil, err
				}
				rle = int(runLen)
			}
		}
		lastCtx = ctx
		if ctx == 0 {
			break
		}
	}
	return models, nil
}

func decode1(c *cursor, output []byte) error {
	models, err := readContextFrequencies(c)
	if err != nil {
		return err
	}

	var states [stateCount]uint32
	for j := range states {
		if states[j], err = c.u32(); err != nil {
			return fmt.Errorf("rans: reading initial state %d: %w", j, err)
		}
	}

	// The output is split into four streams: states 0-2 decode one
	// quarter each, state 3 decodes the final quarter plus the
	// remainder, every stream conditioning on its own previous byte
	// (context 0 at stream start).
	quarter := len(output) / stateCount
	positions := [stateCount]int{0, quarter, 2 * quarter, 3 * quarter}
	var contexts [stateCount]byte

	step := func(j int) error {
		m := models[contexts[j]]
		if m == nil {
			return fmt.Errorf("rans: no frequency table for context %d", contexts[j])
		}
		slot := states[j] & (total - 1)
		if slot >= uint32(len(m.symbols)) {
			return fmt.Errorf("rans: state slot %d outside frequency table for context %d", slot, contexts[j])
		}
		s, x, err := m.advance(c, states[j], slot)
		if err != nil {
			return err
		}
		output[positions[j]] = s
		positions[j]++
		states[j] = x
		contexts[j] = s
		return nil
	}

	for r := 0; r < quarter; r++ {
		for j := 0; j < stateCount; j++ {
			if err := step(j); err != nil {
				return err
			}
		}
	}
	for positions[stateCount-1] < len(output) {
		if err := step(stateCount - 1); err != nil {
			return err
		}
	}
	return nil
}
