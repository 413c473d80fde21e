// Copyright 2026 The Teleost Authors
// SPDX-License-Identifier: Apache-2.0

package rans

import (
	"encoding/binary"

	"github.com/teleost/cram/lib/itf8"
)

// The encoder is the exact inverse of the decoder: symbols are coded
// in reverse of decode-consumption order into a buffer filled from
// its end, so renormalization bytes and the flushed initial states
// land in the positions the decoder reads them from.

// backwardWriter fills a fixed buffer from the end. bytes() returns
// the written suffix.
type backwardWriter struct {
	buffer []byte
	pos    int
}

func newBackwardWriter(capacity int) *backwardWriter {
	return &backwardWriter{buffer: make([]byte, capacity), pos: capacity}
}

func (w *backwardWriter) put(b byte) {
	w.pos--
	w.buffer[w.pos] = b
}

func (w *backwardWriter) putState(x uint32) {
	w.pos -= 4
	binary.LittleEndian.PutUint32(w.buffer[w.pos:], x)
}

func (w *backwardWriter) bytes() []byte {
	return w.buffer[w.pos:]
}

// encodeSymbol renormalizes state x down for frequency f, emits the
// shifted-out bytes, and folds the symbol in.
func encodeSymbol(w *backwardWriter, x, f, cumulative uint32) uint32 {
	limit := ((lowBound >> totalShift) << 8) * f
	for x >= limit {
		w.put(byte(x))
		x >>= 8
	}
	return (x/f)<<totalShift + x%f + cumulative
}

// streamCapacity bounds the worst-case state stream size: at most 12
// bits per symbol (minimum normalized frequency 1) plus the four
// flushed states.
func streamCapacity(n int) int {
	return 2*n + 4*stateCount + 16
}

// normalizeFrequencies scales raw counts so they sum to exactly
// total, keeping every present symbol's frequency at least 1.
func normalizeFrequencies(counts *[256]uint32) [256]uint32 {
	var sum uint64
	for _, c := range counts {
		sum += uint64(c)
	}

	var freqs [256]uint32
	if sum == 0 {
		return freqs
	}

	var assigned uint32
	for i, c := range counts {
		if c == 0 {
			continue
		}
		f := uint32(uint64(c) * total / sum)
		if f == 0 {
			f = 1
		}
		freqs[i] = f
		assigned += f
	}

	// Rounding drift is at most a few hundred; settle it against the
	// symbols that can best absorb it.
	for assigned > total {
		largest := -1
		for i, f := range freqs {
			if f > 1 && (largest < 0 || f > freqs[largest]) {
				largest = i
			}
		}
		freqs[largest]--
		assigned--
	}
	for assigned < total {
		largest := -1
		for i, f := range freqs {
			if f > 0 && (largest < 0 || f > freqs[largest]) {
				largest = i
			}
		}
		freqs[largest]++
		assigned++
	}
	return freqs
}

func cumulativeFrequencies(freqs *[256]uint32) [257]uint32 {
	var cumulative [257]uint32
	for i := 0; i < 256; i++ {
		cumulative[i+1] = cumulative[i] + freqs[i]
	}
	return cumulative
}

// appendFrequencies writes one frequency table in the RLE-packed
// layout readFrequencies reads: a symbol byte opens each run, a
// second consecutive symbol is followed by the remaining run length,
// and a zero symbol byte terminates the table.
func appendFrequencies(dst []byte, freqs *[256]uint32) []byte {
	rle := 0
	for j := 0; j < 256; j++ {
		if freqs[j] == 0 {
			continue
		}
		if rle > 0 {
			rle--
		} else {
			dst = append(dst, byte(j))
			if j > 0 && freqs[j-1] > 0 {
				for k := j + 1; k < 256 && freqs[k] > 0; k++ {
					rle++
				}
				dst = append(dst, byte(rle))
			}
		}
		dst = itf8.Append(dst, int32(freqs[j]))
	}
	return append(dst, 0)
}

func encode0(data []byte) (table, stream []byte) {
	var counts [256]uint32
	for _, b := range data {
		counts[b]++
	}
	freqs := normalizeFrequencies(&counts)
	cumulative := cumulativeFrequencies(&freqs)

	table = appendFrequencies(nil, &freqs)

	writer := newBackwardWriter(streamCapacity(len(data)))
	states := [stateCount]uint32{lowBound, lowBound, lowBound, lowBound}

	for i := len(data) - 1; i >= 0; i-- {
		j := i & 3
		s := data[i]
		states[j] = encodeSymbol(writer, states[j], freqs[s], cumulative[s])
	}
	for j := stateCount - 1; j >= 0; j-- {
		writer.putState(states[j])
	}
	return table, writer.bytes()
}

func encode1(data []byte) (table, stream []byte) {
	quarter := len(data) / stateCount
	starts := [stateCount]int{0, quarter, 2 * quarter, 3 * quarter}
	ends := [stateCount]int{quarter, 2 * quarter, 3 * quarter, len(data)}

	// Pair counts per preceding-byte context; each of the four
	// streams opens with context 0.
	counts := new([256][256]uint32)
	for j := 0; j < stateCount; j++ {
		context := byte(0)
		for i := starts[j]; i < ends[j]; i++ {
			counts[context][data[i]]++
			context = data[i]
		}
	}

	freqs := new([256][256]uint32)
	cumulative := new([256][257]uint32)
	used := new([256]bool)
	for ctx := 0; ctx < 256; ctx++ {
		var rowSum uint64
		for _, c := range counts[ctx] {
			rowSum += uint64(c)
		}
		if rowSum == 0 {
			continue
		}
		used[ctx] = true
		freqs[ctx] = normalizeFrequencies(&counts[ctx])
		cumulative[ctx] = cumulativeFrequencies(&freqs[ctx])
	}

	// Outer RLE over used contexts, same packing as the inner tables.
	rle := 0
	for ctx := 0; ctx < 256; ctx++ {
		if !used[ctx] {
			continue
		}
		if rle > 0 {
			rle--
		} else {
			table = append(table, byte(ctx))
			if ctx > 0 && used[ctx-1] {
				for k := ctx + 1; k < 256 && used[k]; k++ {
					rle++
				}
				table = append(table, byte(rle))
			}
		}
		table = appendFrequencies(table, &freqs[ctx])
	}
	table = append(table, 0)

	writer := newBackwardWriter(streamCapacity(len(data)))
	states := [stateCount]uint32{lowBound, lowBound, lowBound, lowBound}

	encodeAt := func(j, i int) {
		context := byte(0)
		if i > starts[j] {
			context = data[i-1]
		}
		s := data[i]
		states[j] = encodeSymbol(writer, states[j], freqs[context][s], cumulative[context][s])
	}

	// Reverse of decode order: the state-3 remainder first, then the
	// interleaved rounds with states 3 down to 0.
	for i := len(data) - 1; i >= 4*quarter; i-- {
		encodeAt(stateCount-1, i)
	}
	for r := quarter - 1; r >= 0; r-- {
		for j := stateCount - 1; j >= 0; j-- {
			encodeAt(j, starts[j]+r)
		}
	}
	for j := stateCount - 1; j >= 0; j-- {
		writer.putState(states[j])
	}
	return table, writer.bytes()
}
