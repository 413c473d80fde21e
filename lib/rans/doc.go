// Copyright 2026 The Teleost Authors
// SPDX-License-Identifier: Apache-2.0

// Package rans implements the rANS 4x8 entropy codec used for
// compressed container blocks.
//
// The codec is an asymmetric numeral system coder with four
// interleaved 32-bit states, 12-bit frequency precision (symbol
// frequencies normalized to a total of 4096), and byte-at-a-time
// renormalization against a lower bound of 2^23. Two models are
// defined: order-0 (a single frequency table over all bytes) and
// order-1 (one frequency table per preceding-byte context).
//
// The wire format is a 9-byte header (order byte, then compressed and
// uncompressed sizes as little-endian u32) followed by an RLE-packed
// frequency table and the interleaved state stream. A zero-length
// payload is represented by the header alone; no frequency table is
// present. These layout constants are fixed by the container format.
//
// [Decode] and [Encode] are pure bytes-to-bytes functions with no
// shared state, so they are safe for concurrent use.
package rans
