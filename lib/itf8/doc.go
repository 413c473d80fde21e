// Copyright 2026 The Teleost Authors
// SPDX-License-Identifier: Apache-2.0

// Package itf8 implements the ITF8 variable-width signed integer
// encoding used throughout the container format's binary layout.
//
// ITF8 encodes a 32-bit signed integer in one to five bytes. The
// number of leading one bits in the first byte announces how many
// continuation bytes follow, so small non-negative values cost a
// single byte while negative values (whose two's-complement bit
// patterns have the high bit set) always cost five. The breakpoints
// are at 2^7, 2^14, 2^21, and 2^28.
//
// The API surface mirrors encoding/binary's append-style helpers:
//
//   - [Size] -- encoded byte count without materializing bytes
//   - [Append] / [Encoded] -- encode onto a buffer / into a new slice
//   - [Decode] -- decode from a byte slice, reporting bytes consumed
//   - [Read] / [Write] -- stream variants over io.Reader / io.Writer
//
// These values are protocol constants — changing the encoding breaks
// container format compatibility.
package itf8
