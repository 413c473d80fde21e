// Copyright 2026 The Teleost Authors
// SPDX-License-Identifier: Apache-2.0

// Package slice builds container slices: coherent groups of alignment
// records sharing one reference context, represented as a header plus
// one core block and zero or more external blocks.
//
// A [Builder] accepts records one at a time through
// [Builder.AddRecord], enforcing that every record carries the
// reference identity fixed by the first. [Builder.Build] consumes the
// builder: it routes each buffered record's fields into the core
// bitstream and the per-series and per-tag external streams the
// compression header declares, tracks the slice's alignment span as
// records pass through, hashes the covered reference range, and
// finalizes every non-empty stream into a block. The block manifest
// lists the core block first and then external blocks in
// sink-creation order (fixed series enumeration, then declared tag
// streams), so identical input always produces an identical manifest.
//
// Recoverable failures are structured: a reference mismatch at
// AddRecord returns the rejected record inside a [MismatchError] so
// the caller can start a new slice with it, and Build distinguishes a
// [MissingReferenceError] from an [OutOfBoundsError] when the
// reference store cannot cover the slice's span.
//
// Everything here is synchronous and single-threaded; a Builder is
// owned by one goroutine until Build consumes it.
package slice
