// Copyright 2026 The Teleost Authors
// SPDX-License-Identifier: Apache-2.0

package slice

// ReferenceStore provides random access to reference sequences by
// integer id, modeling a FASTA-backed reference collection.
// Implementations must be read-only from this package's perspective:
// multiple builders may consult the same store concurrently.
type ReferenceStore interface {
	// Sequence returns the contiguous bases of the reference with
	// the given id, or false if no such reference exists.
	Sequence(id int32) ([]byte, bool)
}

// ReferenceSlice adapts an in-memory list of sequences to
// [ReferenceStore]: index i is reference id i.
type ReferenceSlice [][]byte

// Sequence implements [ReferenceStore].
func (s ReferenceSlice) Sequence(id int32) ([]byte, bool) {
	if id < 0 || int(id) >= len(s) {
		return nil, false
	}
	return s[id], true
}
