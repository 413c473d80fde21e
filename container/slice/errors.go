// Copyright 2026 The Teleost Authors
// SPDX-License-Identifier: Apache-2.0

package slice

import (
	"fmt"

	"github.com/teleost/cram/record"
)

// MismatchError reports a record whose reference identity differs
// from the identity fixed by the builder's first record. The rejected
// record rides along so the caller can redirect it — typically into a
// fresh builder — without losing it:
//
//	var mismatch *slice.MismatchError
//	if errors.As(err, &mismatch) {
//	    next.AddRecord(mismatch.Record)
//	}
type MismatchError struct {
	// Record is the rejected record, unchanged.
	Record record.Record

	// SliceID is the identity the builder is fixed to.
	SliceID record.ReferenceSequenceID

	// RecordID is the rejected record's identity.
	RecordID record.ReferenceSequenceID
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("record reference sequence %s does not match slice reference sequence %s",
		e.RecordID, e.SliceID)
}

// MissingReferenceError reports that the reference store has no
// sequence for the slice's concrete reference id.
type MissingReferenceError struct {
	// ID is the reference sequence id that could not be resolved.
	ID int32
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("missing reference sequence %d", e.ID)
}

// OutOfBoundsError reports that the slice's alignment span falls
// outside the fetched reference sequence. The range is 1-based and
// inclusive on both ends.
type OutOfBoundsError struct {
	// ID is the reference sequence id.
	ID int32

	// Start and End delimit the span the slice needs.
	Start, End int32

	// SequenceLen is the length of the fetched sequence.
	SequenceLen int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("alignment span [%d, %d] outside reference sequence %d (%d bases)",
		e.Start, e.End, e.ID, e.SequenceLen)
}
