// Copyright 2026 The Teleost Authors
// SPDX-License-Identifier: Apache-2.0

package slice

import (
	"crypto/md5"
	"fmt"
	"math"

	"github.com/teleost/cram/container"
	"github.com/teleost/cram/lib/bitio"
	"github.com/teleost/cram/record"
)

// Builder accumulates records for one slice. The zero value is not
// ready; create one with [NewBuilder]. A builder is consumed by
// [Builder.Build]; using it afterward returns an error.
type Builder struct {
	records             []record.Record
	referenceSequenceID record.ReferenceSequenceID
	haveReference       bool
	consumed            bool
}

// NewBuilder creates an empty slice builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// IsEmpty reports whether no records have been accepted.
func (b *Builder) IsEmpty() bool {
	return len(b.records) == 0
}

// Len returns the number of accepted records.
func (b *Builder) Len() int {
	return len(b.records)
}

// AddRecord buffers r for the slice. The first accepted record fixes
// the builder's reference identity (including the unmapped case);
// every later record must match it exactly, or AddRecord returns a
// [MismatchError] carrying the rejected record back to the caller and
// the builder is unchanged. On success the returned pointer addresses
// the stored record; it is valid until the next AddRecord call.
func (b *Builder) AddRecord(r record.Record) (*record.Record, error) {
	if b.consumed {
		return nil, fmt.Errorf("slice builder already consumed by Build")
	}

	if !b.haveReference {
		b.referenceSequenceID = r.ReferenceSequenceID
		b.haveReference = true
	}

	if r.ReferenceSequenceID != b.referenceSequenceID {
		return nil, &MismatchError{
			Record:   r,
			SliceID:  b.referenceSequenceID,
			RecordID: r.ReferenceSequenceID,
		}
	}

	b.records = append(b.records, r)
	return &b.records[len(b.records)-1], nil
}

// Build finalizes the slice and consumes the builder. Records are
// routed in acceptance order in a single pass, during which the
// slice's alignment bounds are tracked; non-empty streams become
// blocks; and the reference span digest is computed against
// references when the slice has a concrete reference identity.
func (b *Builder) Build(references ReferenceStore, header *container.CompressionHeader) (*Slice, error) {
	if b.consumed {
		return nil, fmt.Errorf("slice builder already consumed by Build")
	}
	b.consumed = true

	if len(b.records) == 0 {
		return nil, fmt.Errorf("no records in builder")
	}

	core := &bitio.Writer{}
	writer := newRecordWriter(header, core)

	alignmentStart := int32(math.MaxInt32)
	alignmentEnd := int32(1)

	for i := range b.records {
		r := &b.records[i]
		if r.AlignmentStart < alignmentStart {
			alignmentStart = r.AlignmentStart
		}
		if end := r.AlignmentEnd(); end > alignmentEnd {
			alignmentEnd = end
		}
		if err := writer.writeRecord(r); err != nil {
			return nil, err
		}
	}

	coreBytes := core.Finish()
	coreBlock := container.NewBlock(
		container.MethodNone,
		container.ContentCoreData,
		container.CoreBlockContentID,
		int32(len(coreBytes)),
		coreBytes,
		0, // checksums are deferred to container assembly
	)

	// Streams that received no bytes produce no block and are absent
	// from the manifest.
	blockContentIDs := []int32{container.CoreBlockContentID}
	var externalBlocks []container.Block
	for _, s := range writer.sinks {
		if s.buffer.Len() == 0 {
			continue
		}
		data := s.buffer.Bytes()
		externalBlocks = append(externalBlocks, container.NewBlock(
			container.MethodNone,
			container.ContentExternalData,
			s.id,
			int32(len(data)),
			data,
			0,
		))
		blockContentIDs = append(blockContentIDs, s.id)
	}

	alignmentSpan := alignmentEnd - alignmentStart + 1
	if alignmentSpan < 1 {
		alignmentSpan = 1
	}

	var referenceMD5 [16]byte
	if b.referenceSequenceID.IsSpecific() {
		id := int32(b.referenceSequenceID)
		sequence, ok := references.Sequence(id)
		if !ok {
			return nil, &MissingReferenceError{ID: id}
		}

		// 1-based inclusive range over the clamped span. A span
		// outside the sequence is fatal, never clamped.
		spanEnd := alignmentStart + alignmentSpan - 1
		if alignmentStart < 1 || int(spanEnd) > len(sequence) {
			return nil, &OutOfBoundsError{
				ID:          id,
				Start:       alignmentStart,
				End:         spanEnd,
				SequenceLen: len(sequence),
			}
		}
		referenceMD5 = md5.Sum(sequence[alignmentStart-1 : spanEnd])
	}

	return &Slice{
		header: Header{
			ReferenceSequenceID:        b.referenceSequenceID,
			AlignmentStart:             alignmentStart,
			AlignmentSpan:              alignmentSpan,
			RecordCount:                int32(len(b.records)),
			UnmappedReadCount:          0, // deferred to container assembly
			BlockCount:                 int32(1 + len(externalBlocks)),
			BlockContentIDs:            blockContentIDs,
			EmbeddedReferenceContentID: NoEmbeddedReference,
			ReferenceMD5:               referenceMD5,
		},
		coreBlock:      coreBlock,
		externalBlocks: externalBlocks,
	}, nil
}
