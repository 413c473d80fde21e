// Copyright 2026 The Teleost Authors
// SPDX-License-Identifier: Apache-2.0

package slice

import (
	"github.com/teleost/cram/container"
	"github.com/teleost/cram/record"
)

// NoEmbeddedReference is the EmbeddedReferenceContentID value of a
// slice that carries no embedded reference bases block.
const NoEmbeddedReference int32 = -1

// Header describes a finalized slice. Headers are produced only by
// [Builder.Build] and never mutated afterward.
type Header struct {
	// ReferenceSequenceID is the reference identity shared by every
	// record in the slice.
	ReferenceSequenceID record.ReferenceSequenceID

	// AlignmentStart is the minimum 1-based alignment start over the
	// slice's records.
	AlignmentStart int32

	// AlignmentSpan is the number of reference positions the slice
	// covers, at least 1.
	AlignmentSpan int32

	// RecordCount is the number of records in the slice.
	RecordCount int32

	// UnmappedReadCount is not computed at build time; it stays zero
	// until a later container-assembly stage fills it in.
	UnmappedReadCount int32

	// BlockCount is the core block plus every surviving external
	// block.
	BlockCount int32

	// BlockContentIDs lists the slice's block ids: the core block's
	// reserved id first, then external ids in sink-creation order.
	// Streams that received no bytes do not appear.
	BlockContentIDs []int32

	// EmbeddedReferenceContentID names the block holding embedded
	// reference bases, or NoEmbeddedReference.
	EmbeddedReferenceContentID int32

	// ReferenceMD5 is the 16-byte digest of the reference bases the
	// slice covers; all zeroes when the slice has no concrete
	// reference.
	ReferenceMD5 [16]byte

	// OptionalTags is not populated at build time.
	OptionalTags []byte
}

// Slice is one finalized group of records: a header, exactly one core
// block, and zero or more external blocks.
type Slice struct {
	header         Header
	coreBlock      container.Block
	externalBlocks []container.Block
}

// Header returns the slice's header.
func (s *Slice) Header() Header {
	return s.header
}

// CoreBlock returns the slice's core bitstream block.
func (s *Slice) CoreBlock() container.Block {
	return s.coreBlock
}

// ExternalBlocks returns the slice's external blocks in manifest
// order. The slice is shared, not copied.
func (s *Slice) ExternalBlocks() []container.Block {
	return s.externalBlocks
}
