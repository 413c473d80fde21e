// Copyright 2026 The Teleost Authors
// SPDX-License-Identifier: Apache-2.0

// Package record defines the already-parsed alignment record consumed
// by slice construction, together with the tri-state reference
// sequence identity shared by all records in a slice.
package record

import "fmt"

// ReferenceSequenceID identifies the reference sequence a record
// aligns to. Non-negative values name a specific sequence; the two
// negative sentinels are wire values fixed by the format. Identities
// compare with plain equality: two specific identities match only on
// the same id, and [Unmapped] never matches [MultiReference].
type ReferenceSequenceID int32

const (
	// Unmapped marks a record (or slice) with no reference sequence.
	Unmapped ReferenceSequenceID = -1

	// MultiReference marks a slice whose records span multiple
	// reference sequences. Individual records never carry it.
	MultiReference ReferenceSequenceID = -2
)

// IsSpecific reports whether the identity names a concrete reference
// sequence.
func (id ReferenceSequenceID) IsSpecific() bool {
	return id >= 0
}

// String returns "unmapped", "multi-reference", or the sequence id.
func (id ReferenceSequenceID) String() string {
	switch id {
	case Unmapped:
		return "unmapped"
	case MultiReference:
		return "multi-reference"
	default:
		return fmt.Sprintf("%d", int32(id))
	}
}

// Tag is one auxiliary field of a record. ID packs the two-letter tag
// name and value type byte as produced by [TagID]; Value holds the
// field's raw bytes.
type Tag struct {
	ID    int32
	Value []byte
}

// TagID packs a two-letter tag name and a value type byte into the
// integer stream identity used for tag routing: name[0]<<16 |
// name[1]<<8 | valueType.
func TagID(name string, valueType byte) (int32, error) {
	if len(name) != 2 {
		return 0, fmt.Errorf("tag name %q must be exactly two characters", name)
	}
	return int32(name[0])<<16 | int32(name[1])<<8 | int32(valueType), nil
}

// Record is one alignment record. It is a plain value: slice
// construction takes ownership of records passed to it, and the
// router reads fields through the accessors below without mutating
// anything.
type Record struct {
	// BAMFlags is the standard alignment flag word.
	BAMFlags uint16

	// Flags is the container format's own per-record flag byte.
	Flags uint8

	// ReferenceSequenceID is the record's reference identity.
	ReferenceSequenceID ReferenceSequenceID

	// ReadLength is the read length in bases.
	ReadLength int32

	// AlignmentStart is the 1-based leftmost mapped position.
	AlignmentStart int32

	// ReadGroup is the read group index, -1 when absent.
	ReadGroup int32

	// ReadName holds the read name bytes.
	ReadName []byte

	// MateFlags carries the mate's flag bits.
	MateFlags uint8

	// MateReferenceSequenceID is the mate's reference identity.
	MateReferenceSequenceID ReferenceSequenceID

	// MateAlignmentStart is the mate's 1-based alignment start.
	MateAlignmentStart int32

	// TemplateSize is the observed template (insert) size.
	TemplateSize int32

	// Tags holds the record's auxiliary fields in original order.
	Tags []Tag

	// MappingQuality is the alignment mapping quality.
	MappingQuality uint8

	// Bases holds the read bases.
	Bases []byte

	// QualityScores holds one score per base.
	QualityScores []byte
}

// AlignmentEnd returns the 1-based inclusive rightmost position
// covered by the record: start + length - 1.
func (r *Record) AlignmentEnd() int32 {
	return r.AlignmentStart + r.ReadLength - 1
}
