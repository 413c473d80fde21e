// Copyright 2026 The Teleost Authors
// SPDX-License-Identifier: Apache-2.0

package container

import "fmt"

// DataSeries is one of the fixed set of structural record fields. A
// record's fields are routed by series to either the slice's core
// bitstream or the series' own external stream. Ordinals and
// two-letter codes are format constants; the external block content
// id of a series is its ordinal plus one, with [CoreBlockContentID]
// reserved for the core stream.
type DataSeries uint8

const (
	// SeriesBAMFlags (BF) carries the per-record BAM flag word.
	SeriesBAMFlags DataSeries = iota

	// SeriesRecordFlags (CF) carries the format-specific record
	// flags.
	SeriesRecordFlags

	// SeriesReferenceID (RI) carries the record's reference sequence
	// id.
	SeriesReferenceID

	// SeriesReadLength (RL) carries the read length in bases.
	SeriesReadLength

	// SeriesAlignmentStart (AP) carries the 1-based alignment start
	// position.
	SeriesAlignmentStart

	// SeriesReadGroup (RG) carries the read group index.
	SeriesReadGroup

	// SeriesReadName (RN) carries the read name bytes.
	SeriesReadName

	// SeriesMateFlags (MF) carries the mate's flag bits.
	SeriesMateFlags

	// SeriesMateReferenceID (NS) carries the mate's reference
	// sequence id.
	SeriesMateReferenceID

	// SeriesMateAlignmentStart (NP) carries the mate's 1-based
	// alignment start.
	SeriesMateAlignmentStart

	// SeriesTemplateSize (TS) carries the template (insert) size.
	SeriesTemplateSize

	// SeriesDistanceToMate (NF) carries the record distance to the
	// next fragment in the slice.
	SeriesDistanceToMate

	// SeriesTagLine (TL) carries the tag line index.
	SeriesTagLine

	// SeriesFeatureCount (FN) carries the number of read features.
	SeriesFeatureCount

	// SeriesFeatureCode (FC) carries read feature operation codes.
	SeriesFeatureCode

	// SeriesFeaturePosition (FP) carries in-read feature positions.
	SeriesFeaturePosition

	// SeriesDeletionLength (DL) carries deletion lengths.
	SeriesDeletionLength

	// SeriesStretchOfBases (BB) carries runs of bases.
	SeriesStretchOfBases

	// SeriesStretchOfQualities (QQ) carries runs of quality scores.
	SeriesStretchOfQualities

	// SeriesBaseSubstitutionCode (BS) carries base substitution
	// codes.
	SeriesBaseSubstitutionCode

	// SeriesInsertion (IN) carries inserted base runs.
	SeriesInsertion

	// SeriesReferenceSkipLength (RS) carries reference skip lengths.
	SeriesReferenceSkipLength

	// SeriesPadding (PD) carries padding lengths.
	SeriesPadding

	// SeriesHardClip (HC) carries hard clip lengths.
	SeriesHardClip

	// SeriesSoftClip (SC) carries soft-clipped base runs.
	SeriesSoftClip

	// SeriesMappingQuality (MQ) carries mapping qualities.
	SeriesMappingQuality

	// SeriesBases (BA) carries individual bases.
	SeriesBases

	// SeriesQualityScores (QS) carries individual quality scores.
	SeriesQualityScores

	// DataSeriesCount is the number of data series. External sink
	// allocation iterates ordinals 0..DataSeriesCount-1 in order.
	DataSeriesCount
)

// CoreBlockContentID is the reserved content id of a slice's core
// bitstream block.
const CoreBlockContentID int32 = 0

// seriesCodes holds the two-letter wire codes, indexed by ordinal.
var seriesCodes = [DataSeriesCount]string{
	"BF", "CF", "RI", "RL", "AP", "RG", "RN", "MF", "NS", "NP",
	"TS", "NF", "TL", "FN", "FC", "FP", "DL", "BB", "QQ", "BS",
	"IN", "RS", "PD", "HC", "SC", "MQ", "BA", "QS",
}

// Code returns the series' two-letter wire code.
func (s DataSeries) Code() string {
	if s >= DataSeriesCount {
		return fmt.Sprintf("??(%d)", uint8(s))
	}
	return seriesCodes[s]
}

// String returns the series' two-letter wire code.
func (s DataSeries) String() string {
	return s.Code()
}

// BlockContentID returns the external block content id owned by this
// series.
func (s DataSeries) BlockContentID() int32 {
	return int32(s) + 1
}
