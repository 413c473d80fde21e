// Copyright 2026 The Teleost Authors
// SPDX-License-Identifier: Apache-2.0

package container

import "fmt"

// CompressionHeader carries the encoding scheme a slice is built
// against: which data series are routed to the core bitstream instead
// of their own external streams, and which tag streams exist. The
// header fixes the universe of streams up front, so slice
// construction can pre-allocate a sink per stream before any record
// is routed (streams that stay empty are dropped at finalization).
//
// Construction of the full encoding dictionary (per-series inner
// encodings) belongs to a higher layer; this value is the routing
// subset that slice building consumes.
type CompressionHeader struct {
	coreSeries [DataSeriesCount]bool
	tagIDs     []int32
	tagSet     map[int32]bool
}

// NewCompressionHeader builds a header routing coreSeries to the core
// bitstream and declaring tagIDs as external tag streams, in the
// given order. Tag ids must be positive, must not collide with the
// content ids owned by the data series, and must not repeat.
func NewCompressionHeader(coreSeries []DataSeries, tagIDs []int32) (*CompressionHeader, error) {
	header := &CompressionHeader{
		tagSet: make(map[int32]bool, len(tagIDs)),
	}

	for _, series := range coreSeries {
		if series >= DataSeriesCount {
			return nil, fmt.Errorf("unknown data series %d", uint8(series))
		}
		header.coreSeries[series] = true
	}

	maxSeriesID := DataSeries(DataSeriesCount - 1).BlockContentID()
	for _, id := range tagIDs {
		if id <= maxSeriesID {
			return nil, fmt.Errorf("tag stream id %d collides with reserved content ids 0..%d", id, maxSeriesID)
		}
		if header.tagSet[id] {
			return nil, fmt.Errorf("tag stream id %d declared twice", id)
		}
		header.tagSet[id] = true
		header.tagIDs = append(header.tagIDs, id)
	}

	return header, nil
}

// IsCoreSeries reports whether series is routed to the core
// bitstream.
func (h *CompressionHeader) IsCoreSeries(series DataSeries) bool {
	return series < DataSeriesCount && h.coreSeries[series]
}

// TagIDs returns the declared tag stream ids in declaration order.
// The slice is a copy.
func (h *CompressionHeader) TagIDs() []int32 {
	ids := make([]int32, len(h.tagIDs))
	copy(ids, h.tagIDs)
	return ids
}

// HasTag reports whether id is a declared tag stream.
func (h *CompressionHeader) HasTag(id int32) bool {
	return h.tagSet[id]
}
