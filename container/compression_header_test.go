// Copyright 2026 The Teleost Authors
// SPDX-License-Identifier: Apache-2.0

package container

import "testing"

func TestDataSeriesCodes(t *testing.T) {
	if DataSeriesCount != 28 {
		t.Fatalf("DataSeriesCount = %d, want 28", DataSeriesCount)
	}

	seen := make(map[string]DataSeries)
	for s := DataSeries(0); s < DataSeriesCount; s++ {
		code := s.Code()
		if len(code) != 2 {
			t.Errorf("series %d code %q is not two letters", s, code)
		}
		if prev, dup := seen[code]; dup {
			t.Errorf("series %d and %d share code %q", prev, s, code)
		}
		seen[code] = s

		if got := s.BlockContentID(); got != int32(s)+1 {
			t.Errorf("series %s content id = %d, want %d", s, got, int32(s)+1)
		}
	}

	if SeriesBAMFlags.Code() != "BF" || SeriesQualityScores.Code() != "QS" {
		t.Error("series enumeration order does not match wire codes")
	}
}

func TestNewCompressionHeader(t *testing.T) {
	header, err := NewCompressionHeader(
		[]DataSeries{SeriesBAMFlags, SeriesRecordFlags},
		[]int32{100, 200, 300},
	)
	if err != nil {
		t.Fatal(err)
	}

	if !header.IsCoreSeries(SeriesBAMFlags) || !header.IsCoreSeries(SeriesRecordFlags) {
		t.Error("core series routing lost")
	}
	if header.IsCoreSeries(SeriesReadLength) {
		t.Error("SeriesReadLength reported as core")
	}

	ids := header.TagIDs()
	if len(ids) != 3 || ids[0] != 100 || ids[1] != 200 || ids[2] != 300 {
		t.Errorf("TagIDs() = %v, want [100 200 300]", ids)
	}
	if !header.HasTag(200) || header.HasTag(99) {
		t.Error("HasTag mismatch")
	}

	// Mutating the returned slice must not affect the header.
	ids[0] = 1234
	if header.TagIDs()[0] != 100 {
		t.Error("TagIDs() exposes internal state")
	}
}

func TestNewCompressionHeaderRejectsBadIDs(t *testing.T) {
	tests := []struct {
		name   string
		tagIDs []int32
	}{
		{"reserved core id", []int32{0}},
		{"series-owned id", []int32{5}},
		{"negative id", []int32{-4}},
		{"duplicate", []int32{100, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCompressionHeader(nil, tt.tagIDs); err == nil {
				t.Errorf("NewCompressionHeader(nil, %v) succeeded", tt.tagIDs)
			}
		})
	}
}

func TestNewCompressionHeaderRejectsUnknownSeries(t *testing.T) {
	if _, err := NewCompressionHeader([]DataSeries{DataSeriesCount}, nil); err == nil {
		t.Error("NewCompressionHeader accepted an out-of-range series")
	}
}
