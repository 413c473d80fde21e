// Copyright 2026 The Teleost Authors
// SPDX-License-Identifier: Apache-2.0

package record

import "testing"

func TestReferenceSequenceID(t *testing.T) {
	tests := []struct {
		id       ReferenceSequenceID
		specific bool
		str      string
	}{
		{0, true, "0"},
		{3, true, "3"},
		{Unmapped, false, "unmapped"},
		{MultiReference, false, "multi-reference"},
	}

	for _, tt := range tests {
		if got := tt.id.IsSpecific(); got != tt.specific {
			t.Errorf("ReferenceSequenceID(%d).IsSpecific() = %v, want %v", tt.id, got, tt.specific)
		}
		if got := tt.id.String(); got != tt.str {
			t.Errorf("ReferenceSequenceID(%d).String() = %q, want %q", tt.id, got, tt.str)
		}
	}

	// The two sentinel states are distinct identities.
	if Unmapped == MultiReference {
		t.Error("Unmapped and MultiReference compare equal")
	}
}

func TestAlignmentEnd(t *testing.T) {
	r := Record{AlignmentStart: 100, ReadLength: 51}
	if got := r.AlignmentEnd(); got != 150 {
		t.Errorf("AlignmentEnd() = %d, want 150", got)
	}

	single := Record{AlignmentStart: 7, ReadLength: 1}
	if got := single.AlignmentEnd(); got != 7 {
		t.Errorf("AlignmentEnd() for length-1 read = %d, want 7", got)
	}
}

func TestTagID(t *testing.T) {
	id, err := TagID("NM", 'i')
	if err != nil {
		t.Fatal(err)
	}
	want := int32('N')<<16 | int32('M')<<8 | int32('i')
	if id != want {
		t.Errorf("TagID(NM, i) = %d, want %d", id, want)
	}

	if _, err := TagID("TOOLONG", 'Z'); err == nil {
		t.Error("TagID accepted a name longer than two characters")
	}
}
