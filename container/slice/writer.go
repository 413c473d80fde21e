// Copyright 2026 The Teleost Authors
// SPDX-License-Identifier: Apache-2.0

package slice

import (
	"bytes"
	"fmt"

	"github.com/teleost/cram/container"
	"github.com/teleost/cram/lib/bitio"
	"github.com/teleost/cram/lib/itf8"
	"github.com/teleost/cram/record"
)

// sink accumulates one external stream's bytes.
type sink struct {
	id     int32
	buffer bytes.Buffer
}

// recordWriter routes record fields into the core bitstream and the
// external sinks. Sinks are created up front for every potential
// stream — the fixed data series enumeration in ordinal order, then
// the compression header's tag streams in declared order — so the
// finalization order, and with it the block manifest, is
// deterministic.
type recordWriter struct {
	header *container.CompressionHeader
	core   *bitio.Writer
	sinks  []*sink
	byID   map[int32]*sink
}

func newRecordWriter(header *container.CompressionHeader, core *bitio.Writer) *recordWriter {
	w := &recordWriter{
		header: header,
		core:   core,
		byID:   make(map[int32]*sink, int(container.DataSeriesCount)),
	}
	for series := container.DataSeries(0); series < container.DataSeriesCount; series++ {
		w.addSink(series.BlockContentID())
	}
	for _, id := range header.TagIDs() {
		w.addSink(id)
	}
	return w
}

func (w *recordWriter) addSink(id int32) {
	s := &sink{id: id}
	w.sinks = append(w.sinks, s)
	w.byID[id] = s
}

// writeRecord writes one record's fields to their mapped streams.
// Field order is fixed; it is part of the encoding and must match the
// decode side exactly.
func (w *recordWriter) writeRecord(r *record.Record) error {
	if err := w.writeInt(container.SeriesBAMFlags, int32(r.BAMFlags)); err != nil {
		return err
	}
	if err := w.writeInt(container.SeriesRecordFlags, int32(r.Flags)); err != nil {
		return err
	}
	if err := w.writeInt(container.SeriesReferenceID, int32(r.ReferenceSequenceID)); err != nil {
		return err
	}
	if err := w.writeInt(container.SeriesReadLength, r.ReadLength); err != nil {
		return err
	}
	if err := w.writeInt(container.SeriesAlignmentStart, r.AlignmentStart); err != nil {
		return err
	}
	if err := w.writeInt(container.SeriesReadGroup, r.ReadGroup); err != nil {
		return err
	}
	if err := w.writeBytes(container.SeriesReadName, r.ReadName); err != nil {
		return err
	}
	if err := w.writeInt(container.SeriesMateFlags, int32(r.MateFlags)); err != nil {
		return err
	}
	if err := w.writeInt(container.SeriesMateReferenceID, int32(r.MateReferenceSequenceID)); err != nil {
		return err
	}
	if err := w.writeInt(container.SeriesMateAlignmentStart, r.MateAlignmentStart); err != nil {
		return err
	}
	if err := w.writeInt(container.SeriesTemplateSize, r.TemplateSize); err != nil {
		return err
	}
	if err := w.writeInt(container.SeriesTagLine, int32(len(r.Tags))); err != nil {
		return err
	}
	if err := w.writeInt(container.SeriesMappingQuality, int32(r.MappingQuality)); err != nil {
		return err
	}
	if err := w.writeBytes(container.SeriesBases, r.Bases); err != nil {
		return err
	}
	if err := w.writeBytes(container.SeriesQualityScores, r.QualityScores); err != nil {
		return err
	}

	for _, tag := range r.Tags {
		s, ok := w.byID[tag.ID]
		if !ok {
			return fmt.Errorf("tag stream %d not declared by compression header", tag.ID)
		}
		var scratch [itf8.MaxLen]byte
		s.buffer.Write(itf8.Append(scratch[:0], int32(len(tag.Value))))
		s.buffer.Write(tag.Value)
	}
	return nil
}

// writeInt writes an ITF8-coded integer to the series' mapped stream.
func (w *recordWriter) writeInt(series container.DataSeries, value int32) error {
	var scratch [itf8.MaxLen]byte
	return w.route(series, itf8.Append(scratch[:0], value))
}

// writeBytes writes a length-prefixed byte run to the series' mapped
// stream.
func (w *recordWriter) writeBytes(series container.DataSeries, value []byte) error {
	encoded := itf8.Append(make([]byte, 0, itf8.MaxLen+len(value)), int32(len(value)))
	encoded = append(encoded, value...)
	return w.route(series, encoded)
}

// route sends already-encoded bytes to the core bitstream or the
// series' external sink, per the compression header.
func (w *recordWriter) route(series container.DataSeries, encoded []byte) error {
	if w.header.IsCoreSeries(series) {
		for _, b := range encoded {
			if err := w.core.WriteBits(uint32(b), 8); err != nil {
				return fmt.Errorf("writing %s to core stream: %w", series, err)
			}
		}
		return nil
	}
	w.byID[series.BlockContentID()].buffer.Write(encoded)
	return nil
}
