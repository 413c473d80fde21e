// Copyright 2026 The Teleost Authors
// SPDX-License-Identifier: Apache-2.0

// Package container implements the block layer of the alignment
// container format: compression-tagged, checksummed byte segments and
// the metadata that routes record fields into them.
//
// A [Block] is an immutable segment of (possibly compressed) bytes
// tagged with a [CompressionMethod], a [ContentType], and a content
// id that identifies its stream within a container. Blocks serialize
// to a fixed wire layout via [WriteBlock] and [ReadBlock]; a block
// reports its exact serialized size through [Block.EncodedLen]
// without materializing bytes. [Block.DecompressedData] dispatches on
// the block's compression method, supporting gzip, bzip2, LZMA (xz
// stream), and the format's rANS entropy codec.
//
// [DataSeries] enumerates the fixed set of structural record fields;
// each series owns the external block content id adjacent to its
// ordinal, with id 0 reserved for the core bitstream. A
// [CompressionHeader] declares which series are routed to the core
// stream and which tag streams exist; slice construction (package
// container/slice) consults it to pre-allocate one byte sink per
// potential stream.
//
// The EOF sentinel block terminating a container file is available
// from [EOF]; file-level framing around it belongs to a higher layer.
package container
