// Copyright 2026 The Teleost Authors
// SPDX-License-Identifier: Apache-2.0

package container

import "fmt"

// ContentType describes what a block's decompressed bytes contain. It
// is routing metadata only: decompression never consults it. These
// values are protocol constants — changing them breaks container
// format compatibility.
type ContentType uint8

const (
	// ContentFileHeader marks the block holding the file-level header
	// text.
	ContentFileHeader ContentType = 0

	// ContentCompressionHeader marks a container's compression header
	// block. The EOF sentinel block also carries this type.
	ContentCompressionHeader ContentType = 1

	// ContentSliceHeader marks a slice header block.
	ContentSliceHeader ContentType = 2

	// ContentReserved is unused by the format but remains a valid
	// wire value.
	ContentReserved ContentType = 3

	// ContentExternalData marks an external data stream block, keyed
	// by field or tag identity.
	ContentExternalData ContentType = 4

	// ContentCoreData marks a slice's single core bitstream block.
	ContentCoreData ContentType = 5
)

// String returns the human-readable name of a content type.
func (t ContentType) String() string {
	switch t {
	case ContentFileHeader:
		return "file header"
	case ContentCompressionHeader:
		return "compression header"
	case ContentSliceHeader:
		return "slice header"
	case ContentReserved:
		return "reserved"
	case ContentExternalData:
		return "external data"
	case ContentCoreData:
		return "core data"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}
