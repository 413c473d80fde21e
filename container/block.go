// Copyright 2026 The Teleost Authors
// SPDX-License-Identifier: Apache-2.0

package container

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/teleost/cram/lib/itf8"
)

// EOF sentinel block constants (format § "end of file container").
var eofData = [6]byte{0x01, 0x00, 0x01, 0x00, 0x01, 0x00}

const eofCRC32 = 0x4b0163ee

// Block is a compression-tagged, checksummed segment of bytes within
// a container. A block is immutable after construction: the encode
// path builds one with [NewBlock], the decode path reads one with
// [ReadBlock], and neither mutates it afterward.
type Block struct {
	compressionMethod CompressionMethod
	contentType       ContentType
	contentID         int32
	uncompressedLen   int32
	data              []byte
	crc32             uint32
}

// NewBlock constructs a block. data must be exactly the bytes the
// named compression method operates on; uncompressedLen is the
// declared decompressed size, used as a buffer hint rather than a
// trusted bound. crc is the CRC-32 of the encoded block, zero when
// checksum computation is deferred to container assembly.
func NewBlock(method CompressionMethod, contentType ContentType, contentID, uncompressedLen int32, data []byte, crc uint32) Block {
	return Block{
		compressionMethod: method,
		contentType:       contentType,
		contentID:         contentID,
		uncompressedLen:   uncompressedLen,
		data:              data,
		crc32:             crc,
	}
}

// EOF returns the sentinel block written at the end of a container
// file. Its bytes and checksum are fixed by the format.
func EOF() Block {
	data := eofData
	return NewBlock(MethodNone, ContentCompressionHeader, 0, int32(len(data)), data[:], eofCRC32)
}

// CompressionMethod returns the codec the block's data is encoded
// with.
func (b Block) CompressionMethod() CompressionMethod {
	return b.compressionMethod
}

// ContentType returns what the block's decompressed bytes contain.
func (b Block) ContentType() ContentType {
	return b.contentType
}

// ContentID returns the block's stream identity within its container.
// Id 0 is reserved for a slice's core bitstream.
func (b Block) ContentID() int32 {
	return b.contentID
}

// UncompressedLen returns the declared decompressed size.
func (b Block) UncompressedLen() int32 {
	return b.uncompressedLen
}

// Data returns the block's stored (possibly compressed) bytes. The
// slice is shared, not copied; callers must not modify it.
func (b Block) Data() []byte {
	return b.data
}

// CRC32 returns the block's declared checksum.
func (b Block) CRC32() uint32 {
	return b.crc32
}

// DecompressedData decompresses the block's data with its declared
// compression method. Results are not cached: repeated calls
// re-decompress. Codec failures surface as a [CorruptBlockError]
// naming the method.
func (b Block) DecompressedData() ([]byte, error) {
	return b.compressionMethod.Decompress(b.data, int(b.uncompressedLen))
}

// EncodedLen returns the exact number of bytes [WriteBlock] emits for
// this block, so container-level bookkeeping never has to materialize
// bytes just to learn a length.
func (b Block) EncodedLen() int {
	return 1 + // compression method
		1 + // content type
		itf8.Size(b.contentID) +
		itf8.Size(int32(len(b.data))) +
		itf8.Size(b.uncompressedLen) +
		len(b.data) +
		4 // crc32
}

// WriteBlock serializes a block: method u8, content type u8, content
// id ITF8, data length ITF8, uncompressed length ITF8, data bytes,
// crc32 little-endian u32.
func WriteBlock(w io.Writer, b Block) error {
	header := make([]byte, 0, 2+3*itf8.MaxLen)
	header = append(header, byte(b.compressionMethod), byte(b.contentType))
	header = itf8.Append(header, b.contentID)
	header = itf8.Append(header, int32(len(b.data)))
	header = itf8.Append(header, b.uncompressedLen)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing block header: %w", err)
	}
	if _, err := w.Write(b.data); err != nil {
		return fmt.Errorf("writing block data: %w", err)
	}

	var trailer [4]byte
	binary.LittleEndian.PutUint32(trailer[:], b.crc32)
	if _, err := w.Write(trailer[:]); err != nil {
		return fmt.Errorf("writing block crc32: %w", err)
	}
	return nil
}

// ReadBlock deserializes one block from r, validating the method and
// content type tags against the known wire values.
func ReadBlock(r io.Reader) (Block, error) {
	var tags [2]byte
	if _, err := io.ReadFull(r, tags[:]); err != nil {
		return Block{}, fmt.Errorf("reading block tags: %w", err)
	}

	method := CompressionMethod(tags[0])
	if method > MethodRans {
		return Block{}, fmt.Errorf("block has unsupported compression method %d", tags[0])
	}
	contentType := ContentType(tags[1])
	if contentType > ContentCoreData {
		return Block{}, fmt.Errorf("block has unsupported content type %d", tags[1])
	}

	contentID, err := itf8.Read(r)
	if err != nil {
		return Block{}, fmt.Errorf("reading block content id: %w", err)
	}
	dataLen, err := itf8.Read(r)
	if err != nil {
		return Block{}, fmt.Errorf("reading block data length: %w", err)
	}
	if dataLen < 0 {
		return Block{}, fmt.Errorf("block has negative data length %d", dataLen)
	}
	uncompressedLen, err := itf8.Read(r)
	if err != nil {
		return Block{}, fmt.Errorf("reading block uncompressed length: %w", err)
	}

	data := make([]byte, dataLen)
	if _, err := io.ReadFull(r, data); err != nil {
		return Block{}, fmt.Errorf("reading block data (%d bytes): %w", dataLen, err)
	}

	var trailer [4]byte
	if _, err := io.ReadFull(r, trailer[:]); err != nil {
		return Block{}, fmt.Errorf("reading block crc32: %w", err)
	}

	return Block{
		compressionMethod: method,
		contentType:       contentType,
		contentID:         contentID,
		uncompressedLen:   uncompressedLen,
		data:              data,
		crc32:             binary.LittleEndian.Uint32(trailer[:]),
	}, nil
}
