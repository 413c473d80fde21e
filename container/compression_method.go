// Copyright 2026 The Teleost Authors
// SPDX-License-Identifier: Apache-2.0

package container

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
	"github.com/ulikunitz/xz"

	"github.com/teleost/cram/lib/rans"
)

// CompressionMethod identifies the codec applied to a block's data.
// These values are protocol constants — changing them breaks
// container format compatibility.
type CompressionMethod uint8

const (
	// MethodNone indicates uncompressed data.
	MethodNone CompressionMethod = 0

	// MethodGzip indicates a gzip stream.
	MethodGzip CompressionMethod = 1

	// MethodBzip2 indicates a bzip2 stream.
	MethodBzip2 CompressionMethod = 2

	// MethodLzma indicates LZMA compression carried in an xz stream.
	MethodLzma CompressionMethod = 3

	// MethodRans indicates the format's rANS 4x8 entropy codec.
	MethodRans CompressionMethod = 4
)

// String returns the human-readable name of a compression method.
func (m CompressionMethod) String() string {
	switch m {
	case MethodNone:
		return "none"
	case MethodGzip:
		return "gzip"
	case MethodBzip2:
		return "bzip2"
	case MethodLzma:
		return "lzma"
	case MethodRans:
		return "rans"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(m))
	}
}

// ParseCompressionMethod parses a compression method from its string
// representation.
func ParseCompressionMethod(name string) (CompressionMethod, error) {
	switch name {
	case "none":
		return MethodNone, nil
	case "gzip":
		return MethodGzip, nil
	case "bzip2":
		return MethodBzip2, nil
	case "lzma":
		return MethodLzma, nil
	case "rans":
		return MethodRans, nil
	default:
		return 0, fmt.Errorf("unknown compression method: %q", name)
	}
}

// CorruptBlockError reports that block data could not be decompressed
// with its declared compression method. Callers can use errors.As to
// learn which codec failed:
//
//	var corrupt *container.CorruptBlockError
//	if errors.As(err, &corrupt) {
//	    log.Printf("bad %s block", corrupt.Method)
//	}
type CorruptBlockError struct {
	// Method is the compression method the block declared.
	Method CompressionMethod

	// Err is the underlying codec error.
	Err error
}

func (e *CorruptBlockError) Error() string {
	return fmt.Sprintf("corrupt block data (%s): %v", e.Method, e.Err)
}

func (e *CorruptBlockError) Unwrap() error {
	return e.Err
}

// Decompress decompresses data that was compressed with method m. The
// sizeHint sizes the initial output buffer only; decompression reads
// until the compressed stream signals its own end, so the hint is
// never a correctness bound. For MethodNone the input is returned
// unchanged (no copy).
func (m CompressionMethod) Decompress(data []byte, sizeHint int) ([]byte, error) {
	if sizeHint < 0 {
		sizeHint = 0
	}

	switch m {
	case MethodNone:
		return data, nil

	case MethodGzip:
		reader, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, &CorruptBlockError{Method: m, Err: err}
		}
		defer reader.Close()
		return readAll(m, reader, sizeHint)

	case MethodBzip2:
		reader, err := bzip2.NewReader(bytes.NewReader(data), new(bzip2.ReaderConfig))
		if err != nil {
			return nil, &CorruptBlockError{Method: m, Err: err}
		}
		defer reader.Close()
		return readAll(m, reader, sizeHint)

	case MethodLzma:
		reader, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, &CorruptBlockError{Method: m, Err: err}
		}
		return readAll(m, reader, sizeHint)

	case MethodRans:
		decoded, err := rans.Decode(data)
		if err != nil {
			return nil, &CorruptBlockError{Method: m, Err: err}
		}
		return decoded, nil

	default:
		return nil, &CorruptBlockError{Method: m, Err: fmt.Errorf("unsupported compression method")}
	}
}

// Compress compresses data with method m. It is the inverse of
// [CompressionMethod.Decompress] for every method. For MethodNone the
// input is returned unchanged (no copy); MethodRans uses the order-0
// model (order-1 is available through the rans package directly).
func (m CompressionMethod) Compress(data []byte) ([]byte, error) {
	switch m {
	case MethodNone:
		return data, nil

	case MethodGzip:
		var buffer bytes.Buffer
		writer := gzip.NewWriter(&buffer)
		return finishStream(m, &buffer, writer, data)

	case MethodBzip2:
		var buffer bytes.Buffer
		writer, err := bzip2.NewWriter(&buffer, &bzip2.WriterConfig{Level: bzip2.DefaultCompression})
		if err != nil {
			return nil, fmt.Errorf("bzip2 compress: %w", err)
		}
		return finishStream(m, &buffer, writer, data)

	case MethodLzma:
		var buffer bytes.Buffer
		writer, err := xz.NewWriter(&buffer)
		if err != nil {
			return nil, fmt.Errorf("lzma compress: %w", err)
		}
		return finishStream(m, &buffer, writer, data)

	case MethodRans:
		encoded, err := rans.Encode(rans.Order0, data)
		if err != nil {
			return nil, fmt.Errorf("rans compress: %w", err)
		}
		return encoded, nil

	default:
		return nil, fmt.Errorf("unsupported compression method: %d", uint8(m))
	}
}

// readAll drains a decompression stream into a buffer pre-sized by
// the caller's hint, wrapping any failure as a CorruptBlockError.
func readAll(m CompressionMethod, r io.Reader, sizeHint int) ([]byte, error) {
	buffer := bytes.NewBuffer(make([]byte, 0, sizeHint))
	if _, err := io.Copy(buffer, r); err != nil {
		return nil, &CorruptBlockError{Method: m, Err: err}
	}
	return buffer.Bytes(), nil
}

// finishStream writes data through a streaming compressor and closes
// it, returning the buffered output.
func finishStream(m CompressionMethod, buffer *bytes.Buffer, writer io.WriteCloser, data []byte) ([]byte, error) {
	if _, err := writer.Write(data); err != nil {
		return nil, fmt.Errorf("%s compress: %w", m, err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("%s compress: %w", m, err)
	}
	return buffer.Bytes(), nil
}
