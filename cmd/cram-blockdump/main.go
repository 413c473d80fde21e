// Copyright 2026 The Teleost Authors
// SPDX-License-Identifier: Apache-2.0

// cram-blockdump walks a file containing a stream of serialized
// container blocks, printing per-block metadata (compression method,
// content type, content id, sizes, checksum) and totals. With
// --extract it writes one block's payload to stdout, decompressed
// unless --raw is given. File-level container framing (magic bytes,
// container headers) is not parsed; the input must start at a block
// boundary.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/teleost/cram/container"
	"github.com/teleost/cram/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var extract int
	var raw bool
	var verbose bool

	flagSet := pflag.NewFlagSet("cram-blockdump", pflag.ContinueOnError)
	flagSet.IntVar(&extract, "extract", -1, "write block N (0-based) to stdout instead of listing")
	flagSet.BoolVar(&raw, "raw", false, "with --extract: emit stored bytes without decompressing")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log each block as it is read")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("cram-blockdump")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	args := flagSet.Args()
	if len(args) != 1 {
		printHelp(flagSet)
		return fmt.Errorf("expected exactly one input file, got %d arguments", len(args))
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	file, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer file.Close()

	blocks, err := readBlocks(file, logger)
	if err != nil {
		return err
	}

	if extract >= 0 {
		return extractBlock(os.Stdout, blocks, extract, raw)
	}
	listBlocks(os.Stdout, blocks)
	return nil
}

// readBlocks reads serialized blocks until EOF. A clean EOF at a
// block boundary ends the stream; truncation mid-block surfaces as
// io.ErrUnexpectedEOF and is an error.
func readBlocks(r io.Reader, logger *slog.Logger) ([]container.Block, error) {
	var blocks []container.Block
	for {
		block, err := container.ReadBlock(r)
		if err != nil {
			if errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return nil, fmt.Errorf("reading block %d: %w", len(blocks), err)
		}
		logger.Debug("read block",
			"index", len(blocks),
			"method", block.CompressionMethod().String(),
			"type", block.ContentType().String(),
			"id", block.ContentID(),
			"size", block.EncodedLen())
		blocks = append(blocks, block)
	}
	return blocks, nil
}

func listBlocks(w io.Writer, blocks []container.Block) {
	fmt.Fprintf(w, "%5s  %-7s  %-19s  %10s  %10s  %12s  %10s\n",
		"index", "method", "type", "id", "data", "uncompressed", "crc32")

	var totalEncoded, totalData int
	for i, block := range blocks {
		fmt.Fprintf(w, "%5d  %-7s  %-19s  %10d  %10d  %12d  %10s\n",
			i,
			block.CompressionMethod(),
			block.ContentType(),
			block.ContentID(),
			len(block.Data()),
			block.UncompressedLen(),
			fmt.Sprintf("%08x", block.CRC32()))
		totalEncoded += block.EncodedLen()
		totalData += len(block.Data())
	}
	fmt.Fprintf(w, "\n%d blocks, %d data bytes, %d encoded bytes\n",
		len(blocks), totalData, totalEncoded)
}

func extractBlock(w io.Writer, blocks []container.Block, index int, raw bool) error {
	if index >= len(blocks) {
		return fmt.Errorf("block index %d out of range: stream has %d blocks", index, len(blocks))
	}
	block := blocks[index]

	payload := block.Data()
	if !raw {
		decompressed, err := block.DecompressedData()
		if err != nil {
			return fmt.Errorf("decompressing block %d: %w", index, err)
		}
		payload = decompressed
	}

	_, err := w.Write(payload)
	return err
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `cram-blockdump — inspect a stream of serialized container blocks.

Usage:
  cram-blockdump [flags] <file>

The file must contain back-to-back serialized blocks (no container
framing). Without flags, prints one line of metadata per block and a
trailing total.

Flags:
%s`, flagSet.FlagUsages())
}
