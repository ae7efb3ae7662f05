// Package carrier implements the fake-PNG carrier transform: prepend the
// fixed header blob on embed, skip it by offset on extract. The skipped
// bytes are never compared against the blob; extraction trusts that the
// input is at least header-sized and hands back whatever follows.
package carrier

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/DavidOnSoftware/pnger/pkg/header"
)

// DefaultChunkSize is the buffer size used for streaming copies when the
// caller does not pick one.
const DefaultChunkSize = 4096

// ErrTooSmall is returned by Extract and Unwrap when the input is shorter
// than the carrier header, so there is nothing to skip past.
var ErrTooSmall = errors.New("input smaller than carrier header")

// Embed writes the header blob to outputPath followed by every byte of
// inputPath. The copy is streamed in chunkSize buffers (<= 0 selects
// DefaultChunkSize), so arbitrarily large files embed in bounded memory.
// On failure a partially written output file may remain; it is not
// cleaned up.
func Embed(fsys afero.Fs, inputPath, outputPath string, chunkSize int) error {
	in, err := fsys.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file %s: %w", inputPath, err)
	}
	defer in.Close()

	out, err := fsys.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", outputPath, err)
	}

	if _, err := Wrap(out, in, chunkSize); err != nil {
		out.Close()
		return fmt.Errorf("failed to embed %s into %s: %w", inputPath, outputPath, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close output file %s: %w", outputPath, err)
	}
	return nil
}

// Extract recovers the payload hidden in inputPath by skipping the header
// blob and copying the remainder to outputPath. If the input is shorter
// than the header it fails with ErrTooSmall before creating any output.
func Extract(fsys afero.Fs, inputPath, outputPath string, chunkSize int) error {
	in, err := fsys.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file %s: %w", inputPath, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat input file %s: %w", inputPath, err)
	}
	if info.Size() < int64(header.Size) {
		return fmt.Errorf("input file %s is %d bytes, shorter than the %d byte carrier header: %w",
			inputPath, info.Size(), header.Size, ErrTooSmall)
	}

	out, err := fsys.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", outputPath, err)
	}

	if _, err := Unwrap(out, in, info.Size(), chunkSize); err != nil {
		out.Close()
		return fmt.Errorf("failed to extract %s into %s: %w", inputPath, outputPath, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close output file %s: %w", outputPath, err)
	}
	return nil
}

// Wrap writes the header blob to dst, then copies all of src after it.
// It returns the number of payload bytes copied, excluding the header.
func Wrap(dst io.Writer, src io.Reader, chunkSize int) (int64, error) {
	if _, err := dst.Write(header.Blob); err != nil {
		return 0, fmt.Errorf("failed to write carrier header: %w", err)
	}
	return copyChunks(dst, src, chunkSize)
}

// Unwrap seeks src past the header blob and copies the remainder to dst.
// size is the total length of src; anything below header.Size fails with
// ErrTooSmall. It returns the number of payload bytes copied.
func Unwrap(dst io.Writer, src io.ReadSeeker, size int64, chunkSize int) (int64, error) {
	if size < int64(header.Size) {
		return 0, fmt.Errorf("carrier is %d bytes, need at least %d: %w", size, header.Size, ErrTooSmall)
	}
	if _, err := src.Seek(int64(header.Size), io.SeekStart); err != nil {
		return 0, fmt.Errorf("failed to seek past carrier header: %w", err)
	}
	return copyChunks(dst, src, chunkSize)
}

// copyChunks streams src to dst in chunkSize reads until EOF. A
// zero-length source copies zero chunks and is not an error.
func copyChunks(dst io.Writer, src io.Reader, chunkSize int) (int64, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	buf := make([]byte, chunkSize)
	var copied int64
	for {
		n, err := src.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return copied, fmt.Errorf("write failed after %d bytes: %w", copied, werr)
			}
			copied += int64(n)
		}
		if err == io.EOF {
			return copied, nil
		}
		if err != nil {
			return copied, fmt.Errorf("read failed after %d bytes: %w", copied, err)
		}
	}
}
