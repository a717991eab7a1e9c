package ndbc

import (
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Compression extensions recognized on input paths.
const (
	// extGZ is the gzip compression extension
	extGZ = ".gz"
	// extBZ2 is the bzip2 compression extension
	extBZ2 = ".bz2"
	// extXZ is the xz compression extension
	extXZ = ".xz"
	// extZSTD is the zstd compression extension
	extZSTD = ".zst"
)

// compressionType identifies the compression wrapping an input file.
type compressionType int

const (
	compressionNone compressionType = iota
	compressionGZ
	compressionBZ2
	compressionXZ
	compressionZSTD
)

// detectCompressionType detects the compression type from a file path.
func detectCompressionType(path string) compressionType {
	path = strings.ToLower(path)

	switch {
	case strings.HasSuffix(path, extGZ):
		return compressionGZ
	case strings.HasSuffix(path, extBZ2):
		return compressionBZ2
	case strings.HasSuffix(path, extXZ):
		return compressionXZ
	case strings.HasSuffix(path, extZSTD):
		return compressionZSTD
	default:
		return compressionNone
	}
}

// newDecompressingReader wraps reader with a decompression reader when the
// path carries a compression extension. The returned cleanup releases the
// decompressor only; closing the underlying reader stays with the caller.
func newDecompressingReader(reader io.Reader, path string) (io.Reader, func() error, error) {
	switch detectCompressionType(path) {
	case compressionNone:
		return reader, func() error { return nil }, nil

	case compressionGZ:
		gzReader, err := gzip.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("ndbc: failed to create gzip reader: %w", err)
		}
		return gzReader, gzReader.Close, nil

	case compressionBZ2:
		// bzip2.NewReader doesn't need closing
		return bzip2.NewReader(reader), func() error { return nil }, nil

	case compressionXZ:
		xzReader, err := xz.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("ndbc: failed to create xz reader: %w", err)
		}
		// xz.Reader doesn't have a Close method
		return xzReader, func() error { return nil }, nil

	case compressionZSTD:
		decoder, err := zstd.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("ndbc: failed to create zstd reader: %w", err)
		}
		return decoder, func() error {
			decoder.Close()
			return nil
		}, nil

	default:
		return nil, nil, fmt.Errorf("%w: unsupported compression for %s", ErrFormat, path)
	}
}

// openFile opens path and returns a reader that handles decompression. The
// composite cleanup releases the decompressor and the file handle in order,
// and must run regardless of parse outcome.
func openFile(path string) (io.Reader, func() error, error) {
	file, err := os.Open(path) //nolint:gosec // User-provided path is necessary for file operations
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, nil, fmt.Errorf("ndbc: failed to open file: %w", err)
	}

	reader, cleanup, err := newDecompressingReader(file, path)
	if err != nil {
		_ = file.Close()
		return nil, nil, err
	}

	compositeCleanup := func() error {
		cleanupErr := cleanup()
		if closeErr := file.Close(); closeErr != nil && cleanupErr == nil {
			cleanupErr = closeErr
		}
		return cleanupErr
	}
	return reader, compositeCleanup, nil
}
