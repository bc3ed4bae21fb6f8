// Package compress implements the LZMA block codec and parallel block
// (de)compression used by the table file format.
package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ulikunitz/xz/lzma"
)

// RawSavingsThreshold is the minimum number of bytes a compressed block
// must save over its raw form before the table writer keeps the
// compressed copy; otherwise the block is stored raw.
const RawSavingsThreshold = 16

// CompressBlock LZMA-compresses data. If the result would not save at
// least RawSavingsThreshold bytes, it returns (nil, false, nil) so the
// caller stores the block raw instead.
func CompressBlock(data []byte) (compressed []byte, used bool, err error) {
	var buf bytes.Buffer
	w, err := lzma.NewWriter(&buf)
	if err != nil {
		return nil, false, fmt.Errorf("compress: create writer: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, false, fmt.Errorf("compress: write: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, false, fmt.Errorf("compress: close: %w", err)
	}
	if len(data)-buf.Len() < RawSavingsThreshold {
		return nil, false, nil
	}
	return buf.Bytes(), true, nil
}

// DecompressBlock inverts CompressBlock, decoding exactly wantLen bytes.
func DecompressBlock(data []byte, wantLen int) ([]byte, error) {
	r, err := lzma.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("compress: create reader: %w", err)
	}
	out := make([]byte, wantLen)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, fmt.Errorf("compress: read: %w", err)
	}
	return out, nil
}
