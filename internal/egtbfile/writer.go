package egtbfile

import (
	"context"
	"fmt"
	"os"

	"github.com/kvhoang/felicity-egtb/internal/compress"
)

// WriteSpec describes one side's table to persist.
type WriteSpec struct {
	Name       string
	White      bool
	Cells      []byte // one packed stream of cellWidth()-byte cells, dtm-order == index order
	CellWidth  int     // 1 or 2
	DtmMax     int16
	Order      uint16
	Copyright  string
	Workers    int
}

// WriteFile compresses spec.Cells block-by-block and writes a complete
// table file (header + block table + payload) to path. The last block is
// padded with zero (Illegal) cells to the full block length, so every
// block decodes to BlockSize cells.
func WriteFile(path string, spec WriteSpec) error {
	blockLen := BlockSize * spec.CellWidth
	cells := spec.Cells
	if rem := len(cells) % blockLen; rem != 0 {
		cells = append(cells[:len(cells):len(cells)], make([]byte, blockLen-rem)...)
	}
	blocks, err := compress.CompressAll(context.Background(), cells, blockLen, max(1, spec.Workers))
	if err != nil {
		return fmt.Errorf("egtbfile: compress %s: %w", spec.Name, err)
	}

	lengths := make([]int64, len(blocks))
	raws := make([]bool, len(blocks))
	for i, b := range blocks {
		lengths[i] = int64(len(b.Data))
		raws[i] = b.Raw
	}
	wide := false
	var total int64
	for _, l := range lengths {
		total += l
	}
	if total > (1<<31)-1 {
		wide = true
	}
	bt := NewBlockTable(0, lengths, raws, wide)

	prop := PropCompressed | PropNew
	if spec.CellWidth == 2 {
		prop |= Prop2Bytes
	}
	if spec.White {
		prop |= PropSideWhite
	} else {
		prop |= PropSideBlack
	}
	if wide {
		if spec.White {
			prop |= PropLargeCompressTableW
		} else {
			prop |= PropLargeCompressTableB
		}
	}

	h := Header{
		Signature:  Signature,
		Property:   prop,
		DtmMax:     spec.DtmMax,
		Order:      spec.Order,
		Name:       spec.Name,
		Copyright:  spec.Copyright,
		BlockCount: uint32(len(blocks)),
	}
	headerBuf, err := h.Encode()
	if err != nil {
		return fmt.Errorf("egtbfile: %s: %w", spec.Name, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("egtbfile: create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(headerBuf); err != nil {
		return fmt.Errorf("egtbfile: write header %s: %w", path, err)
	}
	if _, err := f.Write(bt.Encode()); err != nil {
		return fmt.Errorf("egtbfile: write block table %s: %w", path, err)
	}
	for _, b := range blocks {
		if _, err := f.Write(b.Data); err != nil {
			return fmt.Errorf("egtbfile: write payload %s: %w", path, err)
		}
	}
	return nil
}
