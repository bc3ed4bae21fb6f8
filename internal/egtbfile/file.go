package egtbfile

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/edsrzf/mmap-go"

	"github.com/kvhoang/felicity-egtb/internal/compress"
	"github.com/kvhoang/felicity-egtb/internal/score"
)

// MemMode selects how a File keeps its payload resident once loaded.
type MemMode int

const (
	MemAll MemMode = iota
	MemTiny
	MemSmart
)

// smartThreshold is the payload size (per side) below which MemSmart
// behaves like MemAll and above which it behaves like MemTiny.
const smartThreshold = 10 * 1024 * 1024

// LoadStatus reports a side's lazy-load outcome.
type LoadStatus int

const (
	StatusNone LoadStatus = iota
	StatusLoaded
	StatusError
)

// LoadMode controls when Preload actually touches the disk for a file.
type LoadMode int

const (
	LoadOnRequest LoadMode = iota // lazy: first score query triggers ensureLoaded
	LoadNow                       // eager: Preload itself triggers the load
)

// sideData holds everything one side (White or Black to move) of a merged
// table needs once loaded: its compression block table plus however the
// chosen MemMode keeps the payload accessible.
type sideData struct {
	mu      sync.Mutex
	path    string
	status  LoadStatus
	loadErr error

	header     Header
	blockTable *BlockTable

	all []byte // MemAll (or MemSmart-as-all): fully decompressed payload

	mm mmap.MMap // MemTiny (or MemSmart-as-tiny): whole file mapped; the payload follows header and block table
	f  *os.File

	cacheWhite  bool // this side's identity within shared BlockCache keys
	cachedBlock int
	cachedData  []byte
}

// File is one merged endgame table: a White-to-move side and a Black-to-move
// side, lazily loaded independently, each under its own mutex so concurrent
// probes of opposite sides never block one another.
type File struct {
	Name string
	Mode MemMode

	white, black *sideData
	cache        *BlockCache
}

// NewFile builds a File with as-yet-unloaded sides. whitePath/blackPath may
// be empty if that side's file does not exist yet.
func NewFile(name string, whitePath, blackPath string, mode MemMode, cache *BlockCache) *File {
	f := &File{Name: name, Mode: mode, cache: cache}
	if whitePath != "" {
		f.white = &sideData{path: whitePath, cacheWhite: true, cachedBlock: -1}
	}
	if blackPath != "" {
		f.black = &sideData{path: blackPath, cacheWhite: false, cachedBlock: -1}
	}
	return f
}

// Merge adopts other's loaded side(s) into f, for the case where the folder
// scan discovers the sibling half of a name after the first half was
// already constructed as its own File.
func (f *File) Merge(other *File) {
	if other.white != nil && f.white == nil {
		f.white = other.white
	}
	if other.black != nil && f.black == nil {
		f.black = other.black
	}
}

// HasSide reports whether this table has a file for the given side.
func (f *File) HasSide(white bool) bool {
	if white {
		return f.white != nil
	}
	return f.black != nil
}

func (f *File) sideFor(white bool) *sideData {
	if white {
		return f.white
	}
	return f.black
}

// Preload triggers loading according to mode: LoadNow loads both present
// sides immediately; LoadOnRequest is a no-op, deferring to the first
// GetScore call.
func (f *File) Preload(mode LoadMode) error {
	if mode != LoadNow {
		return nil
	}
	for _, white := range []bool{true, false} {
		sd := f.sideFor(white)
		if sd == nil {
			continue
		}
		if err := f.ensureLoaded(sd); err != nil {
			return err
		}
	}
	return nil
}

// ensureLoaded performs the one-time lazy load of a side under its own
// mutex, which serializes concurrent callers onto a single read of the
// header and block table.
func (f *File) ensureLoaded(sd *sideData) error {
	sd.mu.Lock()
	defer sd.mu.Unlock()
	if sd.status != StatusNone {
		return sd.loadErr
	}

	raw, err := os.ReadFile(sd.path)
	if err != nil {
		sd.status, sd.loadErr = StatusError, fmt.Errorf("egtbfile: read %s: %w", sd.path, err)
		return sd.loadErr
	}
	if len(raw) < HeaderSize {
		sd.status, sd.loadErr = StatusError, fmt.Errorf("egtbfile: %s shorter than header", sd.path)
		return sd.loadErr
	}
	h, err := Decode(raw[:HeaderSize])
	if err != nil {
		sd.status, sd.loadErr = StatusError, fmt.Errorf("egtbfile: %s: %w", sd.path, err)
		return sd.loadErr
	}
	sd.header = h

	off := HeaderSize
	if h.Property.Has(PropCompressed) {
		wide := h.Property.Has(PropLargeCompressTableW) || h.Property.Has(PropLargeCompressTableB)
		bt, err := DecodeBlockTable(raw[off:], 0, int(h.BlockCount), wide)
		if err != nil {
			sd.status, sd.loadErr = StatusError, fmt.Errorf("egtbfile: %s: %w", sd.path, err)
			return sd.loadErr
		}
		sd.blockTable = bt
		off += bt.EncodedSize()
	}

	useAll := f.Mode == MemAll
	if f.Mode == MemSmart {
		useAll = len(raw)-off < smartThreshold
	}

	switch {
	case !h.Property.Has(PropCompressed):
		sd.all = raw[off:]
	case useAll:
		total := int(h.BlockCount) * h.cellWidth() * BlockSize
		out, err := decompressWhole(raw[off:], sd.blockTable, h.cellWidth(), total)
		if err != nil {
			sd.status, sd.loadErr = StatusError, err
			return sd.loadErr
		}
		sd.all = out
	default:
		fh, err := os.Open(sd.path)
		if err != nil {
			sd.status, sd.loadErr = StatusError, fmt.Errorf("egtbfile: reopen %s: %w", sd.path, err)
			return sd.loadErr
		}
		m, err := mmap.Map(fh, mmap.RDONLY, 0)
		if err != nil {
			fh.Close()
			sd.status, sd.loadErr = StatusError, fmt.Errorf("egtbfile: mmap %s: %w", sd.path, err)
			return sd.loadErr
		}
		sd.f, sd.mm = fh, m
	}

	sd.status = StatusLoaded
	return nil
}

func decompressWhole(payload []byte, bt *BlockTable, cellWidth, total int) ([]byte, error) {
	blocks := make([]compress.Block, bt.BlockCount())
	for i := 0; i < bt.BlockCount(); i++ {
		off, length, raw, err := bt.OffsetAndLength(i)
		if err != nil {
			return nil, err
		}
		blocks[i] = compress.Block{Data: payload[off : off+length], Raw: raw}
	}
	return compress.DecompressAll(context.Background(), blocks, BlockSize*cellWidth, total, 1)
}

// GetScore reads the score cell at idx for the given side.
func (f *File) GetScore(idx int64, white bool) (score.Score, error) {
	sd := f.sideFor(white)
	if sd == nil {
		return score.Score{}, fmt.Errorf("egtbfile: %s has no %s-to-move file", f.Name, sideName(white))
	}
	if sd.status == StatusNone {
		if err := f.ensureLoaded(sd); err != nil {
			return score.Score{}, err
		}
	}
	if sd.status == StatusError {
		return score.Score{}, sd.loadErr
	}

	w := sd.header.cellWidth()
	cellOff := idx * int64(w)

	if sd.all != nil {
		return decodeCell(sd.all[cellOff:cellOff+int64(w)], w)
	}

	blockLen := int64(BlockSize * w)
	block := int(cellOff / blockLen)
	within := cellOff % blockLen

	data, err := f.readBlock(sd, block)
	if err != nil {
		return score.Score{}, err
	}
	return decodeCell(data[within:within+int64(w)], w)
}

func (f *File) readBlock(sd *sideData, block int) ([]byte, error) {
	sd.mu.Lock()
	defer sd.mu.Unlock()

	if sd.cachedBlock == block && sd.cachedData != nil {
		return sd.cachedData, nil
	}
	if f.cache != nil {
		if data, ok := f.cache.get(f.Name, sd.cacheWhite, block); ok {
			sd.cachedBlock, sd.cachedData = block, data
			return data, nil
		}
	}

	off, length, raw, err := sd.blockTable.OffsetAndLength(block)
	if err != nil {
		return nil, err
	}
	base := int64(HeaderSize + sd.blockTable.EncodedSize())
	chunk := sd.mm[base+off : base+off+length]

	var data []byte
	if raw {
		data = append([]byte(nil), chunk...)
	} else {
		want := BlockSize * sd.header.cellWidth()
		data, err = compress.DecompressBlock(chunk, want)
		if err != nil {
			return nil, fmt.Errorf("egtbfile: decompress block %d of %s: %w", block, f.Name, err)
		}
	}

	sd.cachedBlock, sd.cachedData = block, data
	if f.cache != nil {
		f.cache.put(f.Name, sd.cacheWhite, block, data)
	}
	return data, nil
}

func decodeCell(b []byte, w int) (score.Score, error) {
	if w == 1 {
		return score.Decode1(b[0]), nil
	}
	return score.Decode2([2]byte{b[0], b[1]}), nil
}

func sideName(white bool) string {
	if white {
		return "white"
	}
	return "black"
}

// Close releases any mapped file handles held by this table's sides.
func (f *File) Close() error {
	var firstErr error
	for _, sd := range []*sideData{f.white, f.black} {
		if sd == nil || sd.mm == nil {
			continue
		}
		if err := sd.mm.Unmap(); err != nil && firstErr == nil {
			firstErr = err
		}
		if err := sd.f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
