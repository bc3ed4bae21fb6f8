package egtbfile

import (
	"encoding/binary"
	"fmt"
)

// BlockSize is the uncompressed size of one compression block.
const BlockSize = 4096

// BlockTable records, for every compression block of one side's payload,
// the byte offset and length of that block's (possibly raw) compressed
// form within the file. Offsets are cumulative so OffsetAndLength needs no
// separate length column beyond the next block's offset.
type BlockTable struct {
	// Wide selects the 40-bit (5-byte) entry width instead of the default
	// 32-bit one, for payloads whose compressed size exceeds 2^31-1 bytes.
	Wide bool

	offsets []int64 // len(offsets) == blockCount+1, offsets[i] is the start of block i
	raw     []bool  // per-block raw-storage flag
}

// NewBlockTable builds a table from per-block compressed lengths and raw
// flags, computing cumulative offsets starting at base.
func NewBlockTable(base int64, lengths []int64, raw []bool, wide bool) *BlockTable {
	t := &BlockTable{Wide: wide, offsets: make([]int64, len(lengths)+1), raw: append([]bool(nil), raw...)}
	t.offsets[0] = base
	for i, l := range lengths {
		t.offsets[i+1] = t.offsets[i] + l
	}
	return t
}

// BlockCount returns the number of blocks this table describes.
func (t *BlockTable) BlockCount() int { return len(t.raw) }

// OffsetAndLength returns block i's byte range within the file and whether
// it is stored raw (uncompressed).
func (t *BlockTable) OffsetAndLength(i int) (offset, length int64, raw bool, err error) {
	if i < 0 || i >= t.BlockCount() {
		return 0, 0, false, fmt.Errorf("egtbfile: block index %d out of range [0,%d)", i, t.BlockCount())
	}
	return t.offsets[i], t.offsets[i+1] - t.offsets[i], t.raw[i], nil
}

// entryWidth returns the on-disk byte width of one table entry: 4 bytes
// normally, 5 when Wide is set.
func (t *BlockTable) entryWidth() int {
	if t.Wide {
		return 5
	}
	return 4
}

// EncodedSize is the byte length Encode will produce.
func (t *BlockTable) EncodedSize() int {
	return t.BlockCount() * t.entryWidth()
}

// Encode serializes the table as one entry per block: the block's raw flag
// packed into the entry's top bit, its length (not offset -- offsets are
// reconstructed on load by prefix-summing lengths) in the remaining bits.
func (t *BlockTable) Encode() []byte {
	w := t.entryWidth()
	buf := make([]byte, t.BlockCount()*w)
	for i := 0; i < t.BlockCount(); i++ {
		_, length, raw, _ := t.OffsetAndLength(i)
		v := uint64(length)
		if raw {
			v |= uint64(1) << (8*w - 1)
		}
		put40or32(buf[i*w:(i+1)*w], v, w)
	}
	return buf
}

// DecodeBlockTable parses buf (produced by Encode) into a BlockTable whose
// block byte ranges start at base.
func DecodeBlockTable(buf []byte, base int64, blockCount int, wide bool) (*BlockTable, error) {
	w := 4
	if wide {
		w = 5
	}
	if len(buf) < blockCount*w {
		return nil, fmt.Errorf("egtbfile: block table buffer too short (%d < %d)", len(buf), blockCount*w)
	}
	lengths := make([]int64, blockCount)
	raw := make([]bool, blockCount)
	for i := 0; i < blockCount; i++ {
		v := get40or32(buf[i*w:(i+1)*w], w)
		raw[i] = v&(uint64(1)<<(8*w-1)) != 0
		lengths[i] = int64(v &^ (uint64(1) << (8*w - 1)))
	}
	return NewBlockTable(base, lengths, raw, wide), nil
}

func put40or32(dst []byte, v uint64, width int) {
	if width == 4 {
		binary.LittleEndian.PutUint32(dst, uint32(v))
		return
	}
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	copy(dst, tmp[:5])
}

func get40or32(src []byte, width int) uint64 {
	if width == 4 {
		return uint64(binary.LittleEndian.Uint32(src))
	}
	var tmp [8]byte
	copy(tmp[:5], src)
	return binary.LittleEndian.Uint64(tmp[:])
}
