package egtbfile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvhoang/felicity-egtb/internal/score"
)

func TestHeaderRoundTrip(t *testing.T) {
	h := Header{
		Signature:  Signature,
		Property:   PropCompressed | Prop2Bytes | PropSideWhite,
		DtmMax:     37,
		Order:      0x0102,
		Name:       "kqkr",
		Copyright:  "felicity-egtb",
		BlockCount: 12,
	}
	buf, err := h.Encode()
	require.NoError(t, err)
	got, err := Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, h, got)
}

func TestDecodeRejectsBadSignature(t *testing.T) {
	buf := make([]byte, HeaderSize)
	_, err := Decode(buf)
	assert.Error(t, err)
}

func TestBlockTableRoundTrip(t *testing.T) {
	lengths := []int64{100, 50, 4096, 1}
	raws := []bool{false, true, false, true}
	bt := NewBlockTable(0, lengths, raws, false)

	buf := bt.Encode()
	got, err := DecodeBlockTable(buf, 0, len(lengths), false)
	require.NoError(t, err)

	for i := range lengths {
		wantOff, wantLen, wantRaw, err := bt.OffsetAndLength(i)
		require.NoError(t, err)
		gotOff, gotLen, gotRaw, err := got.OffsetAndLength(i)
		require.NoError(t, err)
		assert.Equal(t, wantOff, gotOff)
		assert.Equal(t, wantLen, gotLen)
		assert.Equal(t, wantRaw, gotRaw)
	}
}

func cellsFromScores(t *testing.T, scores []score.Score, width int) []byte {
	t.Helper()
	out := make([]byte, 0, len(scores)*width)
	for _, s := range scores {
		if width == 1 {
			b, err := score.Encode1(s)
			require.NoError(t, err)
			out = append(out, b)
		} else {
			b, err := score.Encode2(s)
			require.NoError(t, err)
			out = append(out, b[0], b[1])
		}
	}
	return out
}

func TestWriteFileAndGetScoreRoundTrip(t *testing.T) {
	scores := make([]score.Score, BlockSize*2+37)
	for i := range scores {
		switch i % 4 {
		case 0:
			scores[i] = score.MkDraw()
		case 1:
			scores[i] = score.MateIn(int16(1 + i%60))
		case 2:
			scores[i] = score.MatedIn(int16(i % 50))
		default:
			scores[i] = score.MkIllegal()
		}
	}
	cells := cellsFromScores(t, scores, 1)

	dir := t.TempDir()
	path := filepath.Join(dir, "kqkr.wtb")
	require.NoError(t, WriteFile(path, WriteSpec{
		Name: "kqkr", White: true, Cells: cells, CellWidth: 1, DtmMax: 60, Workers: 4,
	}))

	for _, mode := range []MemMode{MemAll, MemTiny, MemSmart} {
		f := NewFile("kqkr", path, "", mode, nil)
		for _, i := range []int{0, 1, 2, 3, BlockSize - 1, BlockSize, BlockSize + 1, len(scores) - 1} {
			got, err := f.GetScore(int64(i), true)
			require.NoError(t, err)
			assert.Equal(t, scores[i], got, "mode=%v idx=%d", mode, i)
		}
		require.NoError(t, f.Close())
	}
}

func TestGetScoreMissingSideErrors(t *testing.T) {
	f := NewFile("kqkr", "", "", MemAll, nil)
	_, err := f.GetScore(0, true)
	assert.Error(t, err)
}
