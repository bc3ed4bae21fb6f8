package egtbdb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvhoang/felicity-egtb/internal/chessboard"
	"github.com/kvhoang/felicity-egtb/internal/egtbfile"
	"github.com/kvhoang/felicity-egtb/internal/egtbkey"
	"github.com/kvhoang/felicity-egtb/internal/name"
	"github.com/kvhoang/felicity-egtb/internal/score"
	"github.com/kvhoang/felicity-egtb/internal/variant"
)

func newChessBoard() variant.Board { return chessboard.NewAdapter() }

func TestDbLookupAndGetScore(t *testing.T) {
	rec, err := name.Parse(variant.Chess, "kk")
	require.NoError(t, err)
	codec := egtbkey.New(rec, newChessBoard)

	size := codec.Size()
	require.Greater(t, size, int64(0))

	cells := make([]byte, size)
	for i := range cells {
		cells[i] = 5 // byteDraw
	}
	var chosenIdx int64 = -1
	var chosenBoard variant.Board
	for idx := int64(0); idx < size; idx++ {
		b, err := codec.Reverse(idx)
		if err != nil {
			continue
		}
		chosenIdx, chosenBoard = idx, b
		break
	}
	require.GreaterOrEqual(t, chosenIdx, int64(0), "expected at least one legal index in kk's domain")

	b, err := score.Encode1(score.MateIn(5))
	require.NoError(t, err)
	cells[chosenIdx] = b

	dir := t.TempDir()
	path := filepath.Join(dir, "kk.w.fegtb")
	require.NoError(t, egtbfile.WriteFile(path, egtbfile.WriteSpec{
		Name: "kk", White: true, Cells: cells, CellWidth: 1, DtmMax: 5, Workers: 2,
	}))

	db := New(variant.Chess, newChessBoard, egtbfile.MemAll, nil)
	require.NoError(t, db.Preload(dir, egtbfile.LoadNow))

	_, ok := db.Lookup("kk")
	require.True(t, ok)

	got, err := db.GetScore(chosenBoard)
	require.NoError(t, err)
	assert.Equal(t, score.MateIn(5), got)
}

func TestDbGetScoreMissingTable(t *testing.T) {
	db := New(variant.Chess, newChessBoard, egtbfile.MemAll, nil)
	rec, err := name.Parse(variant.Chess, "kk")
	require.NoError(t, err)
	codec := egtbkey.New(rec, newChessBoard)

	var b variant.Board
	for idx := int64(0); idx < codec.Size(); idx++ {
		cand, err := codec.Reverse(idx)
		if err == nil {
			b = cand
			break
		}
	}
	require.NotNil(t, b)

	_, err = db.GetScore(b)
	assert.ErrorIs(t, err, ErrMissing)
}
