package egtbgen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvhoang/felicity-egtb/internal/chessboard"
	"github.com/kvhoang/felicity-egtb/internal/egtbfile"
	"github.com/kvhoang/felicity-egtb/internal/egtbdb"
	"github.com/kvhoang/felicity-egtb/internal/name"
	"github.com/kvhoang/felicity-egtb/internal/score"
	"github.com/kvhoang/felicity-egtb/internal/variant"
)

func newChessBoard() variant.Board { return chessboard.NewAdapter() }

func TestGenerateBareKingsIsAllDraw(t *testing.T) {
	rec, err := name.Parse(variant.Chess, "kk")
	require.NoError(t, err)

	db := egtbdb.New(variant.Chess, newChessBoard, egtbfile.MemAll, nil)
	res, err := Generate(context.Background(), rec, db, newChessBoard, Options{Workers: 2, NoTempFiles: true})
	require.NoError(t, err)

	assert.EqualValues(t, 0, res.DtmMax)
	for _, s := range res.White {
		assert.Contains(t, []score.Kind{score.Illegal, score.Draw}, s.Kind)
	}
	for _, s := range res.Black {
		assert.Contains(t, []score.Kind{score.Illegal, score.Draw}, s.Kind)
	}
}

func TestGenerateKQKProducesWinsAndNoUnset(t *testing.T) {
	rec, err := name.Parse(variant.Chess, "kqk")
	require.NoError(t, err)

	db := egtbdb.New(variant.Chess, newChessBoard, egtbfile.MemAll, nil)
	res, err := Generate(context.Background(), rec, db, newChessBoard, Options{Workers: 4, NoTempFiles: true})
	require.NoError(t, err)

	require.Greater(t, res.DtmMax, int16(0))

	sawWhiteWin := false
	for _, s := range res.White {
		require.NotEqual(t, score.Unset, s.Kind)
		if s.IsWin() {
			sawWhiteWin = true
		}
	}
	assert.True(t, sawWhiteWin, "KQK with White to move should have at least one forced win for White")

	for _, s := range res.Black {
		require.NotEqual(t, score.Unset, s.Kind)
	}
}
