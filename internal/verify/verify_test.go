package verify

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvhoang/felicity-egtb/internal/chessboard"
	"github.com/kvhoang/felicity-egtb/internal/egtbdb"
	"github.com/kvhoang/felicity-egtb/internal/egtbfile"
	"github.com/kvhoang/felicity-egtb/internal/egtbgen"
	"github.com/kvhoang/felicity-egtb/internal/name"
	"github.com/kvhoang/felicity-egtb/internal/score"
	"github.com/kvhoang/felicity-egtb/internal/variant"
)

func newChessBoard() variant.Board { return chessboard.NewAdapter() }

func pack2(scores []score.Score) ([]byte, error) {
	out := make([]byte, 0, len(scores)*2)
	for _, s := range scores {
		b, err := score.Encode2(s)
		if err != nil {
			return nil, err
		}
		out = append(out, b[0], b[1])
	}
	return out, nil
}

func buildKQK(t *testing.T) (*egtbdb.Db, name.Record) {
	t.Helper()
	rec, err := name.Parse(variant.Chess, "kqk")
	require.NoError(t, err)

	db := egtbdb.New(variant.Chess, newChessBoard, egtbfile.MemAll, nil)
	res, err := egtbgen.Generate(context.Background(), rec, db, newChessBoard, egtbgen.Options{Workers: 4, NoTempFiles: true})
	require.NoError(t, err)

	dir := t.TempDir()
	for _, side := range [2]bool{true, false} {
		scores := res.White
		if !side {
			scores = res.Black
		}
		cells, err := pack2(scores)
		require.NoError(t, err)

		path := filepath.Join(dir, "kqk."+map[bool]string{true: "w", false: "b"}[side]+".fegtb")
		require.NoError(t, egtbfile.WriteFile(path, egtbfile.WriteSpec{
			Name: "kqk", White: side, Cells: cells, CellWidth: 2, DtmMax: res.DtmMax, Workers: 2,
		}))
	}

	require.NoError(t, db.Preload(dir, egtbfile.LoadNow))
	return db, rec
}

func TestVerifyKeysKQKHasNoMismatches(t *testing.T) {
	rec, err := name.Parse(variant.Chess, "kqk")
	require.NoError(t, err)

	mism, err := VerifyKeys(context.Background(), rec, newChessBoard, 4)
	require.NoError(t, err)
	assert.Empty(t, mism)
}

func TestVerifyDataKQKHasNoMismatches(t *testing.T) {
	db, rec := buildKQK(t)

	f, ok := db.Lookup("kqk")
	require.True(t, ok)

	mism, err := VerifyData(context.Background(), rec, db, newChessBoard, f)
	require.NoError(t, err)
	assert.Empty(t, mism)
}

func TestVerifyKeysBareKingsHasNoMismatches(t *testing.T) {
	rec, err := name.Parse(variant.Chess, "kk")
	require.NoError(t, err)

	mism, err := VerifyKeys(context.Background(), rec, newChessBoard, 2)
	require.NoError(t, err)
	assert.Empty(t, mism)
}
