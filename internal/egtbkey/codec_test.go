package egtbkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvhoang/felicity-egtb/internal/chessboard"
	"github.com/kvhoang/felicity-egtb/internal/name"
	"github.com/kvhoang/felicity-egtb/internal/variant"
)

func newChessBoard() variant.Board { return chessboard.NewAdapter() }

func TestCodecSizeIsPositive(t *testing.T) {
	rec, err := name.Parse(variant.Chess, "kqk")
	require.NoError(t, err)
	c := New(rec, newChessBoard)
	assert.Positive(t, c.Size())
}

func TestCodecRoundTrip(t *testing.T) {
	rec, err := name.Parse(variant.Chess, "kqk")
	require.NoError(t, err)
	c := New(rec, newChessBoard)

	b := newChessBoard()
	b.Put(variant.Piece{Square: 4, Letter: 'k', Side: variant.White})
	b.Put(variant.Piece{Square: 60, Letter: 'k', Side: variant.Black})
	b.Put(variant.Piece{Square: 0, Letter: 'q', Side: variant.White})

	idx, flip, err := c.Forward(b)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, idx, int64(0))
	assert.Less(t, idx, c.Size())

	reconstructed, err := c.Reverse(idx)
	require.NoError(t, err)

	idx2, _, err := c.Forward(reconstructed)
	require.NoError(t, err)
	assert.Equal(t, idx, idx2)
	_ = flip
}

func TestCodecForwardRejectsMismatchedMaterial(t *testing.T) {
	rec, err := name.Parse(variant.Chess, "kqk")
	require.NoError(t, err)
	c := New(rec, newChessBoard)

	b := newChessBoard()
	b.Put(variant.Piece{Square: 4, Letter: 'k', Side: variant.White})
	b.Put(variant.Piece{Square: 60, Letter: 'k', Side: variant.Black})
	b.Put(variant.Piece{Square: 0, Letter: 'r', Side: variant.White})

	_, _, err = c.Forward(b)
	assert.Error(t, err)
}

func TestCodecReverseOutOfRange(t *testing.T) {
	rec, err := name.Parse(variant.Chess, "kqk")
	require.NoError(t, err)
	c := New(rec, newChessBoard)

	_, err = c.Reverse(c.Size())
	assert.Error(t, err)
}

func TestCodecBlackStrongFlipsToWhite(t *testing.T) {
	rec, err := name.Parse(variant.Chess, "kqk")
	require.NoError(t, err)
	c := New(rec, newChessBoard)

	b := newChessBoard()
	b.Put(variant.Piece{Square: 4, Letter: 'k', Side: variant.Black})
	b.Put(variant.Piece{Square: 60, Letter: 'k', Side: variant.White})
	b.Put(variant.Piece{Square: 0, Letter: 'q', Side: variant.Black})

	idx, flip, err := c.Forward(b)
	require.NoError(t, err)
	assert.Equal(t, variant.FlipVertical, flip&variant.FlipVertical)
	assert.GreaterOrEqual(t, idx, int64(0))
}
