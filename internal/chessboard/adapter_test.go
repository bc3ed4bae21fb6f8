package chessboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kvhoang/felicity-egtb/internal/variant"
)

func TestAdapterPutAndPieces(t *testing.T) {
	a := NewAdapter()
	a.Put(variant.Piece{Square: int8(E1), Letter: 'k', Side: variant.White})
	a.Put(variant.Piece{Square: int8(E8), Letter: 'k', Side: variant.Black})
	a.Put(variant.Piece{Square: int8(A1), Letter: 'q', Side: variant.White})

	pieces := a.Pieces()
	assert.Len(t, pieces, 3)
}

func TestAdapterFlipHorizontal(t *testing.T) {
	a := NewAdapter()
	a.Put(variant.Piece{Square: int8(A1), Letter: 'k', Side: variant.White})
	a.Put(variant.Piece{Square: int8(E8), Letter: 'k', Side: variant.Black})
	a.Flip(variant.FlipHorizontal)

	found := false
	for _, p := range a.Pieces() {
		if p.Letter == 'k' && p.Side == variant.White {
			assert.Equal(t, int8(H1), p.Square)
			found = true
		}
	}
	assert.True(t, found)
}

func TestAdapterFlipVerticalSwapsSide(t *testing.T) {
	a := NewAdapter()
	a.Put(variant.Piece{Square: int8(A1), Letter: 'k', Side: variant.White})
	a.Put(variant.Piece{Square: int8(A8), Letter: 'k', Side: variant.Black})
	a.SetSideToMove(variant.White)
	a.Flip(variant.FlipVertical)

	assert.Equal(t, variant.Black, a.SideToMove())
	for _, p := range a.Pieces() {
		if p.Square == int8(A1) {
			assert.Equal(t, variant.Black, p.Side)
		}
	}
}

func TestAdapterEnPassantSquareDefault(t *testing.T) {
	a := NewAdapter()
	assert.Equal(t, -1, a.EnPassantSquare())
}
