package egtbkey

import "github.com/kvhoang/felicity-egtb/internal/variant"

// SquareCount returns the number of playable squares on g's board.
func SquareCount(g variant.Game) int {
	if g == variant.Xiangqi {
		return 90
	}
	return 64
}

// flipSquare returns the square a single piece at sq maps to under mode,
// computed generically through the variant.Board interface.
func flipSquare(newBoard func() variant.Board, sq int, mode variant.FlipMode) int {
	if mode == variant.FlipNone {
		return sq
	}
	b := newBoard()
	b.Put(variant.Piece{Square: int8(sq), Letter: 'r', Side: variant.White})
	b.Flip(mode)
	return int(b.Pieces()[0].Square)
}

// anchorDomain returns the sorted set of squares that are their own
// canonical representative under horizontal reflection (the symmetry that
// survives once side-to-move normalization has already fixed the board's
// vertical orientation): sq qualifies iff flipSquare(sq, Horizontal) >= sq.
func anchorDomain(newBoard func() variant.Board, g variant.Game) []int {
	var out []int
	for sq := 0; sq < SquareCount(g); sq++ {
		if flipSquare(newBoard, sq, variant.FlipHorizontal) >= sq {
			out = append(out, sq)
		}
	}
	return out
}
