// Package xqboard implements the Xiangqi (Chinese chess) board representation
// and move generation used as the EGTB engine's variant-specific collaborator
// for the nine-file, ten-rank board.
package xqboard

// PieceType enumerates the seven Xiangqi piece kinds.
type PieceType uint8

const (
	King PieceType = iota
	Advisor
	Elephant
	Horse
	Rook
	Cannon
	Pawn
	NoPieceType
)

// Char returns the lowercase name-algebra letter for the type, matching
// internal/name's xiangqi alphabet (king excluded, it has no letter there).
func (pt PieceType) Char() byte {
	const chars = "kabnrcp"
	if pt >= NoPieceType {
		return '.'
	}
	return chars[pt]
}

func (pt PieceType) String() string { return string(pt.Char()) }

// PieceTypeFromChar maps a lowercase letter back to its PieceType, or
// NoPieceType if unrecognized.
func PieceTypeFromChar(c byte) PieceType {
	switch c {
	case 'k':
		return King
	case 'a':
		return Advisor
	case 'b':
		return Elephant
	case 'n':
		return Horse
	case 'r':
		return Rook
	case 'c':
		return Cannon
	case 'p':
		return Pawn
	default:
		return NoPieceType
	}
}

// Color is one of the two sides. Red is the conventional first player,
// equivalent to White in the generic variant.Side mapping.
type Color uint8

const (
	Red Color = iota
	Black
	NoColor
)

func (c Color) Other() Color {
	if c == Red {
		return Black
	}
	if c == Black {
		return Red
	}
	return NoColor
}

func (c Color) String() string {
	if c == Black {
		return "b"
	}
	return "r"
}

// Piece packs a PieceType and Color into one byte, NoPiece marking an
// empty square (mirrors chessboard.Piece's packing for textural symmetry).
type Piece uint8

const typesPerColor = Piece(NoPieceType)

const NoPiece Piece = Piece(NoPieceType) * 2

func NewPiece(pt PieceType, c Color) Piece {
	if pt >= NoPieceType || c >= NoColor {
		return NoPiece
	}
	return Piece(pt) + typesPerColor*Piece(c)
}

func (p Piece) Type() PieceType {
	if p >= NoPiece {
		return NoPieceType
	}
	return PieceType(p % typesPerColor)
}

func (p Piece) Color() Color {
	if p >= NoPiece {
		return NoColor
	}
	return Color(p / typesPerColor)
}

func (p Piece) String() string {
	if p >= NoPiece {
		return "."
	}
	ch := p.Type().Char()
	if p.Color() == Red {
		ch -= 'a' - 'A'
	}
	return string(ch)
}
