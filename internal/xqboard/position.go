package xqboard

import (
	"fmt"
	"strings"
)

// Position holds a complete Xiangqi board: 90 squares plus side to move.
type Position struct {
	squares    [Files * Ranks]Piece
	SideToMove Color
}

func NewPosition() *Position {
	p := &Position{}
	p.Clear()
	return p
}

func (p *Position) Clear() {
	for i := range p.squares {
		p.squares[i] = NoPiece
	}
	p.SideToMove = Red
}

func (p *Position) PieceAt(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	return p.squares[sq]
}

func (p *Position) IsEmpty(sq Square) bool { return p.PieceAt(sq) == NoPiece }

func (p *Position) setPiece(piece Piece, sq Square) { p.squares[sq] = piece }

func (p *Position) removePiece(sq Square) Piece {
	pc := p.squares[sq]
	p.squares[sq] = NoPiece
	return pc
}

// FindKing returns the square of c's king, or NoSquare if absent.
func (p *Position) FindKing(c Color) Square {
	for sq := Square(0); int(sq) < Files*Ranks; sq++ {
		pc := p.squares[sq]
		if pc.Type() == King && pc.Color() == c {
			return sq
		}
	}
	return NoSquare
}

func (p *Position) Copy() *Position {
	np := *p
	return &np
}

// String renders the board, Red pieces uppercase, Black lowercase, for
// logging and debugging.
func (p *Position) String() string {
	var b strings.Builder
	for r := 0; r < Ranks; r++ {
		fmt.Fprintf(&b, "%d  ", r)
		for f := 0; f < Files; f++ {
			pc := p.PieceAt(NewSquare(f, r))
			if pc == NoPiece {
				b.WriteString(". ")
			} else {
				b.WriteString(pc.String())
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString("\n   a b c d e f g h i\n")
	fmt.Fprintf(&b, "Side to move: %s\n", p.SideToMove)
	return b.String()
}
