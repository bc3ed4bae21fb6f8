package chessboard

import (
	"github.com/kvhoang/felicity-egtb/internal/variant"
)

// Adapter wraps a *Position so it satisfies variant.Board, letting the
// index codec, generator, and prober drive this package's board and move
// generator without depending on its concrete types.
type Adapter struct {
	pos *Position
}

// NewAdapter wraps an empty chess position.
func NewAdapter() *Adapter {
	p := &Position{EnPassant: NoSquare, FullMoveNumber: 1}
	p.KingSquare[White] = NoSquare
	p.KingSquare[Black] = NoSquare
	return &Adapter{pos: p}
}

// NewAdapterFromFEN parses fen and wraps the resulting position, for the
// prober's "-fen STRING" entry point.
func NewAdapterFromFEN(fen string) (*Adapter, error) {
	p, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Adapter{pos: p}, nil
}

func (a *Adapter) Game() variant.Game { return variant.Chess }

func toSide(c Color) variant.Side {
	if c == White {
		return variant.White
	}
	return variant.Black
}

func toColor(s variant.Side) Color {
	if s == variant.White {
		return White
	}
	return Black
}

func (a *Adapter) SideToMove() variant.Side { return toSide(a.pos.SideToMove) }

func (a *Adapter) SetSideToMove(s variant.Side) { a.pos.SideToMove = toColor(s) }

var pieceLetters = "pnbrqk"

func toLetter(pt PieceType) byte { return pieceLetters[pt] }

func fromLetter(l byte) PieceType {
	switch l {
	case 'p':
		return Pawn
	case 'n':
		return Knight
	case 'b':
		return Bishop
	case 'r':
		return Rook
	case 'q':
		return Queen
	default:
		return King
	}
}

func (a *Adapter) Pieces() []variant.Piece {
	var out []variant.Piece
	for sq := A1; sq <= H8; sq++ {
		p := a.pos.PieceAt(sq)
		if p == NoPiece {
			continue
		}
		out = append(out, variant.Piece{
			Square: int8(sq),
			Letter: toLetter(p.Type()),
			Side:   toSide(p.Color()),
		})
	}
	return out
}

func (a *Adapter) Clear() { a.pos.Clear() }

func (a *Adapter) Put(p variant.Piece) {
	piece := NewPiece(fromLetter(p.Letter), toColor(p.Side))
	a.pos.setPiece(piece, Square(p.Square))
	a.pos.updateOccupied()
}

func (a *Adapter) LegalMoves() []variant.Move {
	ml := a.pos.GenerateLegalMoves()
	out := make([]variant.Move, ml.Len())
	for i := 0; i < ml.Len(); i++ {
		out[i] = ml.Get(i)
	}
	return out
}

func (a *Adapter) MakeMove(m variant.Move) variant.Undo {
	mv := m.(Move)
	undo := a.pos.MakeMove(mv)
	a.pos.UpdateCheckers()
	return undo
}

func (a *Adapter) UnmakeMove(m variant.Move, u variant.Undo) {
	a.pos.UnmakeMove(m.(Move), u.(UndoInfo))
	a.pos.UpdateCheckers()
}

func (a *Adapter) ChangesPieceSet(m variant.Move) bool {
	mv := m.(Move)
	return mv.IsCapture(a.pos) || mv.IsPromotion()
}

// InCheck tests s's king square for attackers directly instead of reading
// Checkers, which Put and SetSideToMove leave stale.
func (a *Adapter) InCheck(s variant.Side) bool {
	king := a.pos.KingSquare[toColor(s)]
	return a.pos.IsSquareAttacked(king, toColor(s).Other())
}

// Flip applies a board symmetry in place: horizontal mirrors the file,
// vertical mirrors the rank and swaps side colors, rotate composes both.
func (a *Adapter) Flip(mode variant.FlipMode) {
	if mode == variant.FlipNone {
		return
	}
	old := a.pos
	next := &Position{EnPassant: NoSquare, FullMoveNumber: old.FullMoveNumber, HalfMoveClock: old.HalfMoveClock}
	next.KingSquare[White] = NoSquare
	next.KingSquare[Black] = NoSquare

	flipSquare := func(sq Square) Square {
		f, r := sq.File(), sq.Rank()
		if mode&variant.FlipHorizontal != 0 {
			f = 7 - f
		}
		if mode&variant.FlipVertical != 0 {
			r = 7 - r
		}
		return NewSquare(f, r)
	}
	flipColor := mode&variant.FlipVertical != 0

	for sq := A1; sq <= H8; sq++ {
		p := old.PieceAt(sq)
		if p == NoPiece {
			continue
		}
		c := p.Color()
		if flipColor {
			c = c.Other()
		}
		next.setPiece(NewPiece(p.Type(), c), flipSquare(sq))
	}
	next.SideToMove = old.SideToMove
	if flipColor {
		next.SideToMove = old.SideToMove.Other()
	}
	next.updateOccupied()
	next.UpdateCheckers()
	a.pos = next
}

func (a *Adapter) EnPassantSquare() int {
	if a.pos.EnPassant == NoSquare {
		return -1
	}
	return int(a.pos.EnPassant)
}

func (a *Adapter) Clone() variant.Board {
	return &Adapter{pos: a.pos.Copy()}
}

func (a *Adapter) String() string { return a.pos.String() }

// Position exposes the wrapped board for packages that need the concrete
// chess representation (FEN parsing).
func (a *Adapter) Position() *Position { return a.pos }
