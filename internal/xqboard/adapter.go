package xqboard

import "github.com/kvhoang/felicity-egtb/internal/variant"

// Adapter wraps a *Position so it satisfies variant.Board.
type Adapter struct {
	pos *Position
}

func NewAdapter() *Adapter {
	return &Adapter{pos: NewPosition()}
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

func (a *Adapter) Game() variant.Game { return variant.Xiangqi }

func toSide(c Color) variant.Side {
	if c == Red {
		return variant.White
	}
	return variant.Black
}

func toColor(s variant.Side) Color {
	if s == variant.White {
		return Red
	}
	return Black
}

func (a *Adapter) SideToMove() variant.Side { return toSide(a.pos.SideToMove) }

func (a *Adapter) SetSideToMove(s variant.Side) { a.pos.SideToMove = toColor(s) }

func (a *Adapter) Pieces() []variant.Piece {
	var out []variant.Piece
	for sq := Square(0); int(sq) < Files*Ranks; sq++ {
		pc := a.pos.PieceAt(sq)
		if pc == NoPiece {
			continue
		}
		out = append(out, variant.Piece{
			Square: int8(sq),
			Letter: pc.Type().Char(),
			Side:   toSide(pc.Color()),
		})
	}
	return out
}

func (a *Adapter) Clear() { a.pos.Clear() }

func (a *Adapter) Put(p variant.Piece) {
	a.pos.setPiece(NewPiece(PieceTypeFromChar(p.Letter), toColor(p.Side)), Square(p.Square))
}

func (a *Adapter) LegalMoves() []variant.Move {
	ml := a.pos.GenerateLegalMoves()
	out := make([]variant.Move, len(ml))
	for i, m := range ml {
		out[i] = m
	}
	return out
}

func (a *Adapter) MakeMove(m variant.Move) variant.Undo {
	return a.pos.MakeMove(m.(Move))
}

func (a *Adapter) UnmakeMove(m variant.Move, u variant.Undo) {
	a.pos.UnmakeMove(m.(Move), u.(UndoInfo))
}

// ChangesPieceSet reports whether m is a capture; Xiangqi has no
// promotion, so capture is the only piece-set-changing move.
func (a *Adapter) ChangesPieceSet(m variant.Move) bool {
	return m.(Move).IsCapture(a.pos)
}

func (a *Adapter) InCheck(s variant.Side) bool {
	return a.pos.IsInCheck(toColor(s))
}

// Flip applies a board symmetry in place. Xiangqi's only reflection
// symmetry is horizontal (left-right mirror across the board's central
// file); vertical and rotate both require swapping sides, since unlike
// chess the two palaces are not mirror images of an otherwise-symmetric
// board.
func (a *Adapter) Flip(mode variant.FlipMode) {
	if mode == variant.FlipNone {
		return
	}
	old := a.pos
	next := NewPosition()

	flipSquare := func(sq Square) Square {
		f, r := sq.File(), sq.Rank()
		if mode&variant.FlipHorizontal != 0 {
			f = Files - 1 - f
		}
		if mode&variant.FlipVertical != 0 {
			r = Ranks - 1 - r
		}
		return NewSquare(f, r)
	}
	flipColor := mode&variant.FlipVertical != 0

	for sq := Square(0); int(sq) < Files*Ranks; sq++ {
		pc := old.PieceAt(sq)
		if pc == NoPiece {
			continue
		}
		c := pc.Color()
		if flipColor {
			c = c.Other()
		}
		next.setPiece(NewPiece(pc.Type(), c), flipSquare(sq))
	}
	next.SideToMove = old.SideToMove
	if flipColor {
		next.SideToMove = old.SideToMove.Other()
	}
	a.pos = next
}

// EnPassantSquare always returns -1: Xiangqi has no en passant capture.
func (a *Adapter) EnPassantSquare() int { return -1 }

func (a *Adapter) Clone() variant.Board {
	return &Adapter{pos: a.pos.Copy()}
}

func (a *Adapter) String() string { return a.pos.String() }

// Position exposes the wrapped board for packages needing the concrete
// Xiangqi representation (FEN parsing).
func (a *Adapter) Position() *Position { return a.pos }
