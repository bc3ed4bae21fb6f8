package xqboard

import "fmt"

// Move is a from/to square pair; Xiangqi has no promotion, castling, or en
// passant, so no further encoding is needed.
type Move struct {
	From, To Square
}

func (m Move) String() string { return fmt.Sprintf("%s%s", m.From, m.To) }

// UndoInfo records what MakeMove must restore: the piece captured (if any)
// at the destination square.
type UndoInfo struct {
	Captured Piece
}

// MakeMove applies m, returning the information needed to UnmakeMove.
func (p *Position) MakeMove(m Move) UndoInfo {
	undo := UndoInfo{Captured: p.PieceAt(m.To)}
	moving := p.removePiece(m.From)
	p.setPiece(moving, m.To)
	p.SideToMove = p.SideToMove.Other()
	return undo
}

func (p *Position) UnmakeMove(m Move, undo UndoInfo) {
	moving := p.removePiece(m.To)
	p.setPiece(moving, m.From)
	if undo.Captured != NoPiece {
		p.setPiece(undo.Captured, m.To)
	}
	p.SideToMove = p.SideToMove.Other()
}

// IsCapture reports whether m lands on an occupied square.
func (m Move) IsCapture(p *Position) bool { return !p.IsEmpty(m.To) }
