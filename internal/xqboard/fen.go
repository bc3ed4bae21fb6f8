package xqboard

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseFEN parses a Xiangqi FEN (rank 0 first, as emitted by most Xiangqi
// tools, which list the board from Black's back rank down to Red's).
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return nil, fmt.Errorf("xqboard: FEN %q needs board and side-to-move fields", fen)
	}

	p := NewPosition()
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != Ranks {
		return nil, fmt.Errorf("xqboard: FEN %q has %d ranks, want %d", fen, len(ranks), Ranks)
	}

	for r, row := range ranks {
		f := 0
		for i := 0; i < len(row); i++ {
			ch := row[i]
			if ch >= '1' && ch <= '9' {
				n, err := strconv.Atoi(string(ch))
				if err != nil {
					return nil, fmt.Errorf("xqboard: bad FEN digit %q", ch)
				}
				f += n
				continue
			}
			if f >= Files {
				return nil, fmt.Errorf("xqboard: FEN rank %d overflows %d files", r, Files)
			}
			pt := PieceTypeFromChar(strings.ToLower(string(ch))[0])
			if pt == NoPieceType {
				return nil, fmt.Errorf("xqboard: invalid FEN piece %q", ch)
			}
			c := Black
			if ch >= 'A' && ch <= 'Z' {
				c = Red
			}
			p.setPiece(NewPiece(pt, c), NewSquare(f, r))
			f++
		}
	}

	switch fields[1] {
	case "w", "r":
		p.SideToMove = Red
	case "b":
		p.SideToMove = Black
	default:
		return nil, fmt.Errorf("xqboard: invalid side to move %q", fields[1])
	}

	return p, nil
}

// FEN renders the position back into the same rank-0-first notation
// ParseFEN accepts.
func (p *Position) FEN() string {
	var b strings.Builder
	for r := 0; r < Ranks; r++ {
		empty := 0
		for f := 0; f < Files; f++ {
			pc := p.PieceAt(NewSquare(f, r))
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				fmt.Fprintf(&b, "%d", empty)
				empty = 0
			}
			b.WriteString(pc.String())
		}
		if empty > 0 {
			fmt.Fprintf(&b, "%d", empty)
		}
		if r != Ranks-1 {
			b.WriteByte('/')
		}
	}
	b.WriteByte(' ')
	b.WriteString(p.SideToMove.String())
	return b.String()
}
