package xqboard

// GeneratePseudoLegalMoves enumerates every move for the side to move that
// obeys each piece's movement rule, without checking whether it leaves the
// mover's own king in check.
func (p *Position) GeneratePseudoLegalMoves() []Move {
	var moves []Move
	us := p.SideToMove
	for sq := Square(0); int(sq) < Files*Ranks; sq++ {
		pc := p.squares[sq]
		if pc == NoPiece || pc.Color() != us {
			continue
		}
		switch pc.Type() {
		case King:
			p.genKing(sq, us, &moves)
		case Advisor:
			p.genAdvisor(sq, us, &moves)
		case Elephant:
			p.genElephant(sq, us, &moves)
		case Horse:
			p.genHorse(sq, us, &moves)
		case Rook:
			p.genRook(sq, us, &moves)
		case Cannon:
			p.genCannon(sq, us, &moves)
		case Pawn:
			p.genPawn(sq, us, &moves)
		}
	}
	return moves
}

// GenerateLegalMoves filters GeneratePseudoLegalMoves down to moves that
// don't leave the mover's own king in check (which also rules out exposing
// the flying-general face-off, since IsInCheck treats an unblocked enemy
// king on the same file as a checking piece).
func (p *Position) GenerateLegalMoves() []Move {
	pseudo := p.GeneratePseudoLegalMoves()
	us := p.SideToMove
	out := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		undo := p.MakeMove(m)
		if !p.IsInCheck(us) {
			out = append(out, m)
		}
		p.UnmakeMove(m, undo)
	}
	return out
}

// GenerateCaptures enumerates only moves that land on an occupied (enemy)
// square.
func (p *Position) GenerateCaptures() []Move {
	all := p.GeneratePseudoLegalMoves()
	out := make([]Move, 0, len(all))
	for _, m := range all {
		if m.IsCapture(p) {
			out = append(out, m)
		}
	}
	return out
}

func (p *Position) tryAdd(from, to Square, us Color, moves *[]Move) {
	if !to.IsValid() {
		return
	}
	if target := p.PieceAt(to); target != NoPiece && target.Color() == us {
		return
	}
	*moves = append(*moves, Move{From: from, To: to})
}

func (p *Position) genKing(sq Square, us Color, moves *[]Move) {
	for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		f, r := sq.File()+d[0], sq.Rank()+d[1]
		if f < 0 || f >= Files || r < 0 || r >= Ranks {
			continue
		}
		to := NewSquare(f, r)
		if !inPalace(to, us) {
			continue
		}
		p.tryAdd(sq, to, us, moves)
	}
}

func (p *Position) genAdvisor(sq Square, us Color, moves *[]Move) {
	for _, d := range [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}} {
		f, r := sq.File()+d[0], sq.Rank()+d[1]
		if f < 0 || f >= Files || r < 0 || r >= Ranks {
			continue
		}
		to := NewSquare(f, r)
		if !inPalace(to, us) {
			continue
		}
		p.tryAdd(sq, to, us, moves)
	}
}

func (p *Position) genElephant(sq Square, us Color, moves *[]Move) {
	for _, d := range [][2]int{{-2, -2}, {-2, 2}, {2, -2}, {2, 2}} {
		f, r := sq.File()+d[0], sq.Rank()+d[1]
		if f < 0 || f >= Files || r < 0 || r >= Ranks {
			continue
		}
		eye := NewSquare(sq.File()+d[0]/2, sq.Rank()+d[1]/2)
		if !p.IsEmpty(eye) {
			continue
		}
		to := NewSquare(f, r)
		if !inOwnHalf(to, us) {
			continue
		}
		p.tryAdd(sq, to, us, moves)
	}
}

// horseSteps pairs each of the 8 knight-shaped destinations with the
// orthogonal "leg" square that must be empty for the jump to be unblocked.
var horseSteps = [8][2][2]int{
	{{-1, -2}, {0, -1}},
	{{1, -2}, {0, -1}},
	{{-1, 2}, {0, 1}},
	{{1, 2}, {0, 1}},
	{{-2, -1}, {-1, 0}},
	{{-2, 1}, {-1, 0}},
	{{2, -1}, {1, 0}},
	{{2, 1}, {1, 0}},
}

func (p *Position) genHorse(sq Square, us Color, moves *[]Move) {
	for _, step := range horseSteps {
		df, dr := step[0][0], step[0][1]
		f, r := sq.File()+df, sq.Rank()+dr
		if f < 0 || f >= Files || r < 0 || r >= Ranks {
			continue
		}
		leg := NewSquare(sq.File()+step[1][0], sq.Rank()+step[1][1])
		if !p.IsEmpty(leg) {
			continue
		}
		p.tryAdd(sq, NewSquare(f, r), us, moves)
	}
}

func (p *Position) genRook(sq Square, us Color, moves *[]Move) {
	for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		f, r := sq.File(), sq.Rank()
		for {
			f += d[0]
			r += d[1]
			if f < 0 || f >= Files || r < 0 || r >= Ranks {
				break
			}
			to := NewSquare(f, r)
			p.tryAdd(sq, to, us, moves)
			if !p.IsEmpty(to) {
				break
			}
		}
	}
}

func (p *Position) genCannon(sq Square, us Color, moves *[]Move) {
	for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		f, r := sq.File(), sq.Rank()
		jumped := false
		for {
			f += d[0]
			r += d[1]
			if f < 0 || f >= Files || r < 0 || r >= Ranks {
				break
			}
			to := NewSquare(f, r)
			if !jumped {
				if p.IsEmpty(to) {
					*moves = append(*moves, Move{From: sq, To: to})
					continue
				}
				jumped = true
				continue
			}
			if !p.IsEmpty(to) {
				if target := p.PieceAt(to); target.Color() != us {
					*moves = append(*moves, Move{From: sq, To: to})
				}
				break
			}
		}
	}
}

func (p *Position) genPawn(sq Square, us Color, moves *[]Move) {
	forward := -1
	if us == Black {
		forward = 1
	}
	f, r := sq.File(), sq.Rank()+forward
	if r >= 0 && r < Ranks {
		p.tryAdd(sq, NewSquare(f, r), us, moves)
	}
	if riverCrossed(sq, us) {
		if f-1 >= 0 {
			p.tryAdd(sq, NewSquare(f-1, r-forward), us, moves)
		}
		if f+1 < Files {
			p.tryAdd(sq, NewSquare(f+1, r-forward), us, moves)
		}
	}
}
