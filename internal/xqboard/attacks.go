package xqboard

// IsInCheck reports whether c's king is currently attacked, covering
// Rook/Cannon/King(flying general) rays along the king's rank and file,
// and Horse jumps into the king's square.
func (p *Position) IsInCheck(c Color) bool {
	king := p.FindKing(c)
	if king == NoSquare {
		return false
	}
	attacker := c.Other()

	if p.rayAttacks(king, c, attacker, 0, -1) {
		return true
	}
	if p.rayAttacks(king, c, attacker, 0, 1) {
		return true
	}
	if p.rayAttacks(king, c, attacker, -1, 0) {
		return true
	}
	if p.rayAttacks(king, c, attacker, 1, 0) {
		return true
	}
	return p.horseAttacks(king, attacker)
}

// rayAttacks scans from king in direction (df,dr): the first piece hit may
// check as a Rook or, on the vertical axis only, the enemy King (the
// flying-general face-off) or, from the adjacent point only, a Pawn that
// has crossed the river moving toward the king; the second piece hit may
// check as a Cannon screening
// over the first.
func (p *Position) rayAttacks(king Square, defender, attacker Color, df, dr int) bool {
	vertical := df == 0
	hits := 0
	for i := 1; ; i++ {
		f2, r2 := king.File()+df*i, king.Rank()+dr*i
		if f2 < 0 || f2 >= Files || r2 < 0 || r2 >= Ranks {
			return false
		}
		sq := NewSquare(f2, r2)
		pc := p.PieceAt(sq)
		if pc == NoPiece {
			continue
		}
		hits++
		if pc.Color() == attacker {
			switch hits {
			case 1:
				switch pc.Type() {
				case Rook:
					return true
				case King:
					if vertical {
						return true
					}
				case Pawn:
					// A pawn steps one point, so it only checks from
					// the adjacent point.
					if i > 1 {
						break
					}
					if !vertical {
						return true
					}
					// A pawn only ever attacks in its own forward
					// direction: Red moves toward rank 0, Black toward
					// rank 9.
					if (dr == 1 && attacker == Red) || (dr == -1 && attacker == Black) {
						return true
					}
				}
			case 2:
				if pc.Type() == Cannon {
					return true
				}
			}
		}
		if hits == 2 {
			return false
		}
	}
}

// horseSteps reversed: a horse at src attacks king if src is one of these
// eight squares relative to king and its leg is empty.
func (p *Position) horseAttacks(king Square, attacker Color) bool {
	for _, step := range horseSteps {
		df, dr := step[0][0], step[0][1]
		srcF, srcR := king.File()-df, king.Rank()-dr
		if srcF < 0 || srcF >= Files || srcR < 0 || srcR >= Ranks {
			continue
		}
		src := NewSquare(srcF, srcR)
		pc := p.PieceAt(src)
		if pc.Type() != Horse || pc.Color() != attacker {
			continue
		}
		legF, legR := srcF+step[1][0], srcR+step[1][1]
		if legF < 0 || legF >= Files || legR < 0 || legR >= Ranks {
			continue
		}
		if p.IsEmpty(NewSquare(legF, legR)) {
			return true
		}
	}
	return false
}
