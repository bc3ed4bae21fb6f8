package egtbgen

import (
	"context"

	"github.com/kvhoang/felicity-egtb/internal/score"
	"github.com/kvhoang/felicity-egtb/internal/variant"
)

// initPhase is phase 1: classify every (idx, side) as ILLEGAL, a terminal
// MATE/DRAW (no legal moves), or UNSET.
func (g *gen) initPhase(ctx context.Context) error {
	size := int64(len(g.white))
	forEachShard(ctx, size, g.opts.workers(), func(lo, hi int64) int {
		for idx := lo; idx < hi; idx++ {
			g.initOne(idx, variant.White)
			g.initOne(idx, variant.Black)
		}
		return 0
	})
	return nil
}

func (g *gen) initOne(idx int64, side variant.Side) {
	dst := scoresFor(side, g.white, g.black)

	b, err := g.positionAt(idx, side)
	if err != nil {
		dst[idx] = score.MkIllegal()
		return
	}
	if !legalAndSideLegal(b) {
		dst[idx] = score.MkIllegal()
		return
	}

	moves := b.LegalMoves()
	if len(moves) > 0 {
		dst[idx] = score.MkUnset()
		return
	}

	inCheck := b.InCheck(side)
	switch {
	case inCheck:
		dst[idx] = score.MatedIn(0)
	case g.rec.Game == variant.Xiangqi:
		// Stalemate is a loss for the side to move in Xiangqi.
		dst[idx] = score.MatedIn(0)
	default:
		dst[idx] = score.MkDraw()
	}
}
