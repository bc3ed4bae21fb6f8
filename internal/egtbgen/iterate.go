package egtbgen

import (
	"context"
	"fmt"

	"github.com/kvhoang/felicity-egtb/internal/score"
	"github.com/kvhoang/felicity-egtb/internal/variant"
)

// iteratePhase is phase 2: repeat full passes over both score streams
// until two consecutive passes make zero changes.
func (g *gen) iteratePhase(ctx context.Context) error {
	size := int64(len(g.white))
	zeroStreak := 0

	for zeroStreak < 2 {
		var stepErr error
		changed := forEachShard(ctx, size, g.opts.workers(), func(lo, hi int64) int {
			n := 0
			for idx := lo; idx < hi; idx++ {
				for _, side := range [2]variant.Side{variant.White, variant.Black} {
					ok, err := g.stepOne(idx, side)
					if err != nil && stepErr == nil {
						stepErr = err
					}
					if ok {
						n++
					}
				}
			}
			return n
		})
		if stepErr != nil {
			return stepErr
		}

		g.loop++
		g.checkpoint(ctx)

		if changed == 0 {
			zeroStreak++
		} else {
			zeroStreak = 0
		}
	}
	return nil
}

// stepOne attempts to decide (idx, side); returns true iff it newly
// committed a score this pass.
func (g *gen) stepOne(idx int64, side variant.Side) (bool, error) {
	dst := scoresFor(side, g.white, g.black)
	if dst[idx].Kind != score.Unset {
		return false, nil
	}

	b, err := g.positionAt(idx, side)
	if err != nil {
		return false, nil // already ILLEGAL from phase 1; defensive no-op
	}
	moves := b.LegalMoves()

	var best score.Score
	haveBest := false
	allDecided := true

	for _, m := range moves {
		child, err := g.childOf(b, m)
		if err != nil {
			return false, fmt.Errorf("egtbgen: %s idx=%d: %w", g.rec.String(), idx, err)
		}
		if !child.IsDecided() {
			allDecided = false
			continue
		}
		candidate := child.Backpropagate()
		if !haveBest || score.Better(candidate, best) {
			best, haveBest = candidate, true
		}
	}

	if haveBest && best.IsWin() {
		dst[idx] = best
		return true, nil
	}
	if allDecided && haveBest {
		dst[idx] = best
		return true, nil
	}
	return false, nil
}

// childOf scores the position reached after m is played from b: read
// directly from this name's own streams when the move preserves the piece
// set, else delegate to the (already-complete) sub-table database.
func (g *gen) childOf(b variant.Board, m variant.Move) (score.Score, error) {
	changesSet := b.ChangesPieceSet(m)
	u := b.MakeMove(m)
	defer b.UnmakeMove(m, u)

	if changesSet {
		s, err := g.db.ScoreOrDrawIfMissing(b)
		if err != nil {
			return score.Score{}, fmt.Errorf("missing sub-table for capture/promotion: %w", err)
		}
		return s, nil
	}

	idx2, flip, err := g.codec.Forward(b)
	if err != nil {
		return score.Score{}, fmt.Errorf("re-indexing same-material child: %w", err)
	}
	childWhite := b.SideToMove() == variant.White
	if flip&variant.FlipVertical != 0 {
		childWhite = !childWhite
	}
	if childWhite {
		return g.white[idx2], nil
	}
	return g.black[idx2], nil
}
