// Package verify implements the two post-generation checks: key-space
// bijectivity and stored-score self-consistency.
package verify

import (
	"context"
	"fmt"

	"github.com/kvhoang/felicity-egtb/internal/egtbdb"
	"github.com/kvhoang/felicity-egtb/internal/egtbfile"
	"github.com/kvhoang/felicity-egtb/internal/egtbkey"
	"github.com/kvhoang/felicity-egtb/internal/name"
	"github.com/kvhoang/felicity-egtb/internal/score"
	"github.com/kvhoang/felicity-egtb/internal/variant"
)

// KeyMismatch describes one index whose reverse/forward round trip failed.
type KeyMismatch struct {
	Index int64
	Got   int64
	Err   error
}

// VerifyKeys iterates every index in rec's domain, reverses it, and checks
// that forwarding the resulting position recovers the same index. It runs sharded exactly like the generator's own
// passes.
func VerifyKeys(ctx context.Context, rec name.Record, newBoard func() variant.Board, workers int) ([]KeyMismatch, error) {
	codec := egtbkey.New(rec, newBoard)
	size := codec.Size()
	if workers < 1 {
		workers = 1
	}

	shard := (size + int64(workers) - 1) / int64(workers)
	if shard < 1 {
		shard = 1
	}

	results := make([][]KeyMismatch, workers)
	errCh := make(chan error, workers)
	done := make(chan struct{}, workers)

	for w := 0; w < workers; w++ {
		lo := int64(w) * shard
		if lo >= size {
			done <- struct{}{}
			continue
		}
		hi := lo + shard
		if hi > size {
			hi = size
		}
		w := w
		go func(lo, hi int64) {
			defer func() { done <- struct{}{} }()
			var mism []KeyMismatch
			for idx := lo; idx < hi; idx++ {
				b, err := codec.Reverse(idx)
				if err == egtbkey.ErrIllegalIndex {
					continue
				}
				if err != nil {
					mism = append(mism, KeyMismatch{Index: idx, Err: err})
					continue
				}
				got, _, err := codec.Forward(b)
				if err != nil {
					mism = append(mism, KeyMismatch{Index: idx, Err: err})
					continue
				}
				if got != idx {
					mism = append(mism, KeyMismatch{Index: idx, Got: got})
				}
			}
			results[w] = mism
		}(lo, hi)
	}
	for w := 0; w < workers; w++ {
		<-done
	}
	close(errCh)
	for err := range errCh {
		if err != nil {
			return nil, err
		}
	}

	var all []KeyMismatch
	for _, r := range results {
		all = append(all, r...)
	}
	return all, nil
}

// DataMismatch describes one stored cell whose recomputed one-ply
// lookahead value disagreed with what is on disk.
type DataMismatch struct {
	Index int64
	White bool
	Want  score.Score
	Got   score.Score
}

// VerifyData recomputes every stored cell's expected value by one-ply
// lookahead against already-built tables and compares it to what is
// stored, checking parity along the way (mate-for-mover distances must be
// odd, mated distances even). db must already have rec's own file (f)
// added, since a non-capturing child's score is looked up through db like
// any other same-material move.
func VerifyData(ctx context.Context, rec name.Record, db *egtbdb.Db, newBoard func() variant.Board, f *egtbfile.File) ([]DataMismatch, error) {
	codec := egtbkey.New(rec, newBoard)
	size := codec.Size()

	var mism []DataMismatch
	for idx := int64(0); idx < size; idx++ {
		b, err := codec.Reverse(idx)
		if err == egtbkey.ErrIllegalIndex {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("verify: %s idx=%d: %w", rec.String(), idx, err)
		}

		for _, white := range [2]bool{true, false} {
			side := variant.Black
			if white {
				side = variant.White
			}
			b.SetSideToMove(side)
			if b.InCheck(side.Opposite()) {
				continue
			}

			got, err := f.GetScore(idx, white)
			if err != nil {
				return nil, fmt.Errorf("verify: %s idx=%d side=%v: %w", rec.String(), idx, white, err)
			}
			if err := checkParity(got); err != nil {
				mism = append(mism, DataMismatch{Index: idx, White: white, Got: got})
				continue
			}

			want, err := recompute(b, db, rec.Game)
			if err != nil {
				return nil, fmt.Errorf("verify: %s idx=%d side=%v: %w", rec.String(), idx, white, err)
			}
			if want != got {
				mism = append(mism, DataMismatch{Index: idx, White: white, Want: want, Got: got})
			}
		}
	}
	return mism, nil
}

func checkParity(s score.Score) error {
	if s.Kind != score.Mate {
		return nil
	}
	if s.Plies > 0 && s.Plies%2 == 0 {
		return fmt.Errorf("verify: mate-for-mover distance %d should be odd", s.Plies)
	}
	if s.Plies < 0 && (-s.Plies)%2 != 0 {
		return fmt.Errorf("verify: mated distance %d should be even", -s.Plies)
	}
	return nil
}

// recompute derives b's expected score the same way the generator's phase
// 2 does, assuming every dependency is already correctly on disk.
func recompute(b variant.Board, db *egtbdb.Db, game variant.Game) (score.Score, error) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		switch {
		case b.InCheck(b.SideToMove()):
			return score.MatedIn(0), nil
		case game == variant.Xiangqi:
			// Stalemate is a loss for the side to move in Xiangqi.
			return score.MatedIn(0), nil
		default:
			return score.MkDraw(), nil
		}
	}

	var best score.Score
	haveBest := false
	for _, m := range moves {
		changesSet := b.ChangesPieceSet(m)
		u := b.MakeMove(m)
		var child score.Score
		var err error
		if changesSet {
			child, err = db.ScoreOrDrawIfMissing(b)
		} else {
			child, err = db.GetScore(b)
		}
		b.UnmakeMove(m, u)
		if err != nil {
			return score.Score{}, err
		}
		if !child.IsDecided() {
			continue
		}
		candidate := child.Backpropagate()
		if !haveBest || score.Better(candidate, best) {
			best, haveBest = candidate, true
		}
	}
	if !haveBest {
		return score.MkUnknown(), nil
	}
	return best, nil
}
