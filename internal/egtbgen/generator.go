// Package egtbgen implements the retrograde table generator: sizing,
// initialization, forward fixed-point iteration, and finalization.
package egtbgen

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/kvhoang/felicity-egtb/internal/egtbdb"
	"github.com/kvhoang/felicity-egtb/internal/egtbkey"
	"github.com/kvhoang/felicity-egtb/internal/name"
	"github.com/kvhoang/felicity-egtb/internal/score"
	"github.com/kvhoang/felicity-egtb/internal/variant"
)

// Options configures one generation run.
type Options struct {
	Workers     int  // 0 selects runtime.NumCPU()
	NoTempFiles bool // disable checkpointing
	TempDir     string
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.NumCPU()
}

// Result is one completed name's two score streams, ready for
// egtbfile.WriteFile.
type Result struct {
	Name   string
	White  []score.Score
	Black  []score.Score
	DtmMax int16
}

// Generate runs phases 0-3 for rec against db, which must already contain
// every one of rec's sub-endgames fully built.
func Generate(ctx context.Context, rec name.Record, db *egtbdb.Db, newBoard func() variant.Board, opts Options) (*Result, error) {
	codec := egtbkey.New(rec, newBoard)
	size := codec.Size()
	if size <= 0 {
		return nil, fmt.Errorf("egtbgen: %s has empty index space", rec.String())
	}

	white := make([]score.Score, size)
	black := make([]score.Score, size)

	g := &gen{
		rec:      rec,
		codec:    codec,
		db:       db,
		newBoard: newBoard,
		white:    white,
		black:    black,
		opts:     opts,
	}

	if err := g.resume(ctx); err != nil {
		return nil, err
	}
	if g.loop == 0 {
		if err := g.initPhase(ctx); err != nil {
			return nil, fmt.Errorf("egtbgen: %s: init: %w", rec.String(), err)
		}
		g.checkpoint(ctx)
	}

	if err := g.iteratePhase(ctx); err != nil {
		return nil, fmt.Errorf("egtbgen: %s: iterate: %w", rec.String(), err)
	}

	dtmMax := g.finalize()

	return &Result{Name: rec.String(), White: white, Black: black, DtmMax: dtmMax}, nil
}

// gen holds the mutable state of one generation run (its own score
// streams, loop counter for checkpoint resumption).
type gen struct {
	rec      name.Record
	codec    *egtbkey.Codec
	db       *egtbdb.Db
	newBoard func() variant.Board
	white    []score.Score
	black    []score.Score
	opts     Options
	loop     int
}

// forEachShard partitions [0,n) into the configured worker count of
// contiguous, equal-sized ranges and runs fn over each concurrently. All
// goroutines share the same score arrays; writes stay race-free because
// each goroutine owns a disjoint range of destination indices. fn returns
// the number of cells it changed, and forEachShard sums that across every
// shard. Every shard is spawned through errgroup, including the first,
// rather than running one shard inline on the calling goroutine (see
// DESIGN.md).
func forEachShard(ctx context.Context, n int64, workers int, fn func(lo, hi int64) int) int {
	if workers < 1 {
		workers = 1
	}
	shard := (n + int64(workers) - 1) / int64(workers)
	if shard < 1 {
		shard = 1
	}

	var g errgroup.Group
	changed := make([]int, workers)
	for w := 0; w < workers; w++ {
		lo := int64(w) * shard
		if lo >= n {
			break
		}
		hi := lo + shard
		if hi > n {
			hi = n
		}
		w := w
		g.Go(func() error {
			changed[w] = fn(lo, hi)
			return nil
		})
	}
	g.Wait()

	total := 0
	for _, c := range changed {
		total += c
	}
	return total
}

// positionAt reconstructs the piece placement at idx with side assigned as
// the side to move (codec.Reverse always returns White to move by
// convention; phase 1/2 need both assignments independently).
func (g *gen) positionAt(idx int64, side variant.Side) (variant.Board, error) {
	b, err := g.codec.Reverse(idx)
	if err != nil {
		return nil, err
	}
	b.SetSideToMove(side)
	return b, nil
}

// legalAndSideLegal reports whether b (with its side to move already set)
// is a reachable position: the side NOT to move must not be in check.
func legalAndSideLegal(b variant.Board) bool {
	return !b.InCheck(b.SideToMove().Opposite())
}

func scoresFor(side variant.Side, white, black []score.Score) []score.Score {
	if side == variant.White {
		return white
	}
	return black
}
