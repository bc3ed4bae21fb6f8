// Package egtbdb implements the table collection: folder discovery,
// name-to-file maps, and recursive probing across sub-tables.
package egtbdb

import (
	"errors"
	"fmt"
	"sync"

	"github.com/kvhoang/felicity-egtb/internal/egtbfile"
	"github.com/kvhoang/felicity-egtb/internal/egtbkey"
	"github.com/kvhoang/felicity-egtb/internal/name"
	"github.com/kvhoang/felicity-egtb/internal/score"
	"github.com/kvhoang/felicity-egtb/internal/variant"
)

// ErrMissing is returned when Probe needs a sub-table that is not present
// on disk and the resulting position still has attackers.
var ErrMissing = fmt.Errorf("egtbdb: required sub-table is missing")

// Db owns every loaded table for one variant, indexed only by each name's
// canonical string; no entry is made under the strong/weak-swapped string.
type Db struct {
	Game     variant.Game
	NewBoard func() variant.Board
	Mode     egtbfile.MemMode
	Cache    *egtbfile.BlockCache

	mu      sync.RWMutex
	files   map[string]*egtbfile.File
	codecs  map[string]*egtbkey.Codec
}

// New builds an empty Db for one variant.
func New(g variant.Game, newBoard func() variant.Board, mode egtbfile.MemMode, cache *egtbfile.BlockCache) *Db {
	return &Db{
		Game:     g,
		NewBoard: newBoard,
		Mode:     mode,
		Cache:    cache,
		files:    map[string]*egtbfile.File{},
		codecs:   map[string]*egtbkey.Codec{},
	}
}

// Add registers f under its own name, merging into any existing entry for
// the same name.
func (db *Db) Add(f *egtbfile.File) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if existing, ok := db.files[f.Name]; ok {
		existing.Merge(f)
		return
	}
	db.files[f.Name] = f
}

// Lookup returns the file registered under name, if any.
func (db *Db) Lookup(nm string) (*egtbfile.File, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	f, ok := db.files[nm]
	return f, ok
}

// codecFor returns (building and caching on first use) the index codec for
// rec.
func (db *Db) codecFor(rec name.Record) *egtbkey.Codec {
	key := rec.String()
	db.mu.RLock()
	c, ok := db.codecs[key]
	db.mu.RUnlock()
	if ok {
		return c
	}
	db.mu.Lock()
	defer db.mu.Unlock()
	if c, ok := db.codecs[key]; ok {
		return c
	}
	c = egtbkey.New(rec, db.NewBoard)
	db.codecs[key] = c
	return c
}

// recordFor derives the canonical Record for the live material on b.
func (db *Db) recordFor(b variant.Board) name.Record {
	whiteCounts, blackCounts := map[byte]int{}, map[byte]int{}
	for _, p := range b.Pieces() {
		if p.Letter == 'k' {
			continue
		}
		if p.Side == variant.White {
			whiteCounts[p.Letter]++
		} else {
			blackCounts[p.Letter]++
		}
	}
	return name.FromCounts(db.Game, whiteCounts, blackCounts)
}

// GetScore looks up the score of the live position on b: its own name's
// table, forward-indexed and side-corrected for whatever flip normalized
// it into canonical form.
func (db *Db) GetScore(b variant.Board) (score.Score, error) {
	rec := db.recordFor(b)
	codec := db.codecFor(rec)

	idx, flip, err := codec.Forward(b)
	if err != nil {
		return score.Score{}, err
	}
	f, ok := db.Lookup(rec.String())
	if !ok {
		return score.Score{}, fmt.Errorf("%w: %s", ErrMissing, rec.String())
	}

	white := b.SideToMove() == variant.White
	if flip&variant.FlipVertical != 0 {
		white = !white
	}
	return f.GetScore(idx, white)
}

// countAttackers reports whether b has any attacking (non-king) piece left
// for either side, used to distinguish a genuinely missing sub-table from
// one that was never generated because the position is trivially drawn.
func countAttackers(b variant.Board) int {
	n := 0
	for _, p := range b.Pieces() {
		if p.Letter != 'k' {
			n++
		}
	}
	return n
}

// PlyMove is one step of a probed mating line.
type PlyMove struct {
	Move  variant.Move
	Label string
	Score score.Score // score of the position *after* this move, from the mover's own perspective reversed (i.e. as the opponent now sees it)
}

// Probe returns the sequence of moves to mate from b's current position,
// following the line a `Better`-maximizing player would play at every ply,
// terminating at mate or a drawn/lost terminal node.
func (db *Db) Probe(b variant.Board) ([]PlyMove, score.Score, error) {
	cur, err := db.GetScore(b)
	if err != nil {
		return nil, score.Score{}, err
	}
	if cur.Kind != score.Mate {
		return nil, cur, nil
	}

	var line []PlyMove
	board := b.Clone()
	s := cur
	for s.Kind == score.Mate && s.Plies != 0 {
		moves := board.LegalMoves()
		if len(moves) == 0 {
			break
		}
		wantParent := s
		var chosen variant.Move
		var chosenChild score.Score
		found := false
		for _, m := range moves {
			u := board.MakeMove(m)
			child, err := db.childScore(board)
			board.UnmakeMove(m, u)
			if err != nil {
				continue
			}
			if child.Backpropagate() == wantParent {
				chosen, chosenChild, found = m, child, true
				break
			}
		}
		if !found {
			return line, s, fmt.Errorf("egtbdb: no legal move realizes score %v", s)
		}

		board.MakeMove(chosen)
		line = append(line, PlyMove{Move: chosen, Label: labelOf(chosen), Score: chosenChild})
		s = chosenChild
	}
	return line, cur, nil
}

// childScore scores board's current position: via its own name's table
// regardless of whether the move that reached it changed the piece set,
// since GetScore re-derives the material name on every call -- falling
// back to DRAW only when the table is missing and no attackers remain.
func (db *Db) childScore(board variant.Board) (score.Score, error) {
	return db.ScoreOrDrawIfMissing(board)
}

// ScoreOrDrawIfMissing is GetScore, but a missing sub-table is treated as
// DRAW when board has no remaining attackers instead of surfacing
// ErrMissing -- the generator's phase 2 needs exactly this rule for
// capture/promotion children that land in an unbuilt, materially dead
// sub-table.
func (db *Db) ScoreOrDrawIfMissing(board variant.Board) (score.Score, error) {
	s, err := db.GetScore(board)
	if err != nil {
		if errors.Is(err, ErrMissing) && countAttackers(board) == 0 {
			return score.MkDraw(), nil
		}
		return score.Score{}, err
	}
	return s, nil
}

func labelOf(m variant.Move) string {
	if s, ok := m.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", m)
}
