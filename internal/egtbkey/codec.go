// Package egtbkey implements the bijective mapping between a canonical
// board position and a dense table index, generic
// over both supported variants behind variant.Board.
package egtbkey

import (
	"fmt"
	"sort"

	"github.com/kvhoang/felicity-egtb/internal/name"
	"github.com/kvhoang/felicity-egtb/internal/variant"
)

// ErrIllegalIndex is returned by Reverse when an index decodes into a
// square collision: two pieces landing on the same square. Such indices
// are legitimately unused slots.
var ErrIllegalIndex = fmt.Errorf("egtbkey: index decodes to an illegal position")

type kingPair struct{ strong, weak int }

type group struct {
	strong bool
	letter byte
	count  int
	domain []int
}

func (g group) size() int64 { return binomial(len(g.domain), g.count) }

// Codec is the forward/reverse bijection for one canonical endgame name.
type Codec struct {
	game     variant.Game
	rec      name.Record
	newBoard func() variant.Board

	kingPairs []kingPair
	groups    []group
	sig       uint64
}

// New precomputes a Codec for rec, given a constructor for a fresh, empty
// board of the matching variant (chessboard.NewAdapter or
// xqboard.NewAdapter, injected so this package never imports either).
func New(rec name.Record, newBoard func() variant.Board) *Codec {
	c := &Codec{game: rec.Game, rec: rec, newBoard: newBoard}
	c.sig = name.Signature(rec.Game, rec.Strong, rec.Weak)

	anchors := anchorDomain(newBoard, rec.Game)
	n := SquareCount(rec.Game)
	for _, s := range anchors {
		for w := 0; w < n; w++ {
			if w == s {
				continue
			}
			c.kingPairs = append(c.kingPairs, kingPair{strong: s, weak: w})
		}
	}
	sort.Slice(c.kingPairs, func(i, j int) bool {
		a, b := c.kingPairs[i], c.kingPairs[j]
		if a.strong != b.strong {
			return a.strong < b.strong
		}
		return a.weak < b.weak
	})

	for _, l := range name.LetterOrder(rec.Game) {
		if n := countLetter(rec.Strong, l); n > 0 {
			c.groups = append(c.groups, group{strong: true, letter: l, count: n, domain: domainFor(rec.Game, l, true)})
		}
		if n := countLetter(rec.Weak, l); n > 0 {
			c.groups = append(c.groups, group{strong: false, letter: l, count: n, domain: domainFor(rec.Game, l, false)})
		}
	}
	return c
}

func countLetter(s name.SideMaterial, l byte) int {
	n := 0
	for _, x := range s.Attackers {
		if x == l {
			n++
		}
	}
	for _, x := range s.Defenders {
		if x == l {
			n++
		}
	}
	return n
}

// Size returns the total dense index range for this name: one past the
// largest valid index.
func (c *Codec) Size() int64 {
	total := int64(len(c.kingPairs))
	for _, g := range c.groups {
		total *= g.size()
	}
	return total
}

// sideFlip is the flip that normalizes whichever color currently holds
// rec.Strong's material onto White/Red, so every later step works in a
// single fixed orientation.
func (c *Codec) sideFlip(b variant.Board) (variant.FlipMode, error) {
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
	asWhiteStrong, asBlackStrong := name.LiveSignatures(c.game, whiteCounts, blackCounts)
	switch c.sig {
	case asWhiteStrong:
		return variant.FlipNone, nil
	case asBlackStrong:
		return variant.FlipVertical, nil
	default:
		return 0, fmt.Errorf("egtbkey: board material does not match name %q", c.rec.String())
	}
}

// Forward maps a live board into its dense index plus the flip that was
// applied to reach canonical form, so the caller can translate the score
// cell's side back to the board's actual side to move.
func (c *Codec) Forward(b variant.Board) (idx int64, flip variant.FlipMode, err error) {
	sf, err := c.sideFlip(b)
	if err != nil {
		return 0, 0, err
	}

	canon := b.Clone()
	canon.Flip(sf)

	strongKing, weakKing := -1, -1
	bySide := map[bool]map[byte][]int{true: {}, false: {}}
	for _, p := range canon.Pieces() {
		strong := p.Side == variant.White
		if p.Letter == 'k' {
			if strong {
				strongKing = int(p.Square)
			} else {
				weakKing = int(p.Square)
			}
			continue
		}
		bySide[strong][p.Letter] = append(bySide[strong][p.Letter], int(p.Square))
	}
	if strongKing < 0 || weakKing < 0 {
		return 0, 0, fmt.Errorf("egtbkey: board is missing a king")
	}

	hf := variant.FlipNone
	if flipSquare(c.newBoard, strongKing, variant.FlipHorizontal) < strongKing {
		hf = variant.FlipHorizontal
		strongKing = flipSquare(c.newBoard, strongKing, variant.FlipHorizontal)
		weakKing = flipSquare(c.newBoard, weakKing, variant.FlipHorizontal)
		for _, m := range bySide {
			for l, squares := range m {
				for i, s := range squares {
					squares[i] = flipSquare(c.newBoard, s, variant.FlipHorizontal)
				}
				m[l] = squares
			}
		}
	}

	kpIdx := sort.Search(len(c.kingPairs), func(i int) bool {
		kp := c.kingPairs[i]
		if kp.strong != strongKing {
			return kp.strong >= strongKing
		}
		return kp.weak >= weakKing
	})
	if kpIdx >= len(c.kingPairs) || c.kingPairs[kpIdx] != (kingPair{strongKing, weakKing}) {
		return 0, 0, fmt.Errorf("egtbkey: king pair (%d,%d) not in canonical domain", strongKing, weakKing)
	}

	acc := int64(kpIdx)
	for _, g := range c.groups {
		squares := append([]int(nil), bySide[g.strong][g.letter]...)
		if len(squares) != g.count {
			return 0, 0, fmt.Errorf("egtbkey: expected %d %q pieces, found %d", g.count, string(g.letter), len(squares))
		}
		sort.Ints(squares)
		idxInDomain := make([]int, len(squares))
		for i, s := range squares {
			pos := sort.SearchInts(g.domain, s)
			if pos >= len(g.domain) || g.domain[pos] != s {
				return 0, 0, fmt.Errorf("egtbkey: square %d not in domain for %q", s, string(g.letter))
			}
			idxInDomain[i] = pos
		}
		digit := rankCombination(idxInDomain, len(g.domain))
		acc = acc*g.size() + digit
	}

	return acc, sf.Compose(hf), nil
}

// Reverse decodes idx into a fresh canonical-orientation board (strong
// side always White/Red, per the fixed convention Forward's flip
// undoes). Returns ErrIllegalIndex if idx decodes to a square collision.
func (c *Codec) Reverse(idx int64) (variant.Board, error) {
	if idx < 0 || idx >= c.Size() {
		return nil, fmt.Errorf("egtbkey: index %d out of range [0,%d)", idx, c.Size())
	}

	digits := make([]int64, len(c.groups))
	for i := len(c.groups) - 1; i >= 0; i-- {
		sz := c.groups[i].size()
		digits[i] = idx % sz
		idx /= sz
	}
	kpIdx := int(idx)
	kp := c.kingPairs[kpIdx]

	b := c.newBoard()
	occupied := map[int]bool{kp.strong: true, kp.weak: true}
	b.Put(variant.Piece{Square: int8(kp.strong), Letter: 'k', Side: variant.White})
	b.Put(variant.Piece{Square: int8(kp.weak), Letter: 'k', Side: variant.Black})

	for i, g := range c.groups {
		idxInDomain := unrankCombination(digits[i], len(g.domain), g.count)
		side := variant.Black
		if g.strong {
			side = variant.White
		}
		for _, di := range idxInDomain {
			sq := g.domain[di]
			if occupied[sq] {
				return nil, ErrIllegalIndex
			}
			occupied[sq] = true
			b.Put(variant.Piece{Square: int8(sq), Letter: g.letter, Side: side})
		}
	}

	b.SetSideToMove(variant.White)
	return b, nil
}
