package name

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/kvhoang/felicity-egtb/internal/variant"
)

// ErrBadProfile is returned when a CLI profile selector doesn't parse as
// "N" or "N-M".
var ErrBadProfile = fmt.Errorf("name: profile must be \"N\" or \"N-M\"")

// ExpandProfile turns a numeric profile selector such as "3" (three
// strong-side attackers, weak side without attackers) or "2-1" (exactly two
// strong-side attackers against one weak-side attacker) into every
// canonical Record it denotes, for the generator's -n flag.
func ExpandProfile(g variant.Game, profile string) ([]Record, error) {
	strongN, weakN, err := parseProfile(profile)
	if err != nil {
		return nil, err
	}

	attackerLetters := attackersOf(g)
	defenders := defenderCombos(g)

	seen := map[string]Record{}
	for _, strongAtk := range multisetsOfSize(g, attackerLetters, strongN) {
		for _, weakAtk := range multisetsOfSize(g, attackerLetters, weakN) {
			for _, strongDef := range defenders {
				for _, weakDef := range defenders {
					a := SideMaterial{Attackers: strongAtk, Defenders: strongDef}
					b := SideMaterial{Attackers: weakAtk, Defenders: weakDef}
					strong, weak := canonicalOrder(g, a, b)
					r := Record{Game: g, Strong: strong, Weak: weak}
					seen[r.String()] = r
				}
			}
		}
	}

	out := make([]Record, 0, len(seen))
	for _, r := range seen {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out, nil
}

// parseProfile accepts either "N" (weak side has no attackers) or "N-M".
func parseProfile(profile string) (strongN, weakN int, err error) {
	parts := strings.Split(strings.TrimSpace(profile), "-")
	switch len(parts) {
	case 1:
		strongN, err = strconv.Atoi(parts[0])
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrBadProfile, profile)
		}
	case 2:
		strongN, err = strconv.Atoi(parts[0])
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrBadProfile, profile)
		}
		weakN, err = strconv.Atoi(parts[1])
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrBadProfile, profile)
		}
	default:
		return 0, 0, fmt.Errorf("%w: %q", ErrBadProfile, profile)
	}
	if strongN < weakN {
		strongN, weakN = weakN, strongN
	}
	return strongN, weakN, nil
}

func attackersOf(g variant.Game) []byte {
	var out []byte
	for l, info := range alphabetFor(g) {
		if !info.defender {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// multisetsOfSize enumerates every combination-with-repetition of size n
// drawn from letters, each letter bounded by its per-side cap, and returns
// each combination already in canonical (descending value) attacker order.
func multisetsOfSize(g variant.Game, letters []byte, n int) [][]byte {
	if n == 0 {
		return [][]byte{nil}
	}
	alphabet := alphabetFor(g)
	var out [][]byte

	var rec func(start, remaining int, cur map[byte]int)
	rec = func(start, remaining int, cur map[byte]int) {
		if remaining == 0 {
			out = append(out, expandCounts(cur, alphabet))
			return
		}
		if start == len(letters) {
			return
		}
		l := letters[start]
		cap := capFor(g, l)
		for k := 0; k <= remaining && k <= cap; k++ {
			if k > 0 {
				cur[l] = k
			}
			rec(start+1, remaining-k, cur)
			delete(cur, l)
		}
	}
	rec(0, n, map[byte]int{})
	return out
}

func expandCounts(counts map[byte]int, alphabet map[byte]pieceInfo) []byte {
	letters := make([]byte, 0, len(counts))
	for l := range counts {
		letters = append(letters, l)
	}
	sort.Slice(letters, func(i, j int) bool {
		ai, aj := alphabet[letters[i]], alphabet[letters[j]]
		if ai.value != aj.value {
			return ai.value > aj.value
		}
		return ai.tieBreak < aj.tieBreak
	})
	var out []byte
	for _, l := range letters {
		for i := 0; i < counts[l]; i++ {
			out = append(out, l)
		}
	}
	return out
}

// defenderCombos lists the nine canonical xiangqi advisor/elephant
// combinations a side may carry (original_source's EGTB_IDX_DK/DA/DB/DAA/
// DBB/DAB/DAAB/DABB/DAABB), or a single empty combo for chess.
func defenderCombos(g variant.Game) [][]byte {
	if g != variant.Xiangqi {
		return [][]byte{nil}
	}
	return [][]byte{
		nil,
		{'a'},
		{'b'},
		{'a', 'a'},
		{'b', 'b'},
		{'a', 'b'},
		{'a', 'a', 'b'},
		{'a', 'b', 'b'},
		{'a', 'a', 'b', 'b'},
	}
}
