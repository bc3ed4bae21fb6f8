package name

import (
	"fmt"
	"strings"

	"github.com/kvhoang/felicity-egtb/internal/variant"
)

// Parse validates and canonicalizes an endgame name for the given game.
// The input may list either side first; Parse reorders so the strong side
// comes first.
func Parse(g variant.Game, raw string) (Record, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	alphabet := alphabetFor(g)

	if err := checkChars(g, s, alphabet); err != nil {
		return Record{}, err
	}

	kIdx := indicesOf(s, 'k')
	if len(kIdx) != 2 {
		return Record{}, fmt.Errorf("%w: found %d 'k' in %q, want 2", ErrWrongKingCount, len(kIdx), raw)
	}

	seg1, seg2 := s[:kIdx[1]], s[kIdx[1]:]

	side1, err := parseSide(g, seg1, alphabet)
	if err != nil {
		return Record{}, fmt.Errorf("name %q: %w", raw, err)
	}
	side2, err := parseSide(g, seg2, alphabet)
	if err != nil {
		return Record{}, fmt.Errorf("name %q: %w", raw, err)
	}

	strong, weak := canonicalOrder(g, side1, side2)
	return Record{Game: g, Strong: strong, Weak: weak}, nil
}

func checkChars(g variant.Game, s string, alphabet map[byte]pieceInfo) error {
	if s == "" {
		return fmt.Errorf("%w: empty name", ErrBadChar)
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == 'k' {
			continue
		}
		if _, ok := alphabet[c]; !ok {
			return fmt.Errorf("%w: %q not a valid %s piece letter", ErrBadChar, string(c), g)
		}
	}
	return nil
}

func indicesOf(s string, c byte) []int {
	var out []int
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			out = append(out, i)
		}
	}
	return out
}

// parseSide validates one side's segment (starting with its single 'k')
// and returns its sorted attacker/defender groups.
func parseSide(g variant.Game, seg string, alphabet map[byte]pieceInfo) (SideMaterial, error) {
	if len(seg) == 0 || seg[0] != 'k' {
		return SideMaterial{}, fmt.Errorf("%w: side segment %q must start with 'k'", ErrWrongOrder, seg)
	}
	body := seg[1:]
	if strings.ContainsRune(body, 'k') {
		return SideMaterial{}, fmt.Errorf("%w: side segment %q has more than one king", ErrWrongKingCount, seg)
	}

	counts := map[byte]int{}
	var attackers, defenders []byte
	seenDefender := false

	for i := 0; i < len(body); i++ {
		c := body[i]
		info := alphabet[c]
		counts[c]++
		if info.defender {
			seenDefender = true
			defenders = append(defenders, c)
		} else {
			if seenDefender {
				return SideMaterial{}, fmt.Errorf("%w: attacker %q listed after a defender in %q", ErrWrongOrder, string(c), seg)
			}
			attackers = append(attackers, c)
		}
	}

	for c, n := range counts {
		cap := capFor(g, c)
		if alphabet[c].defender {
			if n > cap {
				return SideMaterial{}, fmt.Errorf("%w: %d '%c' exceeds cap %d", ErrDefenderOverflow, n, c, cap)
			}
		} else if n > cap {
			return SideMaterial{}, fmt.Errorf("%w: %d '%c' exceeds cap %d", ErrCountOverflow, n, c, cap)
		}
	}

	if !isSorted(attackers, alphabet) {
		return SideMaterial{}, fmt.Errorf("%w: attackers %q not in descending value order", ErrWrongOrder, string(attackers))
	}
	if !isSortedDefenders(defenders) {
		return SideMaterial{}, fmt.Errorf("%w: defenders %q not in canonical order", ErrWrongOrder, string(defenders))
	}

	return SideMaterial{Attackers: attackers, Defenders: defenders}, nil
}

func isSorted(letters []byte, alphabet map[byte]pieceInfo) bool {
	for i := 1; i < len(letters); i++ {
		a, b := alphabet[letters[i-1]], alphabet[letters[i]]
		if a.value < b.value {
			return false
		}
		if a.value == b.value && a.tieBreak > b.tieBreak {
			return false
		}
	}
	return true
}

func isSortedDefenders(letters []byte) bool {
	for i := 1; i < len(letters); i++ {
		if letters[i-1] > letters[i] {
			return false
		}
	}
	return true
}
