package name

import "github.com/kvhoang/felicity-egtb/internal/variant"

// SideMaterial is one side's non-king pieces, each group already sorted
// into canonical order (attackers by descending value/tie-break, then
// Xiangqi defenders by letter).
type SideMaterial struct {
	Attackers []byte // e.g. []byte{'q','r','r'}
	Defenders []byte // Xiangqi only, e.g. []byte{'a','a','b'}
}

// AttackerCount returns the number of attacker pieces (kings excluded).
func (s SideMaterial) AttackerCount() int { return len(s.Attackers) }

// TotalValue sums attacker + defender material value.
func (s SideMaterial) TotalValue(g variant.Game) int {
	a := alphabetFor(g)
	total := 0
	for _, l := range s.Attackers {
		total += a[l].value
	}
	for _, l := range s.Defenders {
		total += a[l].value
	}
	return total
}

// AttackerValue sums only attacker material value (used by strong-side
// tie-breaking).
func (s SideMaterial) AttackerValue(g variant.Game) int {
	a := alphabetFor(g)
	total := 0
	for _, l := range s.Attackers {
		total += a[l].value
	}
	return total
}

// letters renders the side back into its canonical substring, king first.
func (s SideMaterial) letters() string {
	b := make([]byte, 0, 1+len(s.Attackers)+len(s.Defenders))
	b = append(b, 'k')
	b = append(b, s.Attackers...)
	b = append(b, s.Defenders...)
	return string(b)
}

// Record is a fully parsed, validated, canonicalized endgame name: the
// strong side is always listed first.
type Record struct {
	Game   variant.Game
	Strong SideMaterial
	Weak   SideMaterial
}

// String renders the canonical name, e.g. "kraabbkaabb".
func (r Record) String() string {
	return r.Strong.letters() + r.Weak.letters()
}
