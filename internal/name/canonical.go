package name

import "github.com/kvhoang/felicity-egtb/internal/variant"

// canonicalOrder applies the strong-side rule: (1) more attackers wins;
// (2) greater sum of attacker material value; (3) greater total material;
// (4) lexicographic piece order (by canonical letters string, the final
// tie-break when everything else is equal).
func canonicalOrder(g variant.Game, a, b SideMaterial) (strong, weak SideMaterial) {
	if isStronger(g, a, b) {
		return a, b
	}
	return b, a
}

// isStronger reports whether a outranks b under the four-level comparison.
func isStronger(g variant.Game, a, b SideMaterial) bool {
	if a.AttackerCount() != b.AttackerCount() {
		return a.AttackerCount() > b.AttackerCount()
	}
	if av, bv := a.AttackerValue(g), b.AttackerValue(g); av != bv {
		return av > bv
	}
	if at, bt := a.TotalValue(g), b.TotalValue(g); at != bt {
		return at > bt
	}
	return a.letters() > b.letters()
}

// IsStrongSide reports, for a live board's two piece lists, whether side a
// (as parsed into SideMaterial) is the strong side under the same rule the
// prober must apply before indexing.
func IsStrongSide(g variant.Game, a, b SideMaterial) bool {
	return isStronger(g, a, b)
}
