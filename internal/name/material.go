package name

import "github.com/kvhoang/felicity-egtb/internal/variant"

// letterOrder fixes a stable per-variant letter order so piece counts pack
// into deterministic bit positions (kings excluded: every table implicitly
// has exactly one king per side).
func letterOrder(g variant.Game) []byte {
	if g == variant.Xiangqi {
		return []byte{'r', 'c', 'n', 'p', 'a', 'b'}
	}
	return []byte{'q', 'r', 'b', 'n', 'p'}
}

// LetterOrder exposes the canonical per-variant letter order used both to
// pack material signatures and to fix the index codec's group order.
func LetterOrder(g variant.Game) []byte { return letterOrder(g) }

// pack encodes up to 5 bits of count per letter (0-31 pieces, comfortably
// above any per-type cap) into a 32-bit word, one letter per 5-bit field.
func pack(g variant.Game, counts map[byte]int) uint32 {
	var v uint32
	for i, l := range letterOrder(g) {
		v |= uint32(counts[l]&0x1f) << uint(5*i)
	}
	return v
}

func countsOf(s SideMaterial) map[byte]int {
	m := map[byte]int{}
	for _, l := range s.Attackers {
		m[l]++
	}
	for _, l := range s.Defenders {
		m[l]++
	}
	return m
}

// Signature computes a table's material signature: the strong side's
// counts in the low 32 bits, the weak side's in the high 32 bits.
func Signature(g variant.Game, strong, weak SideMaterial) uint64 {
	return uint64(pack(g, countsOf(strong))) | uint64(pack(g, countsOf(weak)))<<32
}

// LiveSignatures computes the two possible table signatures for a live
// board's white/black piece counts: one assuming white is the strong side,
// one assuming black is. Comparing a table's Signature against both tells
// the prober which color is strong on this particular board without first
// running the full canonicalization rule.
func LiveSignatures(g variant.Game, whiteCounts, blackCounts map[byte]int) (asWhiteStrong, asBlackStrong uint64) {
	w, b := pack(g, whiteCounts), pack(g, blackCounts)
	return uint64(w) | uint64(b)<<32, uint64(b) | uint64(w)<<32
}
