package name

import "github.com/kvhoang/felicity-egtb/internal/variant"

// pieceInfo describes one non-king letter: its material value (used only to
// pick the strong side and to order attackers within a side) and a
// tie-break rank among letters of equal value (lower sorts first).
type pieceInfo struct {
	value    int
	tieBreak int
	defender bool // xiangqi advisor/elephant: confined, not an "attacker"
}

// Chess material values follow conventional centipawn-ish weights; ties
// (bishop vs knight) break alphabetically, matching the glossary's
// "queen, rook, bishop, knight, pawn" attacker ordering.
var chessAlphabet = map[byte]pieceInfo{
	'q': {value: 900, tieBreak: 0},
	'r': {value: 500, tieBreak: 0},
	'b': {value: 300, tieBreak: 0},
	'n': {value: 300, tieBreak: 1},
	'p': {value: 100, tieBreak: 0},
}

// Xiangqi material values reuse original_source/src/fegtbgen/defs.h's
// VALUE_ROOK/VALUE_CANNON/VALUE_KNIGHT/VALUE_PAWN/VALUE_ELEPHANT/
// VALUE_ADVISOR constants directly. Defenders (a, b) are ordered by letter,
// not value, matching the conventional name spelling (e.g. "kaabb").
var xiangqiAlphabet = map[byte]pieceInfo{
	'r': {value: 1000, tieBreak: 0},
	'c': {value: 500, tieBreak: 0},
	'n': {value: 450, tieBreak: 0},
	'p': {value: 100, tieBreak: 0},
	'a': {value: 200, tieBreak: 0, defender: true},
	'b': {value: 250, tieBreak: 1, defender: true},
}

func alphabetFor(g variant.Game) map[byte]pieceInfo {
	if g == variant.Xiangqi {
		return xiangqiAlphabet
	}
	return chessAlphabet
}

// caps bound how many of one letter a single side may carry before parsing
// rejects the name as CountOverflow/DefenderOverflow.
func capFor(g variant.Game, letter byte) int {
	if g == variant.Xiangqi {
		switch letter {
		case 'p':
			return 5
		case 'a', 'b':
			return 2
		default:
			return 2
		}
	}
	// Chess: pawns bounded by the 8-per-side board maximum; promoted
	// pieces bounded loosely (an under-promoted/over-promoted army is
	// exotic but not illegal).
	if letter == 'p' {
		return 8
	}
	return 10
}
