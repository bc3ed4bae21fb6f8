package egtbkey

import "github.com/kvhoang/felicity-egtb/internal/variant"

// domainFor returns the sorted candidate squares a non-king piece of this
// letter may occupy once the board has been normalized to canonical
// orientation (strong side always White/Red). Xiangqi defenders (a, b)
// are confined to their side's palace/home half; every other letter's
// domain is the whole board, trading some table-specific compaction for a
// codec that needs no per-table magic constants.
func domainFor(g variant.Game, letter byte, strong bool) []int {
	if g != variant.Xiangqi {
		if letter == 'p' {
			return chessPawnDomain()
		}
		return fullDomain(64)
	}

	switch letter {
	case 'a':
		return xiangqiPalace(strong)
	case 'b':
		return xiangqiOwnHalf(strong)
	default:
		return fullDomain(90)
	}
}

func fullDomain(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func chessPawnDomain() []int {
	var out []int
	for sq := 0; sq < 64; sq++ {
		rank := sq / 8
		if rank >= 1 && rank <= 6 {
			out = append(out, sq)
		}
	}
	return out
}

// xiangqiPalace lists the 9 squares of the strong side's (Red, ranks 7-9)
// or weak side's (Black, ranks 0-2) palace, files 3-5.
func xiangqiPalace(strong bool) []int {
	var out []int
	for sq := 0; sq < 90; sq++ {
		file, rank := sq%9, sq/9
		if file < 3 || file > 5 {
			continue
		}
		if (strong && rank >= 7) || (!strong && rank <= 2) {
			out = append(out, sq)
		}
	}
	return out
}

func xiangqiOwnHalf(strong bool) []int {
	var out []int
	for sq := 0; sq < 90; sq++ {
		rank := sq / 9
		if (strong && rank >= 5) || (!strong && rank <= 4) {
			out = append(out, sq)
		}
	}
	return out
}
