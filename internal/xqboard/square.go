package xqboard

import "fmt"

// Square indexes one of the 90 points on the 9-file, 10-rank board:
// index = rank*9 + file, rank 0 at Black's back edge, rank 9 at Red's.
type Square int8

const NoSquare Square = 90

const (
	Files = 9
	Ranks = 10
)

func NewSquare(file, rank int) Square { return Square(rank*Files + file) }

func (sq Square) File() int { return int(sq) % Files }
func (sq Square) Rank() int { return int(sq) / Files }

func (sq Square) IsValid() bool { return sq >= 0 && sq < Square(Files*Ranks) }

func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+sq.File(), sq.Rank())
}

// riverCrossed reports whether a piece of color c standing at sq has
// crossed the river dividing the board's two halves (own home: ranks 0-4
// for Black, 5-9 for Red).
func riverCrossed(sq Square, c Color) bool {
	if c == Black {
		return sq.Rank() >= 5
	}
	return sq.Rank() <= 4
}

// inPalace reports whether sq lies within c's 3x3 palace, the only
// squares the king and advisors may occupy.
func inPalace(sq Square, c Color) bool {
	f := sq.File()
	if f < 3 || f > 5 {
		return false
	}
	r := sq.Rank()
	if c == Black {
		return r >= 0 && r <= 2
	}
	return r >= 7 && r <= 9
}

// inOwnHalf reports whether sq is on c's own side of the river, the
// elephant's confinement.
func inOwnHalf(sq Square, c Color) bool {
	if c == Black {
		return sq.Rank() <= 4
	}
	return sq.Rank() >= 5
}
