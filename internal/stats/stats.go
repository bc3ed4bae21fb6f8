// Package stats renders a human-readable summary of one generated table:
// total positions, legal fraction, per-side win/draw/loss fractions, and
// the maximum distance-to-mate observed.
package stats

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/kvhoang/felicity-egtb/internal/name"
	"github.com/kvhoang/felicity-egtb/internal/score"
)

// SideSummary tallies one side-to-move stream's score kinds.
type SideSummary struct {
	Total  int
	Legal  int
	Wins   int
	Draws  int
	Losses int
	Other  int // perpetual symbols, missing, unknown, unset
}

func (s SideSummary) legalPct() float64 {
	if s.Total == 0 {
		return 0
	}
	return 100 * float64(s.Legal) / float64(s.Total)
}

func (s SideSummary) fraction(n int) float64 {
	if s.Legal == 0 {
		return 0
	}
	return 100 * float64(n) / float64(s.Legal)
}

// Report is the full per-name summary.
type Report struct {
	Name   string
	White  SideSummary
	Black  SideSummary
	DtmMax int16
}

func summarizeSide(cells []score.Score) SideSummary {
	var s SideSummary
	s.Total = len(cells)
	for _, c := range cells {
		switch {
		case c.Kind == score.Illegal:
			// not legal, not counted further
		case c.IsWin():
			s.Legal++
			s.Wins++
		case c.IsLoss():
			s.Legal++
			s.Losses++
		case c.Kind == score.Draw:
			s.Legal++
			s.Draws++
		default:
			s.Legal++
			s.Other++
		}
	}
	return s
}

// Summarize builds a Report from a generator's finished score streams:
// total positions, legal positions, and per-side win/draw/loss fractions.
func Summarize(rec name.Record, white, black []score.Score, dtmMax int16) Report {
	return Report{
		Name:   rec.String(),
		White:  summarizeSide(white),
		Black:  summarizeSide(black),
		DtmMax: dtmMax,
	}
}

// String renders the report the way a batch job's final summary line
// would be logged: one block per name, comma-grouped counts.
func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s positions (x2 sides), max DTM %d\n",
		r.Name, humanize.Comma(int64(r.White.Total+r.Black.Total)), r.DtmMax)
	writeSide(&b, "White to move", r.White)
	writeSide(&b, "Black to move", r.Black)
	return b.String()
}

func writeSide(b *strings.Builder, label string, s SideSummary) {
	fmt.Fprintf(b, "  %s: %s legal of %s (%.1f%%)\n",
		label, humanize.Comma(int64(s.Legal)), humanize.Comma(int64(s.Total)), s.legalPct())
	fmt.Fprintf(b, "    win %.1f%%  draw %.1f%%  loss %.1f%%", s.fraction(s.Wins), s.fraction(s.Draws), s.fraction(s.Losses))
	if s.Other > 0 {
		fmt.Fprintf(b, "  (%d undecided)", s.Other)
	}
	b.WriteString("\n")
}
