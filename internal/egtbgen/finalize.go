package egtbgen

import "github.com/kvhoang/felicity-egtb/internal/score"

// finalize is phase 3: every remaining UNSET cell is a position where
// neither side can force progress, hence DRAW; returns the maximum mate
// distance observed.
func (g *gen) finalize() int16 {
	var dtmMax int16
	finish := func(s []score.Score) {
		for i, c := range s {
			if c.Kind == score.Unset {
				s[i] = score.MkDraw()
				continue
			}
			if c.Kind == score.Mate {
				d := c.Plies
				if d < 0 {
					d = -d
				}
				if d > dtmMax {
					dtmMax = d
				}
			}
		}
	}
	finish(g.white)
	finish(g.black)
	return dtmMax
}
