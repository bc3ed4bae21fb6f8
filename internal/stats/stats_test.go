package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvhoang/felicity-egtb/internal/name"
	"github.com/kvhoang/felicity-egtb/internal/score"
	"github.com/kvhoang/felicity-egtb/internal/variant"
)

func TestSummarizeCountsKinds(t *testing.T) {
	white := []score.Score{
		score.MkIllegal(),
		score.MkDraw(),
		score.MateIn(3),
		score.MatedIn(2),
		score.MkUnknown(),
	}
	black := []score.Score{
		score.MkIllegal(),
		score.MkIllegal(),
		score.MateIn(1),
	}

	rec, err := name.Parse(variant.Chess, "kqk")
	require.NoError(t, err)

	r := Summarize(rec, white, black, 3)
	assert.Equal(t, "kqk", r.Name)
	assert.Equal(t, int16(3), r.DtmMax)

	assert.Equal(t, 5, r.White.Total)
	assert.Equal(t, 4, r.White.Legal)
	assert.Equal(t, 1, r.White.Wins)
	assert.Equal(t, 1, r.White.Losses)
	assert.Equal(t, 1, r.White.Draws)
	assert.Equal(t, 1, r.White.Other)

	assert.Equal(t, 3, r.Black.Total)
	assert.Equal(t, 1, r.Black.Legal)
	assert.Equal(t, 1, r.Black.Wins)
}

func TestReportStringIncludesName(t *testing.T) {
	rec, err := name.Parse(variant.Chess, "kk")
	require.NoError(t, err)

	r := Summarize(rec, []score.Score{score.MkDraw()}, []score.Score{score.MkDraw()}, 0)
	out := r.String()
	assert.Contains(t, out, "kk:")
	assert.Contains(t, out, "White to move")
	assert.Contains(t, out, "Black to move")
}
