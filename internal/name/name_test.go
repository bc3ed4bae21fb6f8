package name

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvhoang/felicity-egtb/internal/variant"
)

func TestParseChess(t *testing.T) {
	r, err := Parse(variant.Chess, "KQKR")
	require.NoError(t, err)
	assert.Equal(t, "kqkr", r.String())
	assert.Equal(t, SideMaterial{Attackers: []byte{'q'}}, r.Strong)
	assert.Equal(t, SideMaterial{Attackers: []byte{'r'}}, r.Weak)
}

func TestParseAcceptsEitherSideFirst(t *testing.T) {
	a, err := Parse(variant.Chess, "kqkr")
	require.NoError(t, err)
	b, err := Parse(variant.Chess, "krkq")
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())
}

func TestParseXiangqiDefenderOrder(t *testing.T) {
	r, err := Parse(variant.Xiangqi, "kaabbk")
	require.NoError(t, err)
	assert.Equal(t, "kaabbk", r.String())
}

func TestParseRejectsWrongKingCount(t *testing.T) {
	_, err := Parse(variant.Chess, "kqkrk")
	assert.ErrorIs(t, err, ErrWrongKingCount)

	_, err = Parse(variant.Chess, "qr")
	assert.ErrorIs(t, err, ErrWrongKingCount)
}

func TestParseRejectsBadChar(t *testing.T) {
	_, err := Parse(variant.Chess, "kxkr")
	assert.ErrorIs(t, err, ErrBadChar)
}

func TestParseRejectsUnsortedAttackers(t *testing.T) {
	_, err := Parse(variant.Chess, "krqk")
	assert.ErrorIs(t, err, ErrWrongOrder)
}

func TestParseRejectsOverflow(t *testing.T) {
	_, err := Parse(variant.Xiangqi, "kaaakr")
	assert.True(t, errors.Is(err, ErrDefenderOverflow) || errors.Is(err, ErrCountOverflow))
}

func TestCanonicalOrderPicksMoreAttackers(t *testing.T) {
	r, err := Parse(variant.Chess, "kqrkr")
	require.NoError(t, err)
	assert.Equal(t, 2, r.Strong.AttackerCount())
	assert.Equal(t, 1, r.Weak.AttackerCount())
}

func TestEnumerateSubsExcludesOriginal(t *testing.T) {
	rec, err := Parse(variant.Chess, "kqkr")
	require.NoError(t, err)
	subs := EnumerateSubs(rec)
	for _, s := range subs {
		assert.NotEqual(t, rec.String(), s.String())
	}
	assert.NotEmpty(t, subs)
}

func TestEnumerateSubsKQKHasNoStrongAttackerSubs(t *testing.T) {
	rec, err := Parse(variant.Chess, "kqk")
	require.NoError(t, err)
	subs := EnumerateSubs(rec)
	require.Len(t, subs, 1)
	assert.Equal(t, "kk", subs[0].String())
}

func TestCanonicalSubfolder(t *testing.T) {
	rec, err := Parse(variant.Chess, "kqrkr")
	require.NoError(t, err)
	assert.Equal(t, "2-1", CanonicalSubfolder(rec))

	rec2, err := Parse(variant.Chess, "kqk")
	require.NoError(t, err)
	assert.Equal(t, "1", CanonicalSubfolder(rec2))
}

func TestExpandProfileChess(t *testing.T) {
	recs, err := ExpandProfile(variant.Chess, "1")
	require.NoError(t, err)
	assert.NotEmpty(t, recs)
	for _, r := range recs {
		assert.Equal(t, 1, r.Strong.AttackerCount())
		assert.Equal(t, 0, r.Weak.AttackerCount())
	}
}

func TestExpandProfileChessSplit(t *testing.T) {
	recs, err := ExpandProfile(variant.Chess, "1-1")
	require.NoError(t, err)
	assert.NotEmpty(t, recs)
	for _, r := range recs {
		assert.Equal(t, 1, r.Strong.AttackerCount())
		assert.Equal(t, 1, r.Weak.AttackerCount())
	}
}

func TestExpandProfileBadInput(t *testing.T) {
	_, err := ExpandProfile(variant.Chess, "abc")
	assert.ErrorIs(t, err, ErrBadProfile)
}

func TestExpandProfileXiangqiIncludesDefenderCombos(t *testing.T) {
	recs, err := ExpandProfile(variant.Xiangqi, "1")
	require.NoError(t, err)
	found := false
	for _, r := range recs {
		if len(r.Strong.Defenders) == 4 {
			found = true
		}
	}
	assert.True(t, found, "expected a record with the full aabb defender combo")
}

func TestSignatureMatchesLiveCounts(t *testing.T) {
	rec, err := Parse(variant.Chess, "kqkr")
	require.NoError(t, err)
	sig := Signature(variant.Chess, rec.Strong, rec.Weak)

	whiteCounts := map[byte]int{'q': 1}
	blackCounts := map[byte]int{'r': 1}
	asWhiteStrong, asBlackStrong := LiveSignatures(variant.Chess, whiteCounts, blackCounts)
	assert.Equal(t, sig, asWhiteStrong)
	assert.NotEqual(t, sig, asBlackStrong)
}

func TestIsStrongSide(t *testing.T) {
	q := SideMaterial{Attackers: []byte{'q'}}
	r := SideMaterial{Attackers: []byte{'r'}}
	assert.True(t, IsStrongSide(variant.Chess, q, r))
	assert.False(t, IsStrongSide(variant.Chess, r, q))
}
