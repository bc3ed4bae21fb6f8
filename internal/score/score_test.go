package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode1RoundTrip(t *testing.T) {
	cases := []Score{
		MkIllegal(), MkUnset(), MkMissing(), MkUnknown(), MkDraw(),
		MkPerpetualChecked(), MkPerpetualEvasion(), MkPerpetualCheckedEvasion(),
		MateIn(1), MateIn(50), MatedIn(0), MatedIn(80),
	}
	for _, s := range cases {
		b, err := Encode1(s)
		require.NoError(t, err)
		assert.Equal(t, s, Decode1(b))
	}
}

func TestEncode1OverflowFallsBackToError(t *testing.T) {
	_, err := Encode1(MateIn(int16(MaxMatePlies1Byte + 1)))
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestEncode2RoundTrip(t *testing.T) {
	cases := []Score{
		MkIllegal(), MkDraw(), MateIn(1), MateIn(int16(MaxMatePlies2Byte)), MatedIn(200),
		MkPerpetualChecked(), MkPerpetualEvasion(), MkPerpetualCheckedEvasion(),
	}
	for _, s := range cases {
		b, err := Encode2(s)
		require.NoError(t, err)
		assert.Equal(t, s, Decode2(b))
	}
}

func TestBackpropagateMate(t *testing.T) {
	child := MateIn(3)
	parent := child.Backpropagate()
	assert.Equal(t, MatedIn(4), parent)
}

func TestBetterPrefersShorterMate(t *testing.T) {
	assert.True(t, Better(MateIn(2), MateIn(5)))
	assert.False(t, Better(MateIn(5), MateIn(2)))
}

func TestBetterPrefersLongerSurvivalWhenLosing(t *testing.T) {
	assert.True(t, Better(MatedIn(10), MatedIn(2)))
}

func TestBetterWinBeatsDrawBeatsLoss(t *testing.T) {
	assert.True(t, Better(MateIn(9), MkDraw()))
	assert.True(t, Better(MkDraw(), MatedIn(1)))
}
