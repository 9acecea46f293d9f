package odds

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/edge-engine/internal/models"
)

func TestAmericanToDecimal(t *testing.T) {
	tests := []struct {
		name     string
		american int
		want     float64
	}{
		{"Even odds +100", 100, 2.0},
		{"Underdog +150", 150, 2.5},
		{"Underdog +200", 200, 3.0},
		{"Favorite -110", -110, 1.909090909},
		{"Favorite -140", -140, 1.714285714},
		{"Favorite -200", -200, 1.5},
		{"Even odds -100", -100, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AmericanToDecimal(tt.american)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}
}

func TestAmericanToDecimalRejectsZero(t *testing.T) {
	_, err := AmericanToDecimal(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidOdds)

	var oddsErr *models.InvalidOddsError
	require.ErrorAs(t, err, &oddsErr)
	assert.Equal(t, "0", oddsErr.Value)
}

func TestDecimalToAmerican(t *testing.T) {
	tests := []struct {
		name    string
		decimal float64
		want    float64
	}{
		{"Even odds 2.0", 2.0, 100},
		{"Underdog 2.5", 2.5, 150},
		{"Underdog 3.818", 3.8181818181818183, 281.81818181818},
		{"Favorite 1.5", 1.5, -200},
		{"Favorite 1.714", 1.7142857142857142, -140},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecimalToAmerican(tt.decimal)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}
}

func TestDecimalToAmericanRejectsInvalid(t *testing.T) {
	for _, d := range []float64{1.0, 0.5, 0, -2, math.NaN(), math.Inf(1)} {
		_, err := DecimalToAmerican(d)
		assert.ErrorIs(t, err, models.ErrInvalidOdds, "decimal %v", d)
	}
}

func TestImpliedProbability(t *testing.T) {
	tests := []struct {
		name     string
		american int
		want     float64
	}{
		{"Even odds +100", 100, 0.50},
		{"Favorite -110", -110, 0.5238095},
		{"Favorite -140", -140, 0.5833333},
		{"Heavy favorite -200", -200, 0.6666667},
		{"Underdog +150", 150, 0.40},
		{"Heavy underdog +300", 300, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ImpliedProbability(tt.american)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}

	_, err := ImpliedProbability(0)
	assert.ErrorIs(t, err, models.ErrInvalidOdds)
}

func TestImpliedProbabilityAlwaysInOpenUnitInterval(t *testing.T) {
	for american := -100000; american <= 100000; american += 7 {
		if american == 0 {
			continue
		}
		p, err := ImpliedProbability(american)
		require.NoError(t, err)
		assert.Greater(t, p, 0.0, "odds %d", american)
		assert.Less(t, p, 1.0, "odds %d", american)
	}
}

func TestImpliedProbabilityMatchesDecimalInverse(t *testing.T) {
	for _, american := range []int{-500, -140, -110, 100, 120, 450} {
		d, err := AmericanToDecimal(american)
		require.NoError(t, err)
		fromDecimal, err := DecimalImpliedProbability(d)
		require.NoError(t, err)
		direct, err := ImpliedProbability(american)
		require.NoError(t, err)
		assert.InDelta(t, direct, fromDecimal, 1e-12)
	}
}

func TestRoundTripAmericanDecimal(t *testing.T) {
	check := func(american int) {
		d, err := AmericanToDecimal(american)
		require.NoError(t, err)
		back, err := DecimalToAmerican(d)
		require.NoError(t, err)
		assert.InDelta(t, float64(american), back, 1e-6, "odds %d", american)
	}

	for american := 100; american <= 10000; american++ {
		check(american)
	}
	for american := -101; american >= -10000; american-- {
		check(american)
	}
}

func TestRoundTripAtEvenMoneyBoundary(t *testing.T) {
	// -100 and +100 are the same price; the canonical quote is +100
	d, err := AmericanToDecimal(-100)
	require.NoError(t, err)
	back, err := DecimalToAmerican(d)
	require.NoError(t, err)
	assert.Equal(t, 100.0, back)
}

func TestProbabilityToOdds(t *testing.T) {
	d, err := ProbabilityToDecimal(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, d, 1e-12)

	american, err := ProbabilityToAmerican(0.6)
	require.NoError(t, err)
	assert.InDelta(t, -150.0, american, 1e-6)

	for _, p := range []float64{0, 1, -0.2, 1.5, math.NaN()} {
		_, err := ProbabilityToDecimal(p)
		assert.ErrorIs(t, err, models.ErrInvalidInput, "probability %v", p)
	}
}

func TestOddsValueConversions(t *testing.T) {
	tests := []struct {
		name        string
		odds        models.Odds
		wantDecimal float64
		wantImplied float64
		wantAmerica float64
	}{
		{"american favorite", models.AmericanOdds(-140), 1.7142857, 0.5833333, -140},
		{"american underdog", models.AmericanOdds(120), 2.2, 0.4545455, 120},
		{"decimal", models.DecimalOdds(2.5), 2.5, 0.4, 150},
		{"decimal short", models.DecimalOdds(1.5), 1.5, 0.6666667, -200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ToDecimal(tt.odds)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantDecimal, d, 1e-6)

			p, err := Implied(tt.odds)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantImplied, p, 1e-6)

			a, err := ToAmerican(tt.odds)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantAmerica, a, 1e-6)
		})
	}
}

func TestOddsValueValidation(t *testing.T) {
	invalid := []models.Odds{
		models.AmericanOdds(0),
		models.DecimalOdds(1.0),
		models.DecimalOdds(0),
		{Format: "fractional", Decimal: 3},
		{},
	}
	for _, o := range invalid {
		assert.ErrorIs(t, Validate(o), models.ErrInvalidOdds, "odds %s", o)
		_, err := Implied(o)
		assert.ErrorIs(t, err, models.ErrInvalidOdds)
		_, err = ToAmerican(o)
		assert.ErrorIs(t, err, models.ErrInvalidOdds)
	}
}

func TestConvertersAreIdempotent(t *testing.T) {
	first, err := AmericanToDecimal(-137)
	require.NoError(t, err)
	second, err := AmericanToDecimal(-137)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	p1, _ := ImpliedProbability(245)
	p2, _ := ImpliedProbability(245)
	assert.Equal(t, p1, p2)

	a1, _ := DecimalToAmerican(1.83)
	a2, _ := DecimalToAmerican(1.83)
	assert.Equal(t, a1, a2)
}
