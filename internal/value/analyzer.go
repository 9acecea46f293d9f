// Package value compares a model's true probability against the market price.
package value

import (
	"math"

	"github.com/yourusername/edge-engine/internal/models"
	"github.com/yourusername/edge-engine/internal/odds"
)

// Edge returns the difference between the model probability and the market's implied
// probability. A negative edge means the bet has no value.
func Edge(trueProbability, impliedProbability float64) float64 {
	return trueProbability - impliedProbability
}

// ExpectedValue calculates the expected profit of a bet in currency units
// EV = stake * (p * decimalOdds - 1)
func ExpectedValue(trueProbability, decimalOdds, stake float64) (float64, error) {
	if err := ValidateProbability("true_probability", trueProbability); err != nil {
		return 0, err
	}
	if err := odds.ValidateDecimal(decimalOdds); err != nil {
		return 0, err
	}
	if math.IsNaN(stake) || math.IsInf(stake, 0) || stake <= 0 {
		return 0, models.NewInvalidInputError("stake", stake, "must be positive and finite")
	}

	return stake * (trueProbability*decimalOdds - 1.0), nil
}

// ExpectedValuePercent calculates expected value per unit staked, as a percentage
func ExpectedValuePercent(trueProbability, decimalOdds float64) (float64, error) {
	ev, err := ExpectedValue(trueProbability, decimalOdds, 1.0)
	if err != nil {
		return 0, err
	}
	return ev * 100.0, nil
}

// ValidateProbability ensures p is in (0, 1]. Out-of-range values are rejected,
// never clamped.
func ValidateProbability(field string, p float64) error {
	if math.IsNaN(p) || p <= 0 || p > 1 {
		return models.NewInvalidInputError(field, p, "probability must be in (0, 1]")
	}
	return nil
}
