package odds

import (
	"github.com/yourusername/edge-engine/internal/models"
)

// Overround returns the bookmaker margin of a market quoted in decimal odds:
// the sum of implied probabilities minus one.
// Two sides at 1.909 (-110) → 0.0476
func Overround(decimals ...float64) (float64, error) {
	if len(decimals) < 2 {
		return 0, models.NewInvalidInputError("outcomes", len(decimals), "market needs at least 2 outcomes")
	}

	total := 0.0
	for _, d := range decimals {
		if err := ValidateDecimal(d); err != nil {
			return 0, err
		}
		total += 1.0 / d
	}
	return total - 1.0, nil
}

// RemoveVig converts a complete market quoted in decimal odds to fair probabilities
// using the multiplicative method: each implied probability is divided by the book
// total so the results sum to 1.
func RemoveVig(decimals ...float64) ([]float64, error) {
	overround, err := Overround(decimals...)
	if err != nil {
		return nil, err
	}

	total := 1.0 + overround
	fair := make([]float64, len(decimals))
	for i, d := range decimals {
		fair[i] = (1.0 / d) / total
	}
	return fair, nil
}
