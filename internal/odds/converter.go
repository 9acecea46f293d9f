// Package odds converts bookmaker prices between American and decimal formats and
// derives the probabilities they imply.
package odds

import (
	"math"

	"github.com/yourusername/edge-engine/internal/models"
)

// AmericanToDecimal converts American odds to decimal odds
// American +150 → Decimal 2.50
// American -150 → Decimal 1.67
func AmericanToDecimal(american int) (float64, error) {
	if american == 0 {
		return 0, models.NewInvalidOddsError(american, "american odds cannot be 0")
	}

	if american > 0 {
		return 1.0 + float64(american)/100.0, nil
	}

	return 1.0 + 100.0/math.Abs(float64(american)), nil
}

// DecimalToAmerican converts decimal odds to American odds.
// Prices of 2.0 and above map to positive odds, so even money is always +100.
func DecimalToAmerican(decimal float64) (float64, error) {
	if err := ValidateDecimal(decimal); err != nil {
		return 0, err
	}

	if decimal >= 2.0 {
		return (decimal - 1.0) * 100.0, nil
	}

	return -100.0 / (decimal - 1.0), nil
}

// ImpliedProbability converts American odds to the probability they imply with no
// bookmaker margin removed
// +100 → 0.50, -110 → 0.5238, +300 → 0.25
func ImpliedProbability(american int) (float64, error) {
	if american == 0 {
		return 0, models.NewInvalidOddsError(american, "american odds cannot be 0")
	}

	if american > 0 {
		return 100.0 / (float64(american) + 100.0), nil
	}

	abs := math.Abs(float64(american))
	return abs / (abs + 100.0), nil
}

// DecimalImpliedProbability converts decimal odds to implied probability
func DecimalImpliedProbability(decimal float64) (float64, error) {
	if err := ValidateDecimal(decimal); err != nil {
		return 0, err
	}
	return 1.0 / decimal, nil
}

// ProbabilityToDecimal returns the fair decimal price for a probability
// 0.50 → 2.00, 0.667 → 1.50
func ProbabilityToDecimal(probability float64) (float64, error) {
	if math.IsNaN(probability) || probability <= 0 || probability >= 1 {
		return 0, models.NewInvalidInputError("probability", probability, "must be strictly between 0 and 1")
	}
	return 1.0 / probability, nil
}

// ProbabilityToAmerican returns the fair American price for a probability
func ProbabilityToAmerican(probability float64) (float64, error) {
	decimal, err := ProbabilityToDecimal(probability)
	if err != nil {
		return 0, err
	}
	return DecimalToAmerican(decimal)
}

// ValidateDecimal checks that decimal odds describe a payout greater than the stake
func ValidateDecimal(decimal float64) error {
	if math.IsNaN(decimal) || math.IsInf(decimal, 0) {
		return models.NewInvalidOddsError(decimal, "decimal odds must be finite")
	}
	if decimal <= 1.0 {
		return models.NewInvalidOddsError(decimal, "decimal odds must be greater than 1.0")
	}
	return nil
}

// Validate checks that the odds can be priced in their format
func Validate(o models.Odds) error {
	_, err := ToDecimal(o)
	return err
}

// ToDecimal returns the decimal price of odds quoted in either format
func ToDecimal(o models.Odds) (float64, error) {
	switch o.Format {
	case models.OddsFormatAmerican:
		return AmericanToDecimal(o.American)
	case models.OddsFormatDecimal:
		if err := ValidateDecimal(o.Decimal); err != nil {
			return 0, err
		}
		return o.Decimal, nil
	default:
		return 0, models.NewInvalidOddsError(o.Format, "unknown odds format")
	}
}

// ToAmerican returns the American price of odds quoted in either format. American
// quotes are returned unchanged.
func ToAmerican(o models.Odds) (float64, error) {
	switch o.Format {
	case models.OddsFormatAmerican:
		if o.American == 0 {
			return 0, models.NewInvalidOddsError(o.American, "american odds cannot be 0")
		}
		return float64(o.American), nil
	default:
		decimal, err := ToDecimal(o)
		if err != nil {
			return 0, err
		}
		return DecimalToAmerican(decimal)
	}
}

// Implied returns the implied probability of odds quoted in either format
func Implied(o models.Odds) (float64, error) {
	switch o.Format {
	case models.OddsFormatAmerican:
		return ImpliedProbability(o.American)
	default:
		decimal, err := ToDecimal(o)
		if err != nil {
			return 0, err
		}
		return 1.0 / decimal, nil
	}
}
