package odds

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/yourusername/edge-engine/internal/models"
)

// centPlaces is the precision money amounts are reported at
const centPlaces = 2

// Money converts a currency amount to a decimal rounded to cents. Amounts must be
// finite and not negative.
func Money(amount float64) (decimal.Decimal, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return decimal.Zero, models.NewInvalidInputError("amount", amount, "must be finite and not negative")
	}
	return decimal.NewFromFloat(amount).Round(centPlaces), nil
}

// Payout returns the total return (stake included) of a winning bet at the given
// decimal price, rounded to cents
func Payout(stake float64, decimalOdds float64) (decimal.Decimal, error) {
	if math.IsNaN(stake) || math.IsInf(stake, 0) || stake < 0 {
		return decimal.Zero, models.NewInvalidInputError("stake", stake, "must be finite and not negative")
	}
	if err := ValidateDecimal(decimalOdds); err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromFloat(stake).Mul(decimal.NewFromFloat(decimalOdds)).Round(centPlaces), nil
}
