// Package parlay combines validated legs into a multi-leg wager and prices it.
package parlay

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/yourusername/edge-engine/internal/models"
	"github.com/yourusername/edge-engine/internal/odds"
)

const (
	// MinLegs is the fewest legs a parlay may have
	MinLegs = 2
	// MaxLegs is the most legs a parlay may have
	MaxLegs = 10
)

var legValidator = newLegValidator()

func newLegValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// Parlay is an ordered set of 2 to 10 distinct legs. The zero value is not usable;
// obtain one through New.
type Parlay struct {
	legs     []models.Leg
	decimals []float64
}

// ValidateLeg checks a single leg: odds that can be priced, a non-empty ID, a
// probability in (0, 1] and a known market type
func ValidateLeg(leg models.Leg) error {
	if err := odds.Validate(leg.Odds); err != nil {
		return fmt.Errorf("leg %q: %w", leg.ID, err)
	}

	if err := legValidator.Struct(leg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			fieldError := validationErrors[0]
			return models.NewInvalidInputError(
				fieldError.Field(),
				fieldError.Value(),
				fmt.Sprintf("leg %q failed %s validation", leg.ID, fieldError.Tag()),
			)
		}
		return fmt.Errorf("leg %q validation failed: %w", leg.ID, err)
	}

	return nil
}

// New validates the legs and builds a parlay. The legs are copied, so later changes
// to the caller's slice do not affect the parlay.
func New(legs []models.Leg) (*Parlay, error) {
	if len(legs) < MinLegs {
		return nil, models.NewInsufficientLegsError(len(legs), MinLegs)
	}
	if len(legs) > MaxLegs {
		return nil, models.NewInvalidInputError("legs", len(legs), fmt.Sprintf("parlay supports at most %d legs", MaxLegs))
	}

	p := &Parlay{
		legs:     make([]models.Leg, len(legs)),
		decimals: make([]float64, len(legs)),
	}
	seen := make(map[string]struct{}, len(legs))
	combined := 1.0

	for i, leg := range legs {
		if err := ValidateLeg(leg); err != nil {
			return nil, err
		}
		if _, ok := seen[leg.ID]; ok {
			return nil, models.NewDuplicateLegError(leg.ID, i)
		}
		seen[leg.ID] = struct{}{}

		d, err := odds.ToDecimal(leg.Odds)
		if err != nil {
			return nil, fmt.Errorf("leg %q: %w", leg.ID, err)
		}

		combined *= d
		if math.IsInf(combined, 0) {
			return nil, models.NewInvalidInputError("legs", len(legs), fmt.Sprintf("combined decimal odds overflow at leg %q", leg.ID))
		}

		p.legs[i] = leg
		p.decimals[i] = d
	}

	return p, nil
}

// Legs returns a copy of the parlay's legs in their original order
func (p *Parlay) Legs() []models.Leg {
	legs := make([]models.Leg, len(p.legs))
	copy(legs, p.legs)
	return legs
}

// Len returns the number of legs
func (p *Parlay) Len() int {
	return len(p.legs)
}

// Probabilities returns the true probability of each leg in order
func (p *Parlay) Probabilities() []float64 {
	probabilities := make([]float64, len(p.legs))
	for i, leg := range p.legs {
		probabilities[i] = leg.TrueProbability
	}
	return probabilities
}

// CombinedDecimalOdds returns the product of the legs' decimal odds
func (p *Parlay) CombinedDecimalOdds() float64 {
	combined := 1.0
	for _, d := range p.decimals {
		combined *= d
	}
	return combined
}

// NaiveProbability returns the product of the legs' true probabilities, which
// assumes the legs are independent
func (p *Parlay) NaiveProbability() float64 {
	naive := 1.0
	for _, leg := range p.legs {
		naive *= leg.TrueProbability
	}
	return naive
}

// ImpliedProbability returns the probability implied by the combined price
func (p *Parlay) ImpliedProbability() float64 {
	return 1.0 / p.CombinedDecimalOdds()
}

// CombinedAmericanOdds returns the combined price in American format
func (p *Parlay) CombinedAmericanOdds() (float64, error) {
	return odds.DecimalToAmerican(p.CombinedDecimalOdds())
}

// Payout returns the total return of a winning parlay for a stake, rounded to cents
func (p *Parlay) Payout(stake float64) (decimal.Decimal, error) {
	if math.IsNaN(stake) || math.IsInf(stake, 0) || stake <= 0 {
		return decimal.Zero, models.NewInvalidInputError("stake", stake, "must be positive and finite")
	}
	return odds.Payout(stake, p.CombinedDecimalOdds())
}
