// Package staking sizes bets with the fractional Kelly criterion.
package staking

import (
	"io"
	"math"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/edge-engine/internal/config"
	"github.com/yourusername/edge-engine/internal/models"
	"github.com/yourusername/edge-engine/internal/odds"
)

// Sizing is the outcome of one Kelly sizing decision
type Sizing struct {
	FullKelly        float64         `json:"full_kelly"`
	Multiplier       float64         `json:"multiplier"`
	Fraction         float64         `json:"fraction"`
	RecommendedStake decimal.Decimal `json:"recommended_stake"`
	Capped           bool            `json:"capped"`
}

// Calculator applies fractional Kelly with a per-tolerance multiplier and a
// bankroll fraction cap. It holds no state beyond its configuration.
type Calculator struct {
	config config.KellyConfig
	logger *logrus.Logger
}

// NewCalculator creates a new Kelly calculator
func NewCalculator(cfg config.KellyConfig, logger *logrus.Logger) *Calculator {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &Calculator{
		config: cfg,
		logger: logger,
	}
}

// FullKelly calculates the full Kelly fraction of bankroll for a bet
// f = (bp - q) / b
// where b = decimal odds - 1, p = probability of winning, q = 1 - p
// The result is negative when the bet has no edge.
func FullKelly(probability, decimalOdds float64) (float64, error) {
	if math.IsNaN(probability) || probability <= 0 || probability > 1 {
		return 0, models.NewInvalidInputError("probability", probability, "probability must be in (0, 1]")
	}
	if err := odds.ValidateDecimal(decimalOdds); err != nil {
		return 0, err
	}

	b := decimalOdds - 1.0
	q := 1.0 - probability

	return (b*probability - q) / b, nil
}

// Multiplier returns the share of full Kelly staked at the given tolerance
func (c *Calculator) Multiplier(tolerance models.RiskTolerance) (float64, error) {
	switch tolerance {
	case models.RiskToleranceConservative:
		return c.config.ConservativeMultiplier, nil
	case models.RiskToleranceModerate:
		return c.config.ModerateMultiplier, nil
	case models.RiskToleranceAggressive:
		return c.config.AggressiveMultiplier, nil
	default:
		return 0, models.NewInvalidInputError("risk_tolerance", string(tolerance), "must be one of conservative, moderate, aggressive")
	}
}

// Fraction returns the clamped fractional Kelly: never negative and never above
// the configured maximum fraction
func (c *Calculator) Fraction(probability, decimalOdds float64, tolerance models.RiskTolerance) (float64, error) {
	sizing, err := c.size(probability, decimalOdds, tolerance)
	if err != nil {
		return 0, err
	}
	return sizing.Fraction, nil
}

// Size calculates the fractional Kelly stake for a bankroll
func (c *Calculator) Size(probability, decimalOdds, bankroll float64, tolerance models.RiskTolerance) (*Sizing, error) {
	if math.IsNaN(bankroll) || math.IsInf(bankroll, 0) || bankroll <= 0 {
		return nil, models.NewInvalidInputError("bankroll", bankroll, "must be positive")
	}

	sizing, err := c.size(probability, decimalOdds, tolerance)
	if err != nil {
		return nil, err
	}

	stake := bankroll * sizing.Fraction
	sizing.RecommendedStake, err = odds.Money(stake)
	if err != nil {
		return nil, err
	}

	c.logger.WithFields(logrus.Fields{
		"bankroll":         bankroll,
		"odds":             decimalOdds,
		"probability":      probability,
		"risk_tolerance":   tolerance,
		"kelly_fraction":   sizing.FullKelly,
		"fractional_kelly": sizing.Fraction,
		"stake":            stake,
	}).Debug("Position size calculated")

	return sizing, nil
}

func (c *Calculator) size(probability, decimalOdds float64, tolerance models.RiskTolerance) (*Sizing, error) {
	multiplier, err := c.Multiplier(tolerance)
	if err != nil {
		return nil, err
	}

	full, err := FullKelly(probability, decimalOdds)
	if err != nil {
		return nil, err
	}

	sizing := &Sizing{
		FullKelly:  full,
		Multiplier: multiplier,
		Fraction:   full * multiplier,
	}

	if sizing.Fraction < 0 {
		c.logger.WithFields(logrus.Fields{
			"odds":        decimalOdds,
			"probability": probability,
			"kelly":       full,
		}).Debug("Negative Kelly fraction, no bet recommended")
		sizing.Fraction = 0
	}

	if sizing.Fraction > c.config.MaxFraction {
		c.logger.WithFields(logrus.Fields{
			"calculated_fraction": sizing.Fraction,
			"max_fraction":        c.config.MaxFraction,
		}).Debug("Kelly fraction capped at maximum")
		sizing.Fraction = c.config.MaxFraction
		sizing.Capped = true
	}

	return sizing, nil
}

// RecommendedStake returns bankroll x fraction rounded to cents
func RecommendedStake(bankroll, fraction float64) (decimal.Decimal, error) {
	if math.IsNaN(bankroll) || math.IsInf(bankroll, 0) || bankroll <= 0 {
		return decimal.Zero, models.NewInvalidInputError("bankroll", bankroll, "must be positive")
	}
	if math.IsNaN(fraction) || fraction < 0 || fraction > 1 {
		return decimal.Zero, models.NewInvalidInputError("fraction", fraction, "must be in [0, 1]")
	}
	return odds.Money(bankroll * fraction)
}
