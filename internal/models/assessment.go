package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RiskTolerance selects how much of the full Kelly fraction is staked
type RiskTolerance string

const (
	RiskToleranceConservative RiskTolerance = "conservative"
	RiskToleranceModerate     RiskTolerance = "moderate"
	RiskToleranceAggressive   RiskTolerance = "aggressive"
)

// ParseRiskTolerance parses a risk tolerance name
func ParseRiskTolerance(s string) (RiskTolerance, error) {
	tolerance := RiskTolerance(s)
	switch tolerance {
	case RiskToleranceConservative, RiskToleranceModerate, RiskToleranceAggressive:
		return tolerance, nil
	default:
		return "", NewInvalidInputError("risk_tolerance", s, "must be one of conservative, moderate, aggressive")
	}
}

// Tier represents the discrete value recommendation for a bet or parlay
type Tier string

const (
	TierExcellent Tier = "excellent"
	TierGood      Tier = "good"
	TierModerate  Tier = "moderate"
	TierPoor      Tier = "poor"
)

// ValueAssessment is the derived evaluation of a single bet. It is recomputed from
// its inputs on every call and never mutated.
type ValueAssessment struct {
	LegID                string          `json:"leg_id"`
	DecimalOdds          float64         `json:"decimal_odds"`
	TrueProbability      float64         `json:"true_probability"`
	ImpliedProbability   float64         `json:"implied_probability"`
	Edge                 float64         `json:"edge"`
	ExpectedValuePercent float64         `json:"expected_value_percent"`
	FullKellyFraction    float64         `json:"full_kelly_fraction"`
	KellyFraction        float64         `json:"kelly_fraction"`
	RecommendedStake     decimal.Decimal `json:"recommended_stake"`
	PotentialPayout      decimal.Decimal `json:"potential_payout"`
	Tier                 Tier            `json:"tier"`
}

// HasValue reports whether the model probability beats the market
func (v *ValueAssessment) HasValue() bool {
	return v.Edge > 0
}

// RiskProfile summarises the risk of a parlay. MaxDrawdown is a single-shot worst
// case (1 - adjusted probability), not a drawdown over a sequence of bets.
type RiskProfile struct {
	Variance        float64 `json:"variance"`
	CorrelationRisk float64 `json:"correlation_risk"`
	SharpeRatio     float64 `json:"sharpe_ratio"`
	MaxDrawdown     float64 `json:"max_drawdown"`
}

// ParlayEvaluation is the full evaluation bundle for a multi-leg wager
type ParlayEvaluation struct {
	ID                   uuid.UUID       `json:"id"`
	Legs                 []Leg           `json:"legs"`
	CombinedDecimalOdds  float64         `json:"combined_decimal_odds"`
	CombinedAmericanOdds float64         `json:"combined_american_odds"`
	NaiveProbability     float64         `json:"naive_probability"`
	ImpliedProbability   float64         `json:"implied_probability"`
	AdjustedProbability  float64         `json:"adjusted_probability"`
	ExpectedValuePercent float64         `json:"expected_value_percent"`
	FullKellyFraction    float64         `json:"full_kelly_fraction"`
	KellyFraction        float64         `json:"kelly_fraction"`
	RecommendedStake     decimal.Decimal `json:"recommended_stake"`
	PotentialPayout      decimal.Decimal `json:"potential_payout"`
	RiskProfile          RiskProfile     `json:"risk_profile"`
	Tier                 Tier            `json:"tier"`
}
