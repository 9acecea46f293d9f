package risk

import (
	"math"

	"github.com/yourusername/edge-engine/internal/config"
	"github.com/yourusername/edge-engine/internal/models"
)

// Model turns pairwise correlations into an aggregate risk score and a
// correlation-adjusted parlay probability
type Model struct {
	correlator       Correlator
	dampingFactor    float64
	probabilityFloor float64
}

// NewModel creates a risk model. A nil correlator falls back to the heuristic
// correlator built from the same configuration.
func NewModel(cfg config.CorrelationConfig, correlator Correlator) *Model {
	if correlator == nil {
		correlator = NewHeuristicCorrelator(cfg)
	}
	return &Model{
		correlator:       correlator,
		dampingFactor:    cfg.DampingFactor,
		probabilityFloor: cfg.ProbabilityFloor,
	}
}

// CorrelationRisk returns the mean absolute pairwise correlation over every
// unordered pair of legs, in [0, 1]. Fewer than two legs carry no correlation risk.
func (m *Model) CorrelationRisk(legs []models.Leg) float64 {
	if len(legs) < 2 {
		return 0
	}

	var total float64
	pairs := 0
	for i := 0; i < len(legs)-1; i++ {
		for j := i + 1; j < len(legs); j++ {
			total += math.Abs(clamp(m.correlator.PairwiseCorrelation(legs[i], legs[j]), -1, 1))
			pairs++
		}
	}

	return total / float64(pairs)
}

// AdjustedProbability discounts the naive parlay probability by the correlation
// risk. The result never exceeds naive and never drops below min(floor, naive).
func (m *Model) AdjustedProbability(naive, correlationRisk float64) float64 {
	adjusted := naive - correlationRisk*m.dampingFactor
	floor := math.Min(m.probabilityFloor, naive)
	if adjusted < floor {
		return floor
	}
	if adjusted > naive {
		return naive
	}
	return adjusted
}

// Variance returns the mean Bernoulli variance p(1-p) over the legs
func Variance(probabilities []float64) float64 {
	if len(probabilities) == 0 {
		return 0
	}

	var total float64
	for _, p := range probabilities {
		total += p * (1 - p)
	}
	return total / float64(len(probabilities))
}

// SharpeRatio returns expected value per unit of standard deviation, or 0 when the
// variance is 0
func SharpeRatio(expectedValuePercent, variance float64) float64 {
	if variance <= 0 {
		return 0
	}
	return expectedValuePercent / math.Sqrt(variance)
}

// MaxDrawdown returns the single-bet worst case: the chance the whole stake is lost
func MaxDrawdown(adjustedProbability float64) float64 {
	return 1 - adjustedProbability
}

// Profile assembles the risk profile of a parlay from its legs, its EV% and its
// adjusted probability
func (m *Model) Profile(legs []models.Leg, expectedValuePercent, adjustedProbability float64) models.RiskProfile {
	probabilities := make([]float64, len(legs))
	for i, leg := range legs {
		probabilities[i] = leg.TrueProbability
	}
	variance := Variance(probabilities)

	return models.RiskProfile{
		Variance:        variance,
		CorrelationRisk: m.CorrelationRisk(legs),
		SharpeRatio:     SharpeRatio(expectedValuePercent, variance),
		MaxDrawdown:     MaxDrawdown(adjustedProbability),
	}
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(lo, math.Min(hi, v))
}
