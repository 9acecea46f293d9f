// Package risk estimates how correlated the legs of a parlay are and derives the
// parlay's risk profile from it.
package risk

import (
	"github.com/yourusername/edge-engine/internal/config"
	"github.com/yourusername/edge-engine/internal/models"
)

// Correlator estimates the correlation between two legs. Results are expected in
// [-1, 1]; the model clamps anything outside that range.
type Correlator interface {
	PairwiseCorrelation(a, b models.Leg) float64
}

// CorrelatorFunc adapts a plain function to the Correlator interface
type CorrelatorFunc func(a, b models.Leg) float64

// PairwiseCorrelation calls f(a, b)
func (f CorrelatorFunc) PairwiseCorrelation(a, b models.Leg) float64 {
	return f(a, b)
}

// HeuristicCorrelator scores leg pairs from their game, market and sport alone
type HeuristicCorrelator struct {
	SameGameSideWeight float64
	SameGameWeight     float64
	SameSportWeight    float64
}

// NewHeuristicCorrelator creates a heuristic correlator from configured weights
func NewHeuristicCorrelator(cfg config.CorrelationConfig) *HeuristicCorrelator {
	return &HeuristicCorrelator{
		SameGameSideWeight: cfg.SameGameSideWeight,
		SameGameWeight:     cfg.SameGameWeight,
		SameSportWeight:    cfg.SameSportWeight,
	}
}

// PairwiseCorrelation returns the side weight for two moneyline/spread legs on the
// same game, the same-game weight for any other same-game pair, the sport weight
// for different games of the same sport, and 0 otherwise
func (h *HeuristicCorrelator) PairwiseCorrelation(a, b models.Leg) float64 {
	if a.SameGame(b) {
		if a.Market.IsSideMarket() && b.Market.IsSideMarket() {
			return h.SameGameSideWeight
		}
		return h.SameGameWeight
	}

	if a.SameSport(b) {
		return h.SameSportWeight
	}

	return 0
}
