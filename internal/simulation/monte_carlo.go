// Package simulation replays a fixed-fraction staking plan many times to estimate
// the spread of bankroll outcomes and the drawdowns along the way.
package simulation

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/yourusername/edge-engine/internal/models"
	"github.com/yourusername/edge-engine/internal/odds"
)

var configValidator = validator.New()

// Config configures a Monte Carlo run. The same seed always reproduces the same
// result.
type Config struct {
	Iterations      int     `json:"iterations" validate:"gt=0,lte=1000000"`
	Bets            int     `json:"bets" validate:"gt=0,lte=10000"`
	Seed            int64   `json:"seed"`
	InitialBankroll float64 `json:"initial_bankroll" validate:"gt=0"`
}

// DefaultConfig returns 1000 paths of 100 bets on a bankroll of 1000
func DefaultConfig() Config {
	return Config{
		Iterations:      1000,
		Bets:            100,
		Seed:            42,
		InitialBankroll: 1000,
	}
}

// Result represents the distribution of simulated outcomes. Returns are relative
// to the initial bankroll.
type Result struct {
	Iterations          int                `json:"iterations"`
	MeanReturn          float64            `json:"mean_return"`
	StdReturn           float64            `json:"std_return"`
	VaR95               float64            `json:"var_95"`
	VaR99               float64            `json:"var_99"`
	ProbabilityOfProfit float64            `json:"probability_of_profit"`
	ProbabilityOfRuin   float64            `json:"probability_of_ruin"`
	MeanMaxDrawdown     float64            `json:"mean_max_drawdown"`
	WorstMaxDrawdown    float64            `json:"worst_max_drawdown"`
	ConfidenceIntervals map[string]float64 `json:"confidence_intervals"`
}

// Run simulates staking fraction of the current bankroll on cfg.Bets consecutive,
// independent bets that win with probability at decimalOdds
func Run(ctx context.Context, probability, decimalOdds, fraction float64, cfg Config) (*Result, error) {
	if err := configValidator.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", models.NewInvalidInputError("simulation", cfg, err.Error()))
	}
	if math.IsNaN(probability) || probability <= 0 || probability > 1 {
		return nil, models.NewInvalidInputError("probability", probability, "probability must be in (0, 1]")
	}
	if err := odds.ValidateDecimal(decimalOdds); err != nil {
		return nil, err
	}
	if math.IsNaN(fraction) || fraction < 0 || fraction > 1 {
		return nil, models.NewInvalidInputError("fraction", fraction, "must be in [0, 1]")
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	distribution := make([]float64, cfg.Iterations)
	drawdowns := make([]float64, cfg.Iterations)

	for i := 0; i < cfg.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		bankroll := cfg.InitialBankroll
		peak := bankroll
		maxDrawdown := 0.0

		for b := 0; b < cfg.Bets; b++ {
			stake := bankroll * fraction
			if rng.Float64() < probability {
				bankroll += stake * (decimalOdds - 1)
			} else {
				bankroll -= stake
			}

			if bankroll > peak {
				peak = bankroll
			} else if dd := (peak - bankroll) / peak; dd > maxDrawdown {
				maxDrawdown = dd
			}
		}

		distribution[i] = bankroll
		drawdowns[i] = maxDrawdown
	}

	sort.Float64s(distribution)
	mean, std := meanStd(distribution)
	meanDrawdown, _ := meanStd(drawdowns)
	initial := cfg.InitialBankroll

	return &Result{
		Iterations:          cfg.Iterations,
		MeanReturn:          (mean - initial) / initial,
		StdReturn:           std / initial,
		VaR95:               (percentile(distribution, 0.05) - initial) / initial,
		VaR99:               (percentile(distribution, 0.01) - initial) / initial,
		ProbabilityOfProfit: probabilityAbove(distribution, initial),
		// a path that keeps under 1% of its starting bankroll counts as ruined
		ProbabilityOfRuin:   1 - probabilityAbove(distribution, initial*0.01),
		MeanMaxDrawdown:     meanDrawdown,
		WorstMaxDrawdown:    maxOf(drawdowns),
		ConfidenceIntervals: confidenceIntervals(distribution, initial, []float64{0.9, 0.95, 0.99}),
	}, nil
}

// confidenceIntervals returns the width of each central interval of returns
func confidenceIntervals(sorted []float64, initial float64, levels []float64) map[string]float64 {
	results := make(map[string]float64, len(levels))
	for _, level := range levels {
		p := (1.0 - level) / 2.0
		low := percentile(sorted, p)
		high := percentile(sorted, 1.0-p)
		results[fmt.Sprintf("%.0f%%", level*100)] = (high - low) / initial
	}
	return results
}

func meanStd(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	variance := 0.0
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}
	variance /= float64(len(values))
	return mean, math.Sqrt(variance)
}

// percentile expects sorted values
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(math.Floor(p * float64(len(sorted)-1)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

func probabilityAbove(values []float64, threshold float64) float64 {
	if len(values) == 0 {
		return 0
	}
	count := 0
	for _, v := range values {
		if v > threshold {
			count++
		}
	}
	return float64(count) / float64(len(values))
}

func maxOf(values []float64) float64 {
	worst := 0.0
	for _, v := range values {
		if v > worst {
			worst = v
		}
	}
	return worst
}
