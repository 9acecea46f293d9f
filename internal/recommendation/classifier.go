// Package recommendation maps expected value, correlation risk and stake size to a
// discrete value tier.
package recommendation

import (
	"github.com/yourusername/edge-engine/internal/config"
	"github.com/yourusername/edge-engine/internal/models"
)

// Thresholds holds the tier cut-offs. EV values are percentages. Every comparison
// is strict.
type Thresholds struct {
	ExcellentMinEV          float64
	ExcellentMaxCorrelation float64
	ExcellentMinKelly       float64
	GoodMinEV               float64
	GoodMaxCorrelation      float64
	ModerateMinEV           float64
}

// DefaultThresholds returns the 15/8/3 EV cut-offs
func DefaultThresholds() Thresholds {
	return FromConfig(config.DefaultEngine().Thresholds)
}

// FromConfig builds thresholds from configuration
func FromConfig(cfg config.ThresholdsConfig) Thresholds {
	return Thresholds{
		ExcellentMinEV:          cfg.ExcellentMinEV,
		ExcellentMaxCorrelation: cfg.ExcellentMaxCorrelation,
		ExcellentMinKelly:       cfg.ExcellentMinKelly,
		GoodMinEV:               cfg.GoodMinEV,
		GoodMaxCorrelation:      cfg.GoodMaxCorrelation,
		ModerateMinEV:           cfg.ModerateMinEV,
	}
}

// Classifier assigns tiers; first matching tier wins
type Classifier struct {
	thresholds Thresholds
}

// NewClassifier creates a classifier
func NewClassifier(thresholds Thresholds) *Classifier {
	return &Classifier{thresholds: thresholds}
}

// Classify returns the tier for an EV percentage, an aggregate correlation risk
// and the final (fractional, clamped) Kelly fraction
func (c *Classifier) Classify(expectedValuePercent, correlationRisk, kellyFraction float64) models.Tier {
	t := c.thresholds

	switch {
	case expectedValuePercent > t.ExcellentMinEV &&
		correlationRisk < t.ExcellentMaxCorrelation &&
		kellyFraction > t.ExcellentMinKelly:
		return models.TierExcellent
	case expectedValuePercent > t.GoodMinEV && correlationRisk < t.GoodMaxCorrelation:
		return models.TierGood
	case expectedValuePercent > t.ModerateMinEV:
		return models.TierModerate
	default:
		return models.TierPoor
	}
}

// Classify uses the default thresholds
func Classify(expectedValuePercent, correlationRisk, kellyFraction float64) models.Tier {
	return NewClassifier(DefaultThresholds()).Classify(expectedValuePercent, correlationRisk, kellyFraction)
}
