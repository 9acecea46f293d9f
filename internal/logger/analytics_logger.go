package logger

import (
	"github.com/sirupsen/logrus"
	"github.com/yourusername/edge-engine/internal/models"
)

// AnalyticsLogger provides dedicated logging for bet and parlay evaluations.
type AnalyticsLogger struct {
	*logrus.Entry
}

// NewAnalyticsLogger creates a new analytics logger.
func NewAnalyticsLogger(baseLogger *logrus.Logger) *AnalyticsLogger {
	return &AnalyticsLogger{
		Entry: baseLogger.WithField("component", "analytics"),
	}
}

// LogBetEvaluation logs a completed single-bet evaluation.
func (al *AnalyticsLogger) LogBetEvaluation(assessment *models.ValueAssessment, tolerance models.RiskTolerance, durationMs float64) {
	al.WithFields(logrus.Fields{
		"leg_id":                 assessment.LegID,
		"decimal_odds":           assessment.DecimalOdds,
		"true_probability":       assessment.TrueProbability,
		"implied_probability":    assessment.ImpliedProbability,
		"edge":                   assessment.Edge,
		"expected_value_pct":     assessment.ExpectedValuePercent,
		"kelly_fraction":         assessment.KellyFraction,
		"recommended_stake":      assessment.RecommendedStake.StringFixed(2),
		"risk_tolerance":         tolerance,
		"tier":                   assessment.Tier,
		"evaluation_duration_ms": durationMs,
	}).Info("Bet evaluation completed")
}

// LogParlayEvaluation logs a completed parlay evaluation.
func (al *AnalyticsLogger) LogParlayEvaluation(evaluation *models.ParlayEvaluation, tolerance models.RiskTolerance, durationMs float64) {
	al.WithFields(logrus.Fields{
		"evaluation_id":          evaluation.ID.String(),
		"legs":                   len(evaluation.Legs),
		"combined_decimal_odds":  evaluation.CombinedDecimalOdds,
		"naive_probability":      evaluation.NaiveProbability,
		"adjusted_probability":   evaluation.AdjustedProbability,
		"correlation_risk":       evaluation.RiskProfile.CorrelationRisk,
		"expected_value_pct":     evaluation.ExpectedValuePercent,
		"kelly_fraction":         evaluation.KellyFraction,
		"recommended_stake":      evaluation.RecommendedStake.StringFixed(2),
		"risk_tolerance":         tolerance,
		"tier":                   evaluation.Tier,
		"evaluation_duration_ms": durationMs,
	}).Info("Parlay evaluation completed")
}

// LogEvaluationRejected logs an evaluation that failed input validation.
func (al *AnalyticsLogger) LogEvaluationRejected(kind string, err error) {
	al.WithFields(logrus.Fields{
		"evaluation_kind": kind,
		"error_kind":      models.ErrorKind(err),
	}).WithError(err).Warn("Evaluation rejected")
}
