package analytics

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/edge-engine/internal/models"
	"github.com/yourusername/edge-engine/internal/simulation"
)

// SimulateBet replays the assessed bet at its recommended Kelly fraction. The
// result complements the single-shot drawdown proxy with drawdowns over a
// sequence of bets.
func (e *Engine) SimulateBet(ctx context.Context, assessment *models.ValueAssessment, cfg simulation.Config) (*simulation.Result, error) {
	if assessment == nil {
		return nil, models.NewInvalidInputError("assessment", nil, "is required")
	}
	return e.simulate(ctx, assessment.LegID, assessment.TrueProbability, assessment.DecimalOdds, assessment.KellyFraction, cfg)
}

// SimulateParlay replays the evaluated parlay at its correlation-adjusted
// probability and recommended Kelly fraction
func (e *Engine) SimulateParlay(ctx context.Context, evaluation *models.ParlayEvaluation, cfg simulation.Config) (*simulation.Result, error) {
	if evaluation == nil {
		return nil, models.NewInvalidInputError("evaluation", nil, "is required")
	}
	return e.simulate(ctx, evaluation.ID.String(), evaluation.AdjustedProbability, evaluation.CombinedDecimalOdds, evaluation.KellyFraction, cfg)
}

func (e *Engine) simulate(ctx context.Context, id string, probability, decimalOdds, fraction float64, cfg simulation.Config) (*simulation.Result, error) {
	result, err := simulation.Run(ctx, probability, decimalOdds, fraction, cfg)
	if err != nil {
		e.analytics.LogEvaluationRejected("simulation", err)
		return nil, err
	}

	e.analytics.WithField("subject_id", id).WithFields(logrus.Fields{
		"iterations":          result.Iterations,
		"mean_return":         result.MeanReturn,
		"probability_of_ruin": result.ProbabilityOfRuin,
		"mean_max_drawdown":   result.MeanMaxDrawdown,
	}).Debug("Simulation completed")

	return result, nil
}
