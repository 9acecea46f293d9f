// Package analytics evaluates single bets and parlays end to end: odds conversion,
// value, staking, correlation risk and recommendation tier.
package analytics

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/edge-engine/internal/config"
	"github.com/yourusername/edge-engine/internal/logger"
	"github.com/yourusername/edge-engine/internal/metrics"
	"github.com/yourusername/edge-engine/internal/models"
	"github.com/yourusername/edge-engine/internal/odds"
	"github.com/yourusername/edge-engine/internal/parlay"
	"github.com/yourusername/edge-engine/internal/recommendation"
	"github.com/yourusername/edge-engine/internal/risk"
	"github.com/yourusername/edge-engine/internal/staking"
	"github.com/yourusername/edge-engine/internal/value"
)

// parlayNamespace scopes deterministic parlay evaluation IDs
var parlayNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("edge-engine/parlay"))

// Engine evaluates bets and parlays. It holds only immutable configuration and is
// safe for concurrent use.
type Engine struct {
	config     config.EngineConfig
	logger     *logrus.Logger
	analytics  *logger.AnalyticsLogger
	correlator risk.Correlator
	recorder   metrics.Recorder
	kelly      *staking.Calculator
	risk       *risk.Model
	classifier *recommendation.Classifier
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the logger used for evaluation and sizing logs
func WithLogger(l *logrus.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithCorrelator replaces the heuristic pairwise correlator
func WithCorrelator(c risk.Correlator) Option {
	return func(e *Engine) {
		if c != nil {
			e.correlator = c
		}
	}
}

// WithRecorder sets the metrics recorder
func WithRecorder(r metrics.Recorder) Option {
	return func(e *Engine) {
		if r != nil {
			e.recorder = r
		}
	}
}

// NewEngine validates the configuration and builds an engine
func NewEngine(cfg config.EngineConfig, opts ...Option) (*Engine, error) {
	if err := config.ValidateEngine(cfg); err != nil {
		return nil, fmt.Errorf("invalid engine configuration: %w", err)
	}

	e := &Engine{
		config:   cfg,
		logger:   logger.NewNopLogger(),
		recorder: metrics.NopRecorder{},
	}
	for _, opt := range opts {
		opt(e)
	}

	e.analytics = logger.NewAnalyticsLogger(e.logger)
	e.kelly = staking.NewCalculator(cfg.Kelly, e.logger)
	e.risk = risk.NewModel(cfg.Correlation, e.correlator)
	e.classifier = recommendation.NewClassifier(recommendation.FromConfig(cfg.Thresholds))

	return e, nil
}

// Config returns the engine configuration
func (e *Engine) Config() config.EngineConfig {
	return e.config
}

// EvaluateBet prices a single leg, sizes it for the bankroll and classifies it. A
// single bet carries no correlation risk.
func (e *Engine) EvaluateBet(leg models.Leg, bankroll float64, tolerance models.RiskTolerance) (*models.ValueAssessment, error) {
	start := time.Now()

	assessment, err := e.evaluateBet(leg, bankroll, tolerance)
	if err != nil {
		e.reject(metrics.KindBet, err)
		return nil, err
	}

	elapsed := time.Since(start)
	e.analytics.LogBetEvaluation(assessment, tolerance, float64(elapsed.Microseconds())/1000)
	e.recorder.RecordEvaluation(metrics.KindBet, assessment.Tier, 1, elapsed)

	return assessment, nil
}

func (e *Engine) evaluateBet(leg models.Leg, bankroll float64, tolerance models.RiskTolerance) (*models.ValueAssessment, error) {
	if err := parlay.ValidateLeg(leg); err != nil {
		return nil, err
	}

	decimalOdds, err := odds.ToDecimal(leg.Odds)
	if err != nil {
		return nil, err
	}
	implied, err := odds.Implied(leg.Odds)
	if err != nil {
		return nil, err
	}

	evPercent, err := value.ExpectedValuePercent(leg.TrueProbability, decimalOdds)
	if err != nil {
		return nil, err
	}

	sizing, err := e.kelly.Size(leg.TrueProbability, decimalOdds, bankroll, tolerance)
	if err != nil {
		return nil, err
	}
	payout, err := odds.Payout(bankroll*sizing.Fraction, decimalOdds)
	if err != nil {
		return nil, err
	}

	return &models.ValueAssessment{
		LegID:                leg.ID,
		DecimalOdds:          decimalOdds,
		TrueProbability:      leg.TrueProbability,
		ImpliedProbability:   implied,
		Edge:                 value.Edge(leg.TrueProbability, implied),
		ExpectedValuePercent: evPercent,
		FullKellyFraction:    sizing.FullKelly,
		KellyFraction:        sizing.Fraction,
		RecommendedStake:     sizing.RecommendedStake,
		PotentialPayout:      payout,
		Tier:                 e.classifier.Classify(evPercent, 0, sizing.Fraction),
	}, nil
}

// EvaluateParlay combines the legs, discounts the naive probability by the legs'
// correlation risk, and sizes and classifies the parlay on the adjusted probability
func (e *Engine) EvaluateParlay(legs []models.Leg, bankroll float64, tolerance models.RiskTolerance) (*models.ParlayEvaluation, error) {
	start := time.Now()

	evaluation, err := e.evaluateParlay(legs, bankroll, tolerance)
	if err != nil {
		e.reject(metrics.KindParlay, err)
		return nil, err
	}

	elapsed := time.Since(start)
	e.analytics.LogParlayEvaluation(evaluation, tolerance, float64(elapsed.Microseconds())/1000)
	e.recorder.RecordEvaluation(metrics.KindParlay, evaluation.Tier, len(evaluation.Legs), elapsed)

	return evaluation, nil
}

func (e *Engine) evaluateParlay(legs []models.Leg, bankroll float64, tolerance models.RiskTolerance) (*models.ParlayEvaluation, error) {
	p, err := parlay.New(legs)
	if err != nil {
		return nil, err
	}

	combined := p.CombinedDecimalOdds()
	american, err := p.CombinedAmericanOdds()
	if err != nil {
		return nil, err
	}

	combinedLegs := p.Legs()
	naive := p.NaiveProbability()
	correlationRisk := e.risk.CorrelationRisk(combinedLegs)
	adjusted := e.risk.AdjustedProbability(naive, correlationRisk)

	evPercent, err := value.ExpectedValuePercent(adjusted, combined)
	if err != nil {
		return nil, err
	}

	sizing, err := e.kelly.Size(adjusted, combined, bankroll, tolerance)
	if err != nil {
		return nil, err
	}
	payout, err := odds.Payout(bankroll*sizing.Fraction, combined)
	if err != nil {
		return nil, err
	}

	return &models.ParlayEvaluation{
		ID:                   EvaluationID(combinedLegs),
		Legs:                 combinedLegs,
		CombinedDecimalOdds:  combined,
		CombinedAmericanOdds: american,
		NaiveProbability:     naive,
		ImpliedProbability:   p.ImpliedProbability(),
		AdjustedProbability:  adjusted,
		ExpectedValuePercent: evPercent,
		FullKellyFraction:    sizing.FullKelly,
		KellyFraction:        sizing.Fraction,
		RecommendedStake:     sizing.RecommendedStake,
		PotentialPayout:      payout,
		RiskProfile:          e.risk.Profile(combinedLegs, evPercent, adjusted),
		Tier:                 e.classifier.Classify(evPercent, correlationRisk, sizing.Fraction),
	}, nil
}

// EvaluationID derives a stable identifier from the ordered leg IDs, so evaluating
// the same parlay twice yields the same ID. Each ID is length-prefixed, so no
// choice of characters inside an ID can make two leg lists hash alike.
func EvaluationID(legs []models.Leg) uuid.UUID {
	var b strings.Builder
	for _, leg := range legs {
		b.WriteString(strconv.Itoa(len(leg.ID)))
		b.WriteByte(':')
		b.WriteString(leg.ID)
	}
	return uuid.NewSHA1(parlayNamespace, []byte(b.String()))
}

func (e *Engine) reject(kind string, err error) {
	e.analytics.LogEvaluationRejected(kind, err)
	e.recorder.RecordEvaluationError(kind, err)
}
