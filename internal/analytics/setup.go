package analytics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/edge-engine/internal/config"
	"github.com/yourusername/edge-engine/internal/logger"
	"github.com/yourusername/edge-engine/internal/metrics"
)

// NewEngineFromConfig validates a loaded configuration and builds an engine with
// the configured logger and, when metrics are enabled, a collector registered on
// reg. Extra options are applied last.
func NewEngineFromConfig(cfg *config.Config, reg prometheus.Registerer, opts ...Option) (*Engine, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	log := logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
	base := []Option{WithLogger(log)}

	if cfg.Metrics.Enabled {
		if reg == nil {
			return nil, fmt.Errorf("metrics are enabled but no registerer was supplied")
		}
		collector, err := metrics.NewCollector(cfg.Metrics.Namespace, reg)
		if err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		base = append(base, WithRecorder(collector))
	}

	log.WithFields(logrus.Fields{
		"app":             cfg.App.Name,
		"environment":     cfg.App.Environment,
		"metrics_enabled": cfg.Metrics.Enabled,
	}).Info("Analytics engine configured")

	return NewEngine(cfg.Engine, append(base, opts...)...)
}
