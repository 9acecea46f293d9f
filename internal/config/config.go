// Package config provides configuration management for the edge engine.
package config

// Config represents the complete application configuration
type Config struct {
	App     AppConfig     `mapstructure:"app" validate:"required"`
	Engine  EngineConfig  `mapstructure:"engine" validate:"required"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// EngineConfig holds every tuning constant of the analytics engine. None of these
// are inputs to a calculation; odds and probabilities always come from the caller.
type EngineConfig struct {
	Kelly       KellyConfig       `mapstructure:"kelly" validate:"required"`
	Correlation CorrelationConfig `mapstructure:"correlation" validate:"required"`
	Thresholds  ThresholdsConfig  `mapstructure:"thresholds" validate:"required"`
}

// KellyConfig represents stake sizing configuration
type KellyConfig struct {
	ConservativeMultiplier float64 `mapstructure:"conservative_multiplier" validate:"gt=0,lte=1"`
	ModerateMultiplier     float64 `mapstructure:"moderate_multiplier" validate:"gt=0,lte=1"`
	AggressiveMultiplier   float64 `mapstructure:"aggressive_multiplier" validate:"gt=0,lte=1"`
	MaxFraction            float64 `mapstructure:"max_fraction" validate:"gt=0,lte=1"`
}

// CorrelationConfig represents the heuristic correlation weights and the damping
// applied to parlay probabilities
type CorrelationConfig struct {
	SameGameSideWeight float64 `mapstructure:"same_game_side_weight" validate:"gte=-1,lte=1"`
	SameGameWeight     float64 `mapstructure:"same_game_weight" validate:"gte=-1,lte=1"`
	SameSportWeight    float64 `mapstructure:"same_sport_weight" validate:"gte=-1,lte=1"`
	DampingFactor      float64 `mapstructure:"damping_factor" validate:"gte=0,lte=1"`
	ProbabilityFloor   float64 `mapstructure:"probability_floor" validate:"gt=0,lt=1"`
}

// ThresholdsConfig represents recommendation tier cut-offs
type ThresholdsConfig struct {
	ExcellentMinEV          float64 `mapstructure:"excellent_min_ev"`
	ExcellentMaxCorrelation float64 `mapstructure:"excellent_max_correlation" validate:"gte=0,lte=1"`
	ExcellentMinKelly       float64 `mapstructure:"excellent_min_kelly" validate:"gte=0,lte=1"`
	GoodMinEV               float64 `mapstructure:"good_min_ev"`
	GoodMaxCorrelation      float64 `mapstructure:"good_max_correlation" validate:"gte=0,lte=1"`
	ModerateMinEV           float64 `mapstructure:"moderate_min_ev"`
}

// MetricsConfig represents metrics configuration
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace" validate:"required_if=Enabled true"`
}

// DefaultEngine returns the engine constants used across the dashboards: quarter,
// half and full Kelly capped at 25% of bankroll, 0.7/0.3/0.1 correlation weights
// with 0.1 damping, and the 15/8/3 EV tier cut-offs.
func DefaultEngine() EngineConfig {
	return EngineConfig{
		Kelly: KellyConfig{
			ConservativeMultiplier: 0.25,
			ModerateMultiplier:     0.5,
			AggressiveMultiplier:   1.0,
			MaxFraction:            0.25,
		},
		Correlation: CorrelationConfig{
			SameGameSideWeight: 0.7,
			SameGameWeight:     0.3,
			SameSportWeight:    0.1,
			DampingFactor:      0.1,
			ProbabilityFloor:   0.01,
		},
		Thresholds: ThresholdsConfig{
			ExcellentMinEV:          15,
			ExcellentMaxCorrelation: 0.3,
			ExcellentMinKelly:       0.02,
			GoodMinEV:               8,
			GoodMaxCorrelation:      0.5,
			ModerateMinEV:           3,
		},
	}
}

// Default returns a complete configuration built on DefaultEngine
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:        "edge-engine",
			Environment: "development",
			LogLevel:    "info",
		},
		Engine: DefaultEngine(),
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "edge_engine",
		},
	}
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsStaging checks if the application is running in staging mode
func (c *Config) IsStaging() bool {
	return c.App.Environment == "staging"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}
