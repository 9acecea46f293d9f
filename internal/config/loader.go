// Package config provides configuration management for the edge engine.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultConfigPath = "config/config.yaml"
	envPrefix         = "EDGE_ENGINE"
)

// Load reads and parses the configuration from file and environment variables
// It expands environment variable placeholders in the YAML file (${VAR_NAME})
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = defaultConfigPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found at %s: %w", configPath, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	v := newViper()
	if err := v.ReadConfig(bytes.NewBufferString(os.ExpandEnv(string(data)))); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}

// LoadWithDefaults loads configuration with default values for every field
// A missing file is not an error; defaults and environment variables are used
func LoadWithDefaults(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = defaultConfigPath
	}

	v := newViper()
	setDefaults(v)

	if data, err := os.ReadFile(configPath); err == nil {
		if err := v.ReadConfig(bytes.NewBufferString(os.ExpandEnv(string(data)))); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func setDefaults(v *viper.Viper) {
	def := Default()

	v.SetDefault("app.name", def.App.Name)
	v.SetDefault("app.environment", def.App.Environment)
	v.SetDefault("app.log_level", def.App.LogLevel)

	v.SetDefault("engine.kelly.conservative_multiplier", def.Engine.Kelly.ConservativeMultiplier)
	v.SetDefault("engine.kelly.moderate_multiplier", def.Engine.Kelly.ModerateMultiplier)
	v.SetDefault("engine.kelly.aggressive_multiplier", def.Engine.Kelly.AggressiveMultiplier)
	v.SetDefault("engine.kelly.max_fraction", def.Engine.Kelly.MaxFraction)

	v.SetDefault("engine.correlation.same_game_side_weight", def.Engine.Correlation.SameGameSideWeight)
	v.SetDefault("engine.correlation.same_game_weight", def.Engine.Correlation.SameGameWeight)
	v.SetDefault("engine.correlation.same_sport_weight", def.Engine.Correlation.SameSportWeight)
	v.SetDefault("engine.correlation.damping_factor", def.Engine.Correlation.DampingFactor)
	v.SetDefault("engine.correlation.probability_floor", def.Engine.Correlation.ProbabilityFloor)

	v.SetDefault("engine.thresholds.excellent_min_ev", def.Engine.Thresholds.ExcellentMinEV)
	v.SetDefault("engine.thresholds.excellent_max_correlation", def.Engine.Thresholds.ExcellentMaxCorrelation)
	v.SetDefault("engine.thresholds.excellent_min_kelly", def.Engine.Thresholds.ExcellentMinKelly)
	v.SetDefault("engine.thresholds.good_min_ev", def.Engine.Thresholds.GoodMinEV)
	v.SetDefault("engine.thresholds.good_max_correlation", def.Engine.Thresholds.GoodMaxCorrelation)
	v.SetDefault("engine.thresholds.moderate_min_ev", def.Engine.Thresholds.ModerateMinEV)

	v.SetDefault("metrics.enabled", def.Metrics.Enabled)
	v.SetDefault("metrics.namespace", def.Metrics.Namespace)
}
