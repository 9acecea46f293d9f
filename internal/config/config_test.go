package config

import (
	"strings"
	"testing"
)

const (
	validConfigPath              = "testdata/valid_config.yaml"
	expansionConfigPath          = "testdata/expansion_config.yaml"
	partialConfigPath            = "testdata/partial_config.yaml"
	nonexistentConfigPath        = "testdata/nonexistent_config.yaml"
	expectedNoErrorLoadingConfig = "expected no error loading config, got %v"
	expectedNoErrorMsg           = "expected no error, got %v"
	expectedNonNilConfig         = "expected non-nil config"
	edgeEngineName               = "edge-engine"
	developmentEnv               = "development"
	invalidEnv                   = "invalid"
	testAppName                  = "test-app"
)

// TestLoadConfigSuccess tests loading a valid configuration file
func TestLoadConfigSuccess(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorMsg, err)
	}

	if cfg == nil {
		t.Fatal(expectedNonNilConfig)
	}

	if cfg.App.Name != edgeEngineName {
		t.Errorf("expected app name '%s', got '%s'", edgeEngineName, cfg.App.Name)
	}

	if cfg.App.Environment != developmentEnv {
		t.Errorf("expected environment '%s', got '%s'", developmentEnv, cfg.App.Environment)
	}

	if cfg.Engine != DefaultEngine() {
		t.Errorf("expected engine config to match defaults, got %+v", cfg.Engine)
	}

	if !cfg.Metrics.Enabled || cfg.Metrics.Namespace != "edge_engine" {
		t.Errorf("unexpected metrics config %+v", cfg.Metrics)
	}
}

// TestLoadConfigFileNotFound tests handling of missing configuration file
func TestLoadConfigFileNotFound(t *testing.T) {
	_, err := Load(nonexistentConfigPath)
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

// TestLoadConfigEnvironmentVariables tests environment variable override
func TestLoadConfigEnvironmentVariables(t *testing.T) {
	t.Setenv("EDGE_ENGINE_APP_NAME", testAppName)

	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorMsg, err)
	}

	if cfg.App.Name != testAppName {
		t.Errorf("expected app name '%s' from environment, got '%s'", testAppName, cfg.App.Name)
	}
}

// TestLoadConfigEnvironmentVariableExpansion tests ${VAR} expansion in the config file
func TestLoadConfigEnvironmentVariableExpansion(t *testing.T) {
	t.Setenv("TEST_EDGE_ENVIRONMENT", "staging")
	t.Setenv("TEST_EDGE_MAX_FRACTION", "0.15")

	cfg, err := Load(expansionConfigPath)
	if err != nil {
		t.Fatalf("expected no error loading config with expansion, got %v", err)
	}

	if cfg.App.Environment != "staging" {
		t.Errorf("expected environment 'staging' from expansion, got '%s'", cfg.App.Environment)
	}

	if cfg.Engine.Kelly.MaxFraction != 0.15 {
		t.Errorf("expected max fraction 0.15 from expansion, got %v", cfg.Engine.Kelly.MaxFraction)
	}
}

// TestLoadWithDefaultsMissingFile tests that defaults apply when no file exists
func TestLoadWithDefaultsMissingFile(t *testing.T) {
	cfg, err := LoadWithDefaults(nonexistentConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorMsg, err)
	}

	if cfg.Engine != DefaultEngine() {
		t.Errorf("expected default engine config, got %+v", cfg.Engine)
	}

	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

// TestLoadWithDefaultsPartialFile tests that file values override defaults key by key
func TestLoadWithDefaultsPartialFile(t *testing.T) {
	cfg, err := LoadWithDefaults(partialConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	if cfg.App.Environment != "staging" {
		t.Errorf("expected environment 'staging', got '%s'", cfg.App.Environment)
	}

	if cfg.App.Name != edgeEngineName {
		t.Errorf("expected default app name, got '%s'", cfg.App.Name)
	}

	if cfg.Engine.Kelly.MaxFraction != 0.1 {
		t.Errorf("expected max fraction 0.1, got %v", cfg.Engine.Kelly.MaxFraction)
	}

	if cfg.Engine.Kelly.ModerateMultiplier != 0.5 {
		t.Errorf("expected default moderate multiplier, got %v", cfg.Engine.Kelly.ModerateMultiplier)
	}

	if cfg.Engine.Correlation.DampingFactor != 0.2 {
		t.Errorf("expected damping factor 0.2, got %v", cfg.Engine.Correlation.DampingFactor)
	}
}

// TestLoadWithDefaultsEnvironmentOverride tests nested keys from the environment
func TestLoadWithDefaultsEnvironmentOverride(t *testing.T) {
	t.Setenv("EDGE_ENGINE_ENGINE_KELLY_MAX_FRACTION", "0.2")

	cfg, err := LoadWithDefaults(nonexistentConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorMsg, err)
	}

	if cfg.Engine.Kelly.MaxFraction != 0.2 {
		t.Errorf("expected max fraction 0.2 from environment, got %v", cfg.Engine.Kelly.MaxFraction)
	}
}

// TestValidateSuccess tests validation of a valid configuration
func TestValidateSuccess(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	if err := Validate(cfg); err != nil {
		t.Fatalf("expected no validation error, got %v", err)
	}
}

// TestValidateInvalidEnvironment tests validation of invalid environment
func TestValidateInvalidEnvironment(t *testing.T) {
	cfg := Default()
	cfg.App.Environment = invalidEnv

	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for invalid environment")
	}
}

// TestValidateInvalidLogLevel tests validation of invalid log level
func TestValidateInvalidLogLevel(t *testing.T) {
	cfg := Default()
	cfg.App.LogLevel = "verbose"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error for invalid log level")
	}

	if !strings.Contains(err.Error(), "LogLevel") {
		t.Errorf("expected LogLevel in error, got: %v", err)
	}
}

// TestValidateEngineRanges tests numeric bounds on engine constants
func TestValidateEngineRanges(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*EngineConfig)
		field  string
	}{
		{"zero kelly cap", func(e *EngineConfig) { e.Kelly.MaxFraction = 0 }, "MaxFraction"},
		{"kelly cap above bankroll", func(e *EngineConfig) { e.Kelly.MaxFraction = 1.5 }, "MaxFraction"},
		{"negative multiplier", func(e *EngineConfig) { e.Kelly.ConservativeMultiplier = -0.1 }, "ConservativeMultiplier"},
		{"correlation weight above one", func(e *EngineConfig) { e.Correlation.SameGameSideWeight = 1.2 }, "SameGameSideWeight"},
		{"damping above one", func(e *EngineConfig) { e.Correlation.DampingFactor = 2 }, "DampingFactor"},
		{"zero probability floor", func(e *EngineConfig) { e.Correlation.ProbabilityFloor = 0 }, "ProbabilityFloor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := DefaultEngine()
			tt.mutate(&engine)

			err := ValidateEngine(engine)
			if err == nil {
				t.Fatalf("expected validation error for %s", tt.name)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("expected %s in error, got: %v", tt.field, err)
			}
		})
	}
}

// TestValidateEngineCrossField tests ordering constraints between engine constants
func TestValidateEngineCrossField(t *testing.T) {
	engine := DefaultEngine()
	engine.Kelly.ConservativeMultiplier = 0.75
	if err := ValidateEngine(engine); err == nil {
		t.Fatal("expected error when conservative multiplier exceeds moderate")
	}

	engine = DefaultEngine()
	engine.Thresholds.ModerateMinEV = 10
	if err := ValidateEngine(engine); err == nil {
		t.Fatal("expected error when moderate EV threshold exceeds good")
	}

	if err := ValidateEngine(DefaultEngine()); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

// TestValidateMetricsNamespace tests that enabled metrics need a namespace
func TestValidateMetricsNamespace(t *testing.T) {
	cfg := Default()
	cfg.Metrics.Namespace = ""
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for enabled metrics without namespace")
	}

	cfg.Metrics.Enabled = false
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected disabled metrics to validate without namespace, got %v", err)
	}
}

// TestIsDevelopment tests environment check function
func TestIsDevelopment(t *testing.T) {
	cfg := &Config{
		App: AppConfig{Environment: developmentEnv},
	}

	if !cfg.IsDevelopment() {
		t.Error("expected IsDevelopment() to return true")
	}

	if cfg.IsProduction() {
		t.Error("expected IsProduction() to return false")
	}
}

// TestIsProduction tests production environment check
func TestIsProduction(t *testing.T) {
	cfg := &Config{
		App: AppConfig{Environment: "production"},
	}

	if !cfg.IsProduction() {
		t.Error("expected IsProduction() to return true")
	}

	if cfg.IsStaging() {
		t.Error("expected IsStaging() to return false")
	}
}
