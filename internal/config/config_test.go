package config

import (
	"os"
	"testing"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	os.Setenv("DATABASE_URL", "postgres://localhost:5432/mobileuurka")
	t.Cleanup(func() { os.Unsetenv("DATABASE_URL") })
}

func TestLoadDefaults(t *testing.T) {
	setBaseEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if cfg.StalenessThresholdDays != 30 {
		t.Errorf("expected default staleness threshold 30, got %d", cfg.StalenessThresholdDays)
	}
	if cfg.ScoringTimeoutSeconds != 30 {
		t.Errorf("expected default scoring timeout 30, got %d", cfg.ScoringTimeoutSeconds)
	}
	if !cfg.IsDev() {
		t.Error("expected default env to be development")
	}
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	os.Unsetenv("DATABASE_URL")
	if _, err := Load(); err == nil {
		t.Error("expected error for missing DATABASE_URL")
	}
}

func TestValidateDevelopment(t *testing.T) {
	cfg := &Config{Env: "development", StalenessThresholdDays: 30, ScoringTimeoutSeconds: 30}
	if err := cfg.Validate(); err != nil {
		t.Errorf("dev config should validate without scoring URLs: %v", err)
	}
}

func TestValidateProductionRequiresScoringURLs(t *testing.T) {
	cfg := &Config{
		Env:                    "production",
		JWTSecret:              "secret",
		StalenessThresholdDays: 30,
		ScoringTimeoutSeconds:  30,
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing RISK_SCORING_URL")
	}
	cfg.RiskScoringURL = "https://scoring.example.com"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing FACTOR_EXTRACTION_URL")
	}
	cfg.FactorExtractionURL = "https://factors.example.com"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateRejectsNonPositiveThreshold(t *testing.T) {
	cfg := &Config{Env: "development", StalenessThresholdDays: 0, ScoringTimeoutSeconds: 30}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero staleness threshold")
	}
	cfg.StalenessThresholdDays = -5
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative staleness threshold")
	}
}

func TestValidateProductionRequiresJWTSecret(t *testing.T) {
	cfg := &Config{
		Env:                    "production",
		RiskScoringURL:         "https://scoring.example.com",
		FactorExtractionURL:    "https://factors.example.com",
		StalenessThresholdDays: 30,
		ScoringTimeoutSeconds:  30,
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing JWT_SECRET in production")
	}
}
