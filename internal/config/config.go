package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port                   string   `mapstructure:"PORT"`
	Env                    string   `mapstructure:"ENV"`
	DatabaseURL            string   `mapstructure:"DATABASE_URL"`
	DBMaxConns             int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns             int32    `mapstructure:"DB_MIN_CONNS"`
	RedisURL               string   `mapstructure:"REDIS_URL"`
	JWTSecret              string   `mapstructure:"JWT_SECRET"`
	DefaultTenant          string   `mapstructure:"DEFAULT_TENANT"`
	CORSOrigins            []string `mapstructure:"CORS_ORIGINS"`
	StalenessThresholdDays int      `mapstructure:"STALENESS_THRESHOLD_DAYS"`
	RiskScoringURL         string   `mapstructure:"RISK_SCORING_URL"`
	FactorExtractionURL    string   `mapstructure:"FACTOR_EXTRACTION_URL"`
	ScoringTimeoutSeconds  int      `mapstructure:"SCORING_TIMEOUT_SECONDS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("DEFAULT_TENANT", "default")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("STALENESS_THRESHOLD_DAYS", 30)
	v.SetDefault("SCORING_TIMEOUT_SECONDS", 30)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("REDIS_URL")
	v.BindEnv("JWT_SECRET")
	v.BindEnv("DEFAULT_TENANT")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("STALENESS_THRESHOLD_DAYS")
	v.BindEnv("RISK_SCORING_URL")
	v.BindEnv("FACTOR_EXTRACTION_URL")
	v.BindEnv("SCORING_TIMEOUT_SECONDS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate checks that the configuration is safe to run. Outside development
// both scoring endpoints and the JWT secret must be configured, and the
// staleness threshold must be a positive number of days.
func (c *Config) Validate() error {
	if c.StalenessThresholdDays <= 0 {
		return fmt.Errorf("STALENESS_THRESHOLD_DAYS must be positive, got %d", c.StalenessThresholdDays)
	}
	if c.ScoringTimeoutSeconds <= 0 {
		return fmt.Errorf("SCORING_TIMEOUT_SECONDS must be positive, got %d", c.ScoringTimeoutSeconds)
	}
	if c.IsDev() {
		return nil
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required outside development")
	}
	if c.RiskScoringURL == "" {
		return fmt.Errorf("RISK_SCORING_URL is required outside development")
	}
	if c.FactorExtractionURL == "" {
		return fmt.Errorf("FACTOR_EXTRACTION_URL is required outside development")
	}
	return nil
}
