package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	OCR       OCRConfig
	Extractor ExtractorConfig
	Scoring   ScoringConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
	MaxBodyMB    int64         `mapstructure:"max_body_mb"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OCRConfig holds settings for the external OCR provider.
type OCRConfig struct {
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	Endpoint    string `mapstructure:"endpoint"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// ExtractorConfig holds settings for a single LLM extraction provider.
type ExtractorConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	AccountID    string `mapstructure:"account_id"`
	DefaultModel string `mapstructure:"default_model"`
	Endpoint     string `mapstructure:"endpoint"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// ScoringConfig holds the tunable constants of the confidence pipeline.
// The three weights are a calibration, not a derived formula; keep their
// sum at 1.0 so scores stay in [0,1].
type ScoringConfig struct {
	CleanStopWeight    float64 `mapstructure:"clean_stop_weight"`
	SchemaValidWeight  float64 `mapstructure:"schema_valid_weight"`
	ReserveWeight      float64 `mapstructure:"reserve_weight"`
	SuspicionThreshold int     `mapstructure:"suspicion_threshold"`
	ConfidenceCap      float64 `mapstructure:"confidence_cap"`
	OCRWeight          float64 `mapstructure:"ocr_weight"`
	ExtractionWeight   float64 `mapstructure:"extraction_weight"`
}

// Load reads configuration from environment variables with the OCRCHECKS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("OCRCHECKS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.max_body_mb", 10)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// OCR defaults
	v.SetDefault("ocr.api_key", "")
	v.SetDefault("ocr.model", "mistral-ocr-latest")
	v.SetDefault("ocr.endpoint", "")
	v.SetDefault("ocr.timeout_secs", 60)

	// Extractor defaults
	v.SetDefault("extractor.provider", "mistral")
	v.SetDefault("extractor.api_key", "")
	v.SetDefault("extractor.account_id", "")
	v.SetDefault("extractor.default_model", "")
	v.SetDefault("extractor.endpoint", "")
	v.SetDefault("extractor.timeout_secs", 120)

	// Scoring defaults
	v.SetDefault("scoring.clean_stop_weight", 0.6)
	v.SetDefault("scoring.schema_valid_weight", 0.2)
	v.SetDefault("scoring.reserve_weight", 0.2)
	v.SetDefault("scoring.suspicion_threshold", 2)
	v.SetDefault("scoring.confidence_cap", 0.3)
	v.SetDefault("scoring.ocr_weight", 0.4)
	v.SetDefault("scoring.extraction_weight", 0.6)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                 "OCRCHECKS_SERVER_PORT",
		"server.read_timeout":         "OCRCHECKS_SERVER_READ_TIMEOUT",
		"server.write_timeout":        "OCRCHECKS_SERVER_WRITE_TIMEOUT",
		"server.environment":          "OCRCHECKS_SERVER_ENVIRONMENT",
		"server.max_body_mb":          "OCRCHECKS_SERVER_MAX_BODY_MB",
		"log.level":                   "OCRCHECKS_LOG_LEVEL",
		"log.format":                  "OCRCHECKS_LOG_FORMAT",
		"ocr.api_key":                 "OCRCHECKS_OCR_API_KEY",
		"ocr.model":                   "OCRCHECKS_OCR_MODEL",
		"ocr.endpoint":                "OCRCHECKS_OCR_ENDPOINT",
		"ocr.timeout_secs":            "OCRCHECKS_OCR_TIMEOUT_SECS",
		"extractor.provider":          "OCRCHECKS_EXTRACTOR_PROVIDER",
		"extractor.api_key":           "OCRCHECKS_EXTRACTOR_API_KEY",
		"extractor.account_id":        "OCRCHECKS_EXTRACTOR_ACCOUNT_ID",
		"extractor.default_model":     "OCRCHECKS_EXTRACTOR_DEFAULT_MODEL",
		"extractor.endpoint":          "OCRCHECKS_EXTRACTOR_ENDPOINT",
		"extractor.timeout_secs":      "OCRCHECKS_EXTRACTOR_TIMEOUT_SECS",
		"scoring.clean_stop_weight":   "OCRCHECKS_SCORING_CLEAN_STOP_WEIGHT",
		"scoring.schema_valid_weight": "OCRCHECKS_SCORING_SCHEMA_VALID_WEIGHT",
		"scoring.reserve_weight":      "OCRCHECKS_SCORING_RESERVE_WEIGHT",
		"scoring.suspicion_threshold": "OCRCHECKS_SCORING_SUSPICION_THRESHOLD",
		"scoring.confidence_cap":      "OCRCHECKS_SCORING_CONFIDENCE_CAP",
		"scoring.ocr_weight":          "OCRCHECKS_SCORING_OCR_WEIGHT",
		"scoring.extraction_weight":   "OCRCHECKS_SCORING_EXTRACTION_WEIGHT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if OCRCHECKS_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("OCRCHECKS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
		MaxBodyMB:    v.GetInt64("server.max_body_mb"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.OCR = OCRConfig{
		APIKey:      v.GetString("ocr.api_key"),
		Model:       v.GetString("ocr.model"),
		Endpoint:    v.GetString("ocr.endpoint"),
		TimeoutSecs: v.GetInt("ocr.timeout_secs"),
	}
	cfg.Extractor = ExtractorConfig{
		Provider:     v.GetString("extractor.provider"),
		APIKey:       v.GetString("extractor.api_key"),
		AccountID:    v.GetString("extractor.account_id"),
		DefaultModel: v.GetString("extractor.default_model"),
		Endpoint:     v.GetString("extractor.endpoint"),
		TimeoutSecs:  v.GetInt("extractor.timeout_secs"),
	}
	cfg.Scoring = ScoringConfig{
		CleanStopWeight:    v.GetFloat64("scoring.clean_stop_weight"),
		SchemaValidWeight:  v.GetFloat64("scoring.schema_valid_weight"),
		ReserveWeight:      v.GetFloat64("scoring.reserve_weight"),
		SuspicionThreshold: v.GetInt("scoring.suspicion_threshold"),
		ConfidenceCap:      v.GetFloat64("scoring.confidence_cap"),
		OCRWeight:          v.GetFloat64("scoring.ocr_weight"),
		ExtractionWeight:   v.GetFloat64("scoring.extraction_weight"),
	}

	return cfg, nil
}
