package app

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"taostats/internal/model"
)

// Output filename prefixes, matched to the analysis the files carry.
const (
	ChartPrefix = "tao_staking_analysis"
	TablePrefix = "tao_staking_data"
)

// Config holds application configuration from env. Built once at startup and
// passed down; nothing reads the environment after load.
type Config struct {
	APIKey     string `validate:"required"`
	BaseURL    string `validate:"required,url"`
	Frequency  string `validate:"required"`
	PageLimit  int    `validate:"min=1,max=200"`
	OutputDir  string `validate:"required"`
	SaveFormat string `validate:"oneof=csv json parquet xlsx"`
	LogLevel   string // debug | info | warn | error

	HTTPTimeout time.Duration
	MaxRetries  int `validate:"min=1"`

	// Optional date window (whole days, UTC). Zero means unbounded.
	FromDate time.Time
	ToDate   time.Time
}

// LoadConfig reads config from a .env file (if present) and the environment,
// then validates it. Returns a ConfigError on anything invalid.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load() // .env is optional

	cfg := &Config{
		APIKey:      os.Getenv("TAO_STATS_API_KEY"),
		BaseURL:     getEnv("TAO_STATS_BASE_URL", "https://api.taostats.io/api/stats/history/v1"),
		Frequency:   getEnv("TAO_STATS_FREQUENCY", "by_day"),
		PageLimit:   50,
		OutputDir:   getEnv("OUTPUT_DIR", "."),
		SaveFormat:  getEnv("SAVE_FORMAT", "csv"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		HTTPTimeout: 30 * time.Second,
		MaxRetries:  3,
	}
	if v := os.Getenv("TAO_STATS_PAGE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageLimit = n
		}
	}
	if v := os.Getenv("HTTP_TIMEOUT_SEC"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HTTPTimeout = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxRetries = n
		}
	}

	var err error
	if cfg.FromDate, err = parseDate("FROM_DATE"); err != nil {
		return nil, err
	}
	if cfg.ToDate, err = parseDate("TO_DATE"); err != nil {
		return nil, err
	}
	if !cfg.FromDate.IsZero() && !cfg.ToDate.IsZero() && cfg.ToDate.Before(cfg.FromDate) {
		return nil, &model.ConfigError{Field: "FROM_DATE/TO_DATE", Reason: "start must not be after end"}
	}

	if err := validator.New().Struct(cfg); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			f := verrs[0]
			return nil, &model.ConfigError{
				Field:  f.Field(),
				Reason: fmt.Sprintf("failed %q validation", f.Tag()),
			}
		}
		return nil, &model.ConfigError{Reason: err.Error()}
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDate(key string) (time.Time, error) {
	v := os.Getenv(key)
	if v == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation("2006-01-02", v, time.UTC)
	if err != nil {
		return time.Time{}, &model.ConfigError{Field: key, Reason: "want YYYY-MM-DD, got " + v}
	}
	return t, nil
}
