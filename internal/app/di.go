package app

import (
	"fmt"

	"taostats/internal/chart"
	"taostats/internal/saver"
	"taostats/internal/taostats"
)

// ProvideConfig loads and validates config from the environment (for Wire).
func ProvideConfig() (*Config, error) {
	return LoadConfig()
}

// ProvideClient creates the stats API client from config (for Wire).
func ProvideClient(cfg *Config) (*taostats.Client, error) {
	return taostats.NewClient(taostats.Options{
		BaseURL:    cfg.BaseURL,
		APIKey:     cfg.APIKey,
		Frequency:  cfg.Frequency,
		PageLimit:  cfg.PageLimit,
		Timeout:    cfg.HTTPTimeout,
		MaxRetries: cfg.MaxRetries,
	})
}

// ProvideTableSaver creates the table saver from config (for Wire).
// Returns an error if SaveFormat is not supported.
func ProvideTableSaver(cfg *Config) (saver.TableSaver, error) {
	ts := saver.NewTableSaver(cfg.SaveFormat)
	if ts == nil {
		return nil, fmt.Errorf("unsupported SAVE_FORMAT %q (use: csv, json, parquet, xlsx)", cfg.SaveFormat)
	}
	return ts, nil
}

// ProvideRenderer creates the chart renderer (for Wire).
func ProvideRenderer() *chart.Renderer {
	return chart.NewRenderer()
}
