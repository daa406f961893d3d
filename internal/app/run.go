// Package app wires configuration, fetcher, transformer, renderer and saver
// into one synchronous pipeline run.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"taostats/internal/chart"
	"taostats/internal/model"
	"taostats/internal/saver"
	"taostats/internal/taostats"
	"taostats/internal/transform"
)

// App holds the pipeline dependencies built by Wire.
type App struct {
	Config   *Config
	Client   *taostats.Client
	Renderer *chart.Renderer
	Saver    saver.TableSaver

	// Out receives the summary report; defaults to os.Stdout.
	Out io.Writer
	// Now stamps output filenames; defaults to time.Now.
	Now func() time.Time
}

// Run executes one fetch → transform → report → chart → export pass.
// The first error aborts the run; files written before the failure are
// removed so a failed run leaves no partial output behind.
func (a *App) Run(ctx context.Context) error {
	out := a.Out
	if out == nil {
		out = os.Stdout
	}
	now := a.Now
	if now == nil {
		now = time.Now
	}

	records, err := a.fetch(ctx)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return &model.DataError{Reason: "empty dataset"}
	}
	slog.Info("records fetched", "count", len(records))

	enriched, err := transform.Enrich(records)
	if err != nil {
		return err
	}
	summary, err := transform.Summarize(enriched)
	if err != nil {
		return err
	}
	transform.Print(out, summary)

	ts := now().Format("20060102_150405")
	chartPath := filepath.Join(a.Config.OutputDir, fmt.Sprintf("%s_%s.png", ChartPrefix, ts))
	tablePath := filepath.Join(a.Config.OutputDir, fmt.Sprintf("%s_%s.%s", TablePrefix, ts, a.Saver.Extension()))

	if err := a.Renderer.RenderFile(enriched, summary, chartPath); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	slog.Info("saved visualization", "path", chartPath)

	if err := a.Saver.Save(enriched, tablePath); err != nil {
		os.Remove(tablePath)
		os.Remove(chartPath)
		return fmt.Errorf("save table: %w", err)
	}
	slog.Info("saved table", "path", tablePath, "format", a.Saver.Extension(), "rows", len(enriched))
	return nil
}

func (a *App) fetch(ctx context.Context) ([]model.StakingRecord, error) {
	cfg := a.Config
	if cfg.FromDate.IsZero() && cfg.ToDate.IsZero() {
		return a.Client.FetchAll(ctx)
	}
	to := cfg.ToDate
	if to.IsZero() {
		to = time.Now().UTC()
	}
	return a.Client.FetchRange(ctx, cfg.FromDate, to)
}
