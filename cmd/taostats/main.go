package main

import (
	"context"
	"log/slog"
	"os"

	"taostats/internal/slogx"
)

func init() {
	slog.SetDefault(slogx.NewDefault("info"))
}

func main() {
	a, err := InitializeApp()
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slogx.NewDefault(a.Config.LogLevel))

	if err := a.Run(context.Background()); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}
