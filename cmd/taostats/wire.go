//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"taostats/internal/app"
)

// InitializeApp builds the pipeline App (config, client, renderer, saver)
// via Wire.
func InitializeApp() (*app.App, error) {
	wire.Build(
		app.ProvideConfig,
		app.ProvideClient,
		app.ProvideTableSaver,
		app.ProvideRenderer,
		wire.Struct(new(app.App), "Config", "Client", "Renderer", "Saver"),
	)
	return nil, nil
}
