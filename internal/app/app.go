package app

import (
	"io"
	"log/slog"

	"github.com/vk/depgraph/internal/config"
	"github.com/vk/depgraph/internal/hcl"
	"github.com/vk/depgraph/internal/render"
)

// coreLoaders returns the manifest loaders used when NewApp is given none.
func coreLoaders() []config.Loader {
	return []config.Loader{
		hcl.NewLoader(),
		config.NewYAMLLoader(),
		config.NewJSONLoader(),
	}
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logW    io.Writer
	logger  *slog.Logger
	config  *Config
	format  render.Format
	loaders *config.Set
}

// NewApp is the constructor for the main application. Results are written to
// outW; logs and exported spans go to logW. cfg must come from NewConfig.
func NewApp(outW, logW io.Writer, cfg *Config, loaders ...config.Loader) *App {
	logger := newLogger(cfg.Level(), cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	if len(loaders) == 0 {
		loaders = coreLoaders()
	}
	set := config.NewSet(loaders...)
	logger.Debug("Manifest loaders registered.", "extensions", set.Extensions())

	// NewConfig has already normalized the format.
	format, _ := render.ParseFormat(cfg.OutputFormat)

	return &App{
		outW:    outW,
		logW:    logW,
		logger:  logger,
		config:  cfg,
		format:  format,
		loaders: set,
	}
}
