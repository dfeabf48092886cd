package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/capigen/internal/config"
	"github.com/specialistvlad/capigen/internal/ctxlog"
	"github.com/specialistvlad/capigen/internal/hcl"
	"github.com/specialistvlad/capigen/internal/records"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	loaders []config.Loader
}

// NewApp is the constructor for the main application. The run summary goes to
// outW and logs go to logW. Without explicit loaders both the HCL and the
// JSON/YAML record loaders are used.
func NewApp(outW, logW io.Writer, cfg *Config, loaders ...config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	if len(loaders) == 0 {
		loaders = []config.Loader{hcl.NewLoader(), records.NewLoader()}
	}
	logger.Debug("App created.", "project", cfg.Project, "loaders", len(loaders))

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		loaders: loaders,
	}
}

// Config returns the application's configuration.
func (a *App) Config() *Config {
	return a.config
}

// withLogger attaches the app logger to ctx.
func (a *App) withLogger(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
