package app

import (
	"fmt"
	"log"

	"cellgrid/internal/config"
	"cellgrid/internal/core"
	"cellgrid/internal/host"
)

// App drives one grid session against a host.
type App struct {
	cfg  config.Config
	host core.Host
	grid *core.Grid
	log  *log.Logger
}

// New constructs the grid for h. The grid is built immediately so the host
// becomes the diagnostic sink before anything else runs.
func New(cfg config.Config, h core.Host, logger *log.Logger) *App {
	if logger == nil {
		logger = log.Default()
	}
	return &App{cfg: cfg, host: h, grid: core.New(h), log: logger}
}

// Grid exposes the session's grid.
func (a *App) Grid() *core.Grid { return a.grid }

// Run retargets the grid, shows the configured alert, publishes the
// rendering, and hands control to the host if it has a final step.
func (a *App) Run() error {
	if a.cfg.Container != "" && a.cfg.Container != a.grid.ActiveContainer() {
		a.grid.SetActiveContainer(a.cfg.Container)
	}
	if a.cfg.Alert != "" {
		a.grid.Alert(a.cfg.Alert)
	}
	if d, ok := a.host.(core.ParameterDisplay); ok {
		d.ShowParameters(a.grid.Parameters())
	}
	if err := a.grid.Publish(); err != nil {
		return fmt.Errorf("app: publish: %w", err)
	}
	a.log.Printf("App: published %dx%d grid into %q", a.grid.Width(), a.grid.Height(), a.grid.ActiveContainer())
	if f, ok := a.host.(host.Finisher); ok {
		if err := f.Finish(); err != nil {
			return fmt.Errorf("app: finish: %w", err)
		}
	}
	return nil
}

// Open builds the host named in cfg and wraps it in an App.
func Open(cfg config.Config, env host.Env) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	factory, ok := host.Lookup(cfg.Host)
	if !ok {
		return nil, fmt.Errorf("app: unknown host %q (available: %v)", cfg.Host, host.Names())
	}
	env.Config = cfg
	h, err := factory(env)
	if err != nil {
		return nil, fmt.Errorf("app: open host %q: %w", cfg.Host, err)
	}
	return New(cfg, h, env.Log), nil
}
