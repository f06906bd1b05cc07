// cmd/wire.go
// Process-wide wiring of the job registry, module catalog, and router.
package cmd

import (
	"io"

	"github.com/warden-sh/warden-cli/internal/config"
	"github.com/warden-sh/warden-cli/internal/console"
	"github.com/warden-sh/warden-cli/internal/jobs"
	"github.com/warden-sh/warden-cli/internal/modules"
	"github.com/warden-sh/warden-cli/internal/render"
)

// app holds the collaborators shared by every command in this process.
// The registry is the single source of truth for job state; routers are
// built fresh per dispatch and carry no state of their own.
type app struct {
	registry *jobs.Manager
	factory  *modules.Catalog
	cfg      *config.Config
}

var application *app

// initApp wires the shared collaborators. Idempotent so every
// PersistentPreRunE path can call it.
func initApp() error {
	if application != nil {
		return nil
	}

	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	application = &app{
		registry: jobs.NewManager(),
		factory:  modules.NewCatalog(),
		cfg:      cfg,
	}
	return nil
}

// newRouter builds a command router writing to out.
func (a *app) newRouter(out io.Writer) *console.Router {
	router := console.NewRouter(a.registry, a.factory, render.NewJobTable(), out)
	if len(a.cfg.Presets) > 0 {
		presets := make(map[string]console.Preset, len(a.cfg.Presets))
		for name, p := range a.cfg.Presets {
			presets[name] = console.Preset{
				Payload:       p.Payload,
				Host:          p.Host,
				Port:          p.Port,
				Encoder:       p.Encoder,
				ExitOnSession: p.ExitOnSession,
			}
		}
		router.WithPresets(presets)
	}
	return router
}
