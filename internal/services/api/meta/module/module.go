// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"newsletter/internal/core/version"
	modkit "newsletter/internal/modkit"
	"newsletter/internal/modkit/httpkit"

	metahttp "newsletter/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	b  modkit.Built
	hd metahttp.Deps
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	return &Module{
		b: b,
		hd: metahttp.Deps{
			ServiceName:  version.Service,
			StartedAt:    time.Now(),
			ReadyTimeout: deps.Cfg.MayDuration("READY_TIMEOUT", metahttp.ReadyTimeout),
			PG:           deps.PG,
		},
	}
}

// MountRoutes implements the modkit.Module interface
// /health-check sits at the root, everything else under the prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountRoot(r, m.b.Mw, metahttp.RegisterRoot)
	m.b.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, m.hd) })
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.b.ModuleName() }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
