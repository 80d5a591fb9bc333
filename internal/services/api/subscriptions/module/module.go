// Package module wires subscriptions into the API using modkit
package module

import (
	modkit "newsletter/internal/modkit"
	"newsletter/internal/modkit/httpkit"
	subshttp "newsletter/internal/services/api/subscriptions/http"
	subsmetrics "newsletter/internal/services/api/subscriptions/metrics"
	subsrepo "newsletter/internal/services/api/subscriptions/repo"
	subssvc "newsletter/internal/services/api/subscriptions/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps  modkit.Deps
	b     modkit.Built
	svc   subssvc.Service
	ports Ports
}

// New constructs a subscriptions module; deps.PG is required, deps.Metrics is optional
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("subscriptions"), modkit.WithPrefix("/subscriptions")}, opts...)...)

	svc := subssvc.New(deps.PG, subsrepo.NewPG(), subsmetrics.New(deps.Metrics))
	svc.Log = deps.Log
	return &Module{
		deps:  deps,
		b:     b,
		svc:   svc,
		ports: Ports{Service: svc, Store: svc},
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { subshttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return m.b.ModuleName() }
