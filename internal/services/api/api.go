// Package api provides the HTTP API for the application
package api

import (
	"time"

	"newsletter/internal/platform/config"
	"newsletter/internal/platform/logger"
	phttp "newsletter/internal/platform/net/http"
	"newsletter/internal/platform/store"

	"newsletter/internal/modkit"
	"newsletter/internal/modkit/httpkit"
	"newsletter/internal/modkit/module"

	metamod "newsletter/internal/services/api/meta/module"
	subsmod "newsletter/internal/services/api/subscriptions/module"

	"github.com/prometheus/client_golang/prometheus"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Store  *store.Store
	Logger *logger.Logger

	// Registry collects module metrics and backs /metrics, nil disables both
	Registry *prometheus.Registry

	EnableProfiler bool
	EnableMetrics  bool

	CORSOrigins    []string
	RequestTimeout time.Duration
	SlowRequest    time.Duration
}

// Mount mounts the API service onto the given router and returns the mounted modules
func Mount(r phttp.Router, opt Options) []module.Module {
	deps := modkit.Deps{Log: opt.Logger, Cfg: opt.Config}
	if opt.Store != nil {
		deps.PG = opt.Store.PG
	}
	if opt.Registry != nil {
		deps.Metrics = opt.Registry
	}

	mods := []module.Module{
		metamod.New(deps),
		subsmod.New(deps),
	}

	// profiler and metrics stay outside the request stack
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	if opt.Registry != nil {
		phttp.MountMetrics(r, "/metrics", opt.Registry, opt.EnableMetrics)
	}

	stack := httpkit.CommonStack(httpkit.StackOptions{
		Timeout:     opt.RequestTimeout,
		SlowRequest: opt.SlowRequest,
		CORSOrigins: opt.CORSOrigins,
		AccessLog:   opt.Logger,
	})
	httpkit.MountRoot(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
		}
	})
	return mods
}
