package http

import (
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MountProfiler serves net/http/pprof under prefix/pprof/ when enabled
func MountProfiler(r Router, prefix string, enabled bool) {
	if enabled {
		r.Mount(prefix, chimw.Profiler())
	}
}

// MountMetrics serves g in the prometheus text format at path when enabled
func MountMetrics(r Router, path string, g prometheus.Gatherer, enabled bool) {
	if !enabled || g == nil {
		return
	}
	r.Handle(path, promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
}
