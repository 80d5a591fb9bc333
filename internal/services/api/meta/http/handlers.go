// Package http provides meta endpoints
package http

import (
	"context"
	"net/http"
	"time"

	"newsletter/internal/core/version"
	"newsletter/internal/modkit/httpkit"
	"newsletter/internal/modkit/repokit"
	perr "newsletter/internal/platform/errors"
	"newsletter/internal/platform/logger"
)

// ReadyTimeout is the default bound on the checks behind /meta/ready
const ReadyTimeout = 2 * time.Second

// Deps feed the meta handlers
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	// PG must answer Ping for /meta/ready to pass
	PG any
	// ReadyTimeout <= 0 means the ReadyTimeout constant
	ReadyTimeout time.Duration
}

type handlers struct {
	deps Deps
}

// RegisterRoot mounts the liveness probe, which lives outside the meta prefix
func RegisterRoot(r httpkit.Router) {
	r.Get("/health-check", healthCheck)
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

// healthCheck answers 200 with an empty body and touches nothing else
func healthCheck(w http.ResponseWriter, _ *http.Request) {
	httpkit.RespondEmpty(w, http.StatusOK)
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"`
	Status string `json:"status"` // ok fail
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status"`
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"`
	Started string `json:"started"`
	Uptime  int64  `json:"uptime"`
}

// ready pings postgres; a failure is a 503 and the cause stays in the log
func (h *handlers) ready(r *http.Request) (any, error) {
	limit := h.deps.ReadyTimeout
	if limit <= 0 {
		limit = ReadyTimeout
	}
	ctx, cancel := context.WithTimeout(r.Context(), limit)
	defer cancel()

	if err := repokit.Ping(ctx, "pg", h.deps.PG); err != nil {
		logger.C(ctx).Warn().Err(err).Msg("readiness check failed")
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "not ready")
	}
	return ReadyResponse{
		Status: "ok",
		Checks: []ReadyCheck{{Name: "pg", Status: "ok"}},
		Now:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}
