package module

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	modkit "newsletter/internal/modkit"
	"newsletter/internal/modkit/repokit"
	"newsletter/internal/platform/config"
	phttp "newsletter/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

// readyQ is a Queryer that only answers Ping
type readyQ struct {
	repokit.Queryer
	err error
}

func (p readyQ) Ping(context.Context) error { return p.err }

// slowQ answers Ping only when ctx ends
type slowQ struct{ repokit.Queryer }

func (slowQ) Ping(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func serve(t *testing.T, deps modkit.Deps, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	mux := chi.NewRouter()
	New(deps).MountRoutes(phttp.AdaptChi(mux))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(method, path, nil))
	return rr
}

func TestHealthCheck_Empty200(t *testing.T) {
	rr := serve(t, modkit.Deps{}, http.MethodGet, "/health-check")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("body = %q, want empty", rr.Body.String())
	}
}

func TestHealthCheck_OnlyGet(t *testing.T) {
	rr := serve(t, modkit.Deps{}, http.MethodPost, "/health-check")
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rr.Code)
	}
}

func TestReady(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		rr := serve(t, modkit.Deps{PG: readyQ{}}, http.MethodGet, "/meta/ready")
		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rr.Code)
		}
		var env struct {
			Data struct {
				Status string `json:"status"`
			} `json:"data"`
		}
		if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if env.Data.Status != "ok" {
			t.Fatalf("status = %q", env.Data.Status)
		}
	})

	t.Run("timeout from env", func(t *testing.T) {
		t.Setenv("CORE_API_READY_TIMEOUT", "5ms")
		deps := modkit.Deps{PG: slowQ{}, Cfg: config.New().Prefix("CORE_API_")}
		if rr := serve(t, deps, http.MethodGet, "/meta/ready"); rr.Code != http.StatusServiceUnavailable {
			t.Fatalf("status = %d, want 503", rr.Code)
		}
	})

	t.Run("ping fails", func(t *testing.T) {
		rr := serve(t, modkit.Deps{PG: readyQ{err: errors.New("dial tcp 10.0.0.1:5432: connection refused")}}, http.MethodGet, "/meta/ready")
		if rr.Code != http.StatusServiceUnavailable {
			t.Fatalf("status = %d, want 503", rr.Code)
		}
		if strings.Contains(rr.Body.String(), "10.0.0.1") {
			t.Fatalf("cause leaked: %s", rr.Body.String())
		}
	})

	t.Run("no pg", func(t *testing.T) {
		rr := serve(t, modkit.Deps{}, http.MethodGet, "/meta/ready")
		if rr.Code != http.StatusServiceUnavailable {
			t.Fatalf("status = %d, want 503", rr.Code)
		}
	})
}

func TestVersion(t *testing.T) {
	rr := serve(t, modkit.Deps{}, http.MethodGet, "/meta/version")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"service":"newsletter-api"`) {
		t.Fatalf("body = %s", rr.Body.String())
	}
}

func TestService(t *testing.T) {
	rr := serve(t, modkit.Deps{}, http.MethodGet, "/meta/service")
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"uptime"`) {
		t.Fatalf("status = %d body = %s", rr.Code, rr.Body.String())
	}
}

func TestNameAndPorts(t *testing.T) {
	m := New(modkit.Deps{})
	if m.Name() != "meta" {
		t.Fatalf("name = %q", m.Name())
	}
	if m.Ports() != nil {
		t.Fatalf("meta exposes no ports")
	}
}
