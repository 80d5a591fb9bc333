package modkit

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"newsletter/internal/modkit/httpkit"
	phttp "newsletter/internal/platform/net/http"
	"newsletter/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func TestBuild_Defaults(t *testing.T) {
	t.Parallel()

	b := Build()
	if b.Name != "" || b.Prefix != "" || b.Ports != nil || len(b.Mw) != 0 {
		t.Fatalf("unexpected defaults: %+v", b)
	}
	var r httpkit.Router
	if b.Subrouter(r) != r {
		t.Fatalf("default Subrouter should be identity")
	}
	testkit.MustNotPanic(t, func() { b.Register(r) })
}

func TestBuild_LaterOptionsWin(t *testing.T) {
	t.Parallel()

	b := Build(WithName("subscriptions"), WithPrefix("/subscriptions"), WithPrefix("/subs"), WithPorts(42))
	if b.Name != "subscriptions" || b.Prefix != "/subs" || b.Ports != 42 {
		t.Fatalf("unexpected build: %+v", b)
	}
}

func TestBuild_DoesNotShareMiddlewareSlice(t *testing.T) {
	t.Parallel()

	mw := make([]func(http.Handler) http.Handler, 1, 4)
	mw[0] = func(next http.Handler) http.Handler { return next }
	a := Build(WithMiddlewares(mw...))
	a.Mw = append(a.Mw, func(next http.Handler) http.Handler { return next })
	if b := Build(WithMiddlewares(mw...)); len(b.Mw) != 1 {
		t.Fatalf("Mw len = %d, want 1", len(b.Mw))
	}
}

func TestModuleName(t *testing.T) {
	t.Parallel()

	if got := Build(WithName("meta")).ModuleName(); got != "meta" {
		t.Fatalf("ModuleName = %q", got)
	}
	testkit.MustPanic(t, func() { _ = Build().ModuleName() })
	testkit.MustPanic(t, func() { _ = Build(WithName(" \t")).ModuleName() })
}

func header(name, val string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add(name, val)
			next.ServeHTTP(w, r)
		})
	}
}

func TestMount_PrefixMiddlewaresAndRoutes(t *testing.T) {
	t.Parallel()

	wrapped := false
	b := Build(
		WithPrefix("subscriptions/"),
		WithMiddlewares(header("X-Seen", "a"), header("X-Seen", "b")),
		WithSubrouter(func(r httpkit.Router) httpkit.Router { wrapped = true; return r }),
		WithRegister(func(r httpkit.Router) {
			r.Get("/extra", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusAccepted) })
		}),
	)

	mux := chi.NewRouter()
	b.Mount(phttp.AdaptChi(mux), func(r httpkit.Router) {
		r.Post("/", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	})
	if !wrapped {
		t.Fatalf("subrouter not applied")
	}

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/subscriptions", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("own route => %d", rr.Code)
	}
	if got := strings.Join(rr.Header().Values("X-Seen"), ","); got != "a,b" {
		t.Fatalf("middleware order = %q", got)
	}

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/subscriptions/extra", nil))
	if rr.Code != http.StatusAccepted {
		t.Fatalf("registered route => %d", rr.Code)
	}
}

func TestMount_EmptyPrefixPanics(t *testing.T) {
	t.Parallel()

	testkit.MustPanic(t, func() {
		Build().Mount(phttp.AdaptChi(chi.NewRouter()), func(httpkit.Router) {})
	})
}

func TestMountPath(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{
		"subscriptions":    "/subscriptions",
		"/subscriptions/":  "/subscriptions",
		"  /meta ":         "/meta",
		"//health-check//": "/health-check",
		"/a/b/":            "/a/b",
	} {
		if got := mountPath(in); got != want {
			t.Fatalf("mountPath(%q) = %q, want %q", in, got, want)
		}
	}
	for _, in := range []string{"", " / ", "//"} {
		testkit.MustPanic(t, func() { mountPath(in) })
	}
}
