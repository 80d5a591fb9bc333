package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type chiRouter struct{ r chi.Router }

// AdaptChi wraps a chi mux as a Router
func AdaptChi(m *chi.Mux) Router { return chiRouter{m} }

func wrap(sub chi.Router) Router { return chiRouter{sub} }

func (c chiRouter) Get(path string, h Handler)  { c.r.Get(path, h) }
func (c chiRouter) Post(path string, h Handler) { c.r.Post(path, h) }

func (c chiRouter) Handle(path string, h http.Handler)   { c.r.Handle(path, h) }
func (c chiRouter) Mount(pattern string, h http.Handler) { c.r.Mount(pattern, h) }

func (c chiRouter) Use(mw ...func(http.Handler) http.Handler) { c.r.Use(mw...) }

func (c chiRouter) Group(fn func(Router)) {
	c.r.Group(func(sub chi.Router) { fn(wrap(sub)) })
}

func (c chiRouter) Route(pattern string, fn func(Router)) {
	c.r.Route(pattern, func(sub chi.Router) { fn(wrap(sub)) })
}

func (c chiRouter) Mux() http.Handler { return c.r }
