package http

import "net/http"

// Handler is a plain handler func; modules register these
type Handler = func(http.ResponseWriter, *http.Request)

// Router is what modules mount routes on, kept narrow so chi stays an implementation detail
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Handle(path string, h http.Handler)
	// Mount hands every path under pattern to h with pattern stripped from routing
	Mount(pattern string, h http.Handler)

	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	// Mux is the router as an http.Handler
	Mux() http.Handler
}
