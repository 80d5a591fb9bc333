package httpkit

import "net/http"

// Middlewares run in order, the first one outermost
type Middlewares = []func(http.Handler) http.Handler

func scoped(mw Middlewares, mount func(Router)) func(Router) {
	return func(sub Router) {
		sub.Use(mw...)
		mount(sub)
	}
}

// MountUnder registers mount's routes below prefix; mw wraps those routes only
func MountUnder(r Router, prefix string, mw Middlewares, mount func(Router)) {
	r.Route(prefix, scoped(mw, mount))
}

// MountRoot is MountUnder without a prefix
func MountRoot(r Router, mw Middlewares, mount func(Router)) {
	r.Group(scoped(mw, mount))
}
