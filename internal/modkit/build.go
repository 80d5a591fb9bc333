package modkit

import (
	"net/http"
	"strings"

	"newsletter/internal/modkit/httpkit"
)

// Option adjusts a module's Built configuration
type Option func(*Built)

// Built is what a module constructor resolves its options into
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any

	// Subrouter may wrap the module router before routes are added
	Subrouter func(httpkit.Router) httpkit.Router
	// Register adds caller routes next to the module's own
	Register func(httpkit.Router)
}

// WithName sets the module name used in logs and panics
func WithName(name string) Option { return func(b *Built) { b.Name = name } }

// WithPrefix sets the mount path
func WithPrefix(prefix string) Option { return func(b *Built) { b.Prefix = prefix } }

// WithMiddlewares appends module-local middleware; earlier ones run first
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithPorts hands the module ports owned by another module
func WithPorts[T any](p T) Option { return func(b *Built) { b.Ports = p } }

// WithSubrouter installs a router wrapper
func WithSubrouter(fn func(httpkit.Router) httpkit.Router) Option {
	return func(b *Built) { b.Subrouter = fn }
}

// WithRegister adds caller routes under the module prefix
func WithRegister(fn func(httpkit.Router)) Option { return func(b *Built) { b.Register = fn } }

// Build applies opts in order; later options win for scalar fields
// the returned middleware slice is never shared with the caller
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		o(&b)
	}
	b.Mw = append([]func(http.Handler) http.Handler(nil), b.Mw...)
	if b.Subrouter == nil {
		b.Subrouter = func(r httpkit.Router) httpkit.Router { return r }
	}
	if b.Register == nil {
		b.Register = func(httpkit.Router) {}
	}
	return b
}

// Mount routes b.Prefix with b.Mw, then adds own routes and the caller's
func (b Built) Mount(r httpkit.Router, own func(httpkit.Router)) {
	httpkit.MountUnder(r, mountPath(b.Prefix), b.Mw, func(rr httpkit.Router) {
		rr = b.Subrouter(rr)
		own(rr)
		b.Register(rr)
	})
}

// ModuleName is b.Name, panicking when it is blank
func (b Built) ModuleName() string {
	if strings.TrimSpace(b.Name) == "" {
		panic("module name is required")
	}
	return b.Name
}

// mountPath turns "subscriptions/" or " /meta " into "/subscriptions" or "/meta"
// a blank or root-only prefix panics; modules never mount at "/"
func mountPath(p string) string {
	p = strings.Trim(p, " \t/")
	if p == "" {
		panic("module prefix is required")
	}
	return "/" + p
}
