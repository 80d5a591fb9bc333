// Package module holds the module contract and port lookup
// it is separate from modkit so ports types can import it without a cycle
package module

import phttp "newsletter/internal/platform/net/http"

// Module is a unit of routes plus the ports it offers other modules
type Module interface {
	Name() string
	MountRoutes(r phttp.Router)
	Ports() any
}
