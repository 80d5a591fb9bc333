// Package modkit is the shared wiring for API modules: options, deps and mounting
package modkit

import "newsletter/internal/modkit/module"

// Module is module.Module, re-exported for composition code
type Module = module.Module
