package modkit

import (
	"newsletter/internal/modkit/repokit"
	"newsletter/internal/platform/config"
	"newsletter/internal/platform/logger"

	"github.com/prometheus/client_golang/prometheus"
)

// Deps is what the API hands every module constructor
// nil fields mean the module runs without that dependency
type Deps struct {
	// Log is the API logger; modules fall back to logger.C when nil
	Log *logger.Logger
	// Cfg is the API's env view (CORE_API_*)
	Cfg config.Conf
	PG  repokit.Queryer
	// Metrics receives module collectors
	Metrics prometheus.Registerer
}
