package httpkit

import (
	"net/http"
	"time"

	"newsletter/internal/platform/logger"
	"newsletter/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack, zero values pick defaults
type StackOptions struct {
	Timeout     time.Duration
	SlowRequest time.Duration
	CORSOrigins []string
	AccessLog   *logger.Logger
}

// CommonStack returns the baseline middleware slice for every API route
// order matters: the id must exist before it is propagated and logged, and the
// access log sits outside recovery so recovered panics are logged as 500s
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.PropagateRequestID,
		middleware.RealIP,

		middleware.AccessLog(o.AccessLog, o.SlowRequest),
		middleware.RecoverJSON,

		middleware.CORS(o.CORSOrigins),
		middleware.Timeout(o.Timeout),
	}
}
