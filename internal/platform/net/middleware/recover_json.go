package middleware

import (
	stdhttp "net/http"
	"runtime/debug"

	perr "newsletter/internal/platform/errors"
	"newsletter/internal/platform/logger"
	pnet "newsletter/internal/platform/net"
	phttp "newsletter/internal/platform/net/http"
)

// RecoverJSON converts panics into an opaque JSON 500 and logs the stack with the request id
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			// let the server abort the connection as it would without us
			if v == stdhttp.ErrAbortHandler {
				panic(v)
			}

			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			if id := pnet.RequestID(r.Context()); id != "" {
				w.Header().Set(RequestIDHeader, id)
			}
			phttp.RespondOpaqueError(w, r, perr.PanicErrf("panic recovered: %v", v))
		}()
		next.ServeHTTP(w, r)
	})
}
