package middleware

import (
	"net/http"
	"time"

	"newsletter/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// AccessLog writes one line per request once the handler returns
// requests slower than slow log at warn; slow <= 0 never warns
// a nil log falls back to the context logger
func AccessLog(log *logger.Logger, slow time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			took := time.Since(start)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			lvl := zerolog.InfoLevel
			if slow > 0 && took >= slow {
				lvl = zerolog.WarnLevel
			}
			forRequest(log, r).WithLevel(lvl).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("elapsed", took).
				Msg("request done")
		})
	}
}

func forRequest(log *logger.Logger, r *http.Request) *logger.Logger {
	if log == nil {
		return logger.C(r.Context())
	}
	id := logger.RequestID(r.Context())
	if id == "" {
		return log
	}
	l := log.With().Str("request_id", id).Logger()
	return &l
}
