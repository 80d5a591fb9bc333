// Package middleware holds the request middleware shared by every route
// chi types stay inside this package
package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestID keeps an inbound X-Request-ID or mints a new one
func RequestID(next http.Handler) http.Handler { return chimw.RequestID(next) }

// RealIP trusts X-Forwarded-For / X-Real-IP for RemoteAddr
func RealIP(next http.Handler) http.Handler { return chimw.RealIP(next) }

// Timeout gives each request a context deadline of d
func Timeout(d time.Duration) func(http.Handler) http.Handler { return chimw.Timeout(d) }
