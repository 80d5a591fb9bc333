// Package httpkit is the routing surface modules build on
// modules import it instead of internal/platform/net/http
package httpkit

import (
	"net/http"

	phttp "newsletter/internal/platform/net/http"
)

// Router is the platform router seam
type Router = phttp.Router

// Get serves h's value in the JSON envelope; an error becomes its mapped status
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	phttp.GetJSON(r, path, h)
}

// PostForm binds an urlencoded body into T for h
// a missing field is a 422 and h is not called; h's error is mapped opaquely
// and success is an empty 200
func PostForm[T any](r Router, path string, h func(*http.Request, T) error) {
	phttp.PostForm(r, path, h)
}

// RespondEmpty writes status with no body
func RespondEmpty(w http.ResponseWriter, status int) { phttp.RespondEmpty(w, status) }
