// Package http is the HTTP edge: router seam, server, and the JSON envelope
// every non-empty response uses
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "newsletter/internal/platform/errors"
	pnet "newsletter/internal/platform/net"
)

// Envelope wraps JSON responses; Data for success, Code and Error otherwise
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

func envelope(r *stdhttp.Request, status int) Envelope {
	return Envelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		RequestID:  pnet.RequestID(r.Context()),
	}
}

// JSON encodes v with status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondEmpty writes only the status line; no body and no Content-Type
func RespondEmpty(w stdhttp.ResponseWriter, status int) { w.WriteHeader(status) }

// RespondData writes data in an envelope with status
func RespondData(w stdhttp.ResponseWriter, r *stdhttp.Request, status int, data any) {
	env := envelope(r, status)
	env.Data = data
	JSON(w, status, env)
}

// RespondError writes err's status with its code and message
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	respondWire(w, r, perr.HTTPStatus(err), perr.WireFrom(err))
}

// RespondOpaqueError writes err's status with the status text as the message
// the caller is responsible for logging the cause
func RespondOpaqueError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	respondWire(w, r, perr.HTTPStatus(err), perr.OpaqueWire(err))
}

func respondWire(w stdhttp.ResponseWriter, r *stdhttp.Request, status int, wire perr.Wire) {
	env := envelope(r, status)
	env.Code, env.Error = wire.Code, wire.Message
	JSON(w, status, env)
}
