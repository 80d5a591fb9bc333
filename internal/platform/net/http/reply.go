package http

import (
	stdhttp "net/http"

	"newsletter/internal/platform/net/http/bind"
)

// Reply is the result of a return-style handler
type Reply struct {
	Status int // 0 means 200
	Data   any
	Err    error
	// Bare writes the status alone
	Bare bool
	// Opaque hides Err's message
	Opaque bool
}

// OK replies 200 with data
func OK(data any) Reply { return Reply{Data: data} }

// Empty replies 200 with no body
func Empty() Reply { return Reply{Bare: true} }

// Fail replies with err's status and message
func Fail(err error) Reply { return Reply{Err: err} }

// FailOpaque replies with err's status only
func FailOpaque(err error) Reply { return Reply{Err: err, Opaque: true} }

// Serve adapts a return-style handler
func Serve(fn func(*stdhttp.Request) Reply) Handler {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		fn(r).write(w, r)
	}
}

func (rp Reply) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	switch {
	case rp.Err != nil && rp.Opaque:
		RespondOpaqueError(w, r, rp.Err)
		return
	case rp.Err != nil:
		RespondError(w, r, rp.Err)
		return
	}
	status := rp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	if rp.Bare || status == stdhttp.StatusNoContent {
		RespondEmpty(w, status)
		return
	}
	RespondData(w, r, status, rp.Data)
}

// GetJSON routes GET path to fn, replying with its value or error
func GetJSON(r Router, path string, fn func(*stdhttp.Request) (any, error)) {
	r.Get(path, Serve(func(req *stdhttp.Request) Reply {
		v, err := fn(req)
		if err != nil {
			return Fail(err)
		}
		return OK(v)
	}))
}

// PostForm routes POST path to FormHandler(fn)
func PostForm[T any](r Router, path string, fn func(*stdhttp.Request, T) error) {
	r.Post(path, FormHandler(fn))
}

// FormHandler binds the urlencoded body into T before calling fn
// bind and fn errors are written opaquely; success is an empty 200
func FormHandler[T any](fn func(*stdhttp.Request, T) error) Handler {
	return Serve(func(req *stdhttp.Request) Reply {
		in, err := bind.ParseForm[T](req)
		if err == nil {
			err = fn(req, in)
		}
		if err != nil {
			return FailOpaque(err)
		}
		return Empty()
	})
}
