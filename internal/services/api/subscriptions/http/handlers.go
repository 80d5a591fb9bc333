// Package http provides http transport for subscriptions
package http

import (
	stdhttp "net/http"

	"newsletter/internal/modkit/httpkit"
	"newsletter/internal/platform/logger"
	"newsletter/internal/services/api/subscriptions/domain"
)

// Register mounts subscription endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.PostForm[domain.SubscribeInput](r, "/", h.subscribe)
}

type handlers struct{ svc domain.ServicePort }

// subscribe answers 200 with no body, 400 when a field fails its rules and 500 when the store fails
// missing keys never reach here, binding answers 422 for them
func (h *handlers) subscribe(r *stdhttp.Request, in domain.SubscribeInput) error {
	form := in.Form()
	logger.C(r.Context()).Debug().
		Str("subscriber_email", form.Email).
		Str("subscriber_name", form.Name).
		Msg("adding a new subscriber")
	return h.svc.Subscribe(r.Context(), form)
}
