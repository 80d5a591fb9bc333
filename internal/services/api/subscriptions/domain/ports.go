package domain

import (
	"context"

	perr "newsletter/internal/platform/errors"
)

// ErrStorage is the only error the store reports; the cause goes to the log
var ErrStorage = perr.New(perr.ErrorCodeDB, "failed to store subscriber")

// StorePort persists one subscription per call
// calls are not idempotent: the same subscriber twice yields two rows
type StorePort interface {
	Insert(ctx context.Context, s NewSubscriber) error
}

// ServicePort runs intake conversion then storage
type ServicePort interface {
	Subscribe(ctx context.Context, form SubscribeForm) error
}
