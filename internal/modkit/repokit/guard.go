package repokit

import (
	"context"
	"fmt"
	"time"
)

// DefaultPingTimeout applies when the caller's context carries no deadline
const DefaultPingTimeout = 5 * time.Second

type pinger interface {
	Ping(context.Context) error
}

// Ping checks that dep answers a Ping, name prefixes the error
// deps that cannot ping are reported as not ready
func Ping(ctx context.Context, name string, dep any) error {
	p, ok := dep.(pinger)
	if dep == nil || !ok {
		return fmt.Errorf("%s: dependency cannot be pinged", name)
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultPingTimeout)
		defer cancel()
	}
	if err := p.Ping(ctx); err != nil {
		return fmt.Errorf("%s ping failed: %w", name, err)
	}
	return nil
}
