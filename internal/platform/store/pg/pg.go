// Package pg builds the pgx pool and the statement tracer the store reports to
package pg

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config is what the pool needs beyond the URL's own parameters
type Config struct {
	URL      string
	MaxConns int32
	// ConnectTimeout overrides connect_timeout from the URL when set
	ConnectTimeout time.Duration
}

var newPool = pgxpool.NewWithConfig

// Open parses cfg into a pool config, lets tune adjust it, and builds the pool
// no connection is made here; the caller pings
func Open(ctx context.Context, cfg Config, tune ...func(*pgxpool.Config)) (*pgxpool.Pool, error) {
	pc, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pc.MaxConns = cfg.MaxConns
	}
	if cfg.ConnectTimeout > 0 {
		pc.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}
	for _, fn := range tune {
		fn(pc)
	}
	return newPool(ctx, pc)
}
