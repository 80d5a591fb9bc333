package store

import (
	"context"
	"fmt"
	"time"

	"newsletter/internal/platform/logger"
	"newsletter/internal/platform/store/pg"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	firstBackoff = 150 * time.Millisecond
	maxBackoff   = 2 * time.Second
)

var sleep = func(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// connectPG builds the pool, then pings with doubling backoff until postgres answers
func connectPG(ctx context.Context, cfg Config, log logger.Logger) (*pgAdapter, error) {
	pool, err := pg.Open(ctx, pg.Config{URL: cfg.PG.URL, MaxConns: cfg.PG.MaxConns}, func(pc *pgxpool.Config) {
		if cfg.AppName != "" {
			pc.ConnConfig.RuntimeParams["application_name"] = cfg.AppName
		}
	})
	if err != nil {
		return nil, fmt.Errorf("postgres config: %w", err)
	}

	a := &pgAdapter{db: pool, close: pool.Close, slowUS: int64(cfg.PG.SlowQueryMs) * 1000}
	if cfg.PG.LogSQL {
		a.tracer = pg.Tracer(log)
	}

	attempts := orDefault(cfg.PG.ConnectRetries, connectRetries)
	timeout := orDefault(cfg.PG.PingTimeout, pingTimeout)
	wait := firstBackoff
	for n := 1; ; n++ {
		pctx, cancel := context.WithTimeout(ctx, timeout)
		err = pool.Ping(pctx)
		cancel()

		switch {
		case err == nil:
			log.Info().Int("attempt", n).Msg("postgres ready")
			return a, nil
		case ctx.Err() != nil:
			pool.Close()
			return nil, ctx.Err()
		case n >= attempts:
			pool.Close()
			return nil, fmt.Errorf("postgres ping failed after %d attempts: %w", attempts, err)
		}

		log.Warn().Err(err).Int("attempt", n).Dur("backoff", wait).Msg("postgres not ready")
		sleep(ctx, wait)
		wait = min(2*wait, maxBackoff)
	}
}
