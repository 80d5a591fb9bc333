package store

import (
	"context"
	"errors"
	"time"

	"newsletter/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgxPool is the slice of *pgxpool.Pool the adapter needs
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// pgAdapter is the RowQuerier handed to repos; every statement is reported to tracer when set
type pgAdapter struct {
	db     pgxPool
	close  func()
	tracer pg.QueryTracer
	slowUS int64
}

func (a *pgAdapter) Ping(ctx context.Context) error {
	if a == nil || a.db == nil {
		return errors.New("pg: nil adapter")
	}
	return a.db.Ping(ctx)
}

func (a *pgAdapter) Close() error {
	if a != nil && a.close != nil {
		a.close()
	}
	return nil
}

func (a *pgAdapter) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	done := a.trace(ctx, sql, args)
	ct, err := a.db.Exec(ctx, sql, args...)
	done(err)
	return ct, err
}

func (a *pgAdapter) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	done := a.trace(ctx, sql, args)
	rs, err := a.db.Query(ctx, sql, args...)
	done(err)
	if err != nil {
		return nil, err
	}
	return rs, nil
}

// QueryRow reports once the row is scanned, since pgx defers errors until then
func (a *pgAdapter) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return tracedRow{a.db.QueryRow(ctx, sql, args...), a.trace(ctx, sql, args)}
}

// trace starts the clock for one statement and returns its finisher
func (a *pgAdapter) trace(ctx context.Context, sql string, args []any) func(error) {
	if a.tracer == nil {
		return func(error) {}
	}
	start := time.Now()
	return func(err error) {
		us := time.Since(start).Microseconds()
		a.tracer.OnQuery(ctx, pg.QueryEvent{
			SQL:       sql,
			Args:      args,
			ElapsedUS: us,
			Err:       err,
			Slow:      a.slowUS > 0 && us >= a.slowUS,
		})
	}
}

type tracedRow struct {
	pgx.Row
	done func(error)
}

func (r tracedRow) Scan(dst ...any) error {
	err := r.Row.Scan(dst...)
	r.done(err)
	return err
}
