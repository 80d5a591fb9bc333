// Package store owns the postgres pool and hands repos a narrow query seam
package store

import (
	"context"
	"errors"
	"fmt"

	"newsletter/internal/platform/logger"
)

// Row is a single result row
type Row interface {
	Scan(dest ...any) error
}

// Rows is a forward-only result set; callers must Close it
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// CommandTag reports what a write did
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier is everything a repo may ask of the database
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// Pinger reports whether a backend answers
type Pinger interface{ Ping(context.Context) error }

// Store bundles the backends a service was configured with
type Store struct {
	Log logger.Logger
	// PG is nil when postgres is disabled
	PG RowQuerier
}

// Option customizes Open
type Option func(*Store) error

// WithLogger routes store logs through log
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log
		return nil
	}
}

// Open applies opts and connects every enabled backend
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := new(Store)
	for _, apply := range opts {
		if err := apply(s); err != nil {
			return nil, err
		}
	}
	s.Log = s.Log.With().Str("component", "store").Logger()

	if !cfg.PG.Enabled {
		return s, nil
	}
	a, err := connectPG(ctx, cfg, s.Log)
	if err != nil {
		return nil, err
	}
	s.PG = a
	return s, nil
}

// Guard pings the backends that support it
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	p, ok := s.PG.(Pinger)
	if !ok {
		return nil
	}
	if err := p.Ping(ctx); err != nil {
		return fmt.Errorf("pg: %w", err)
	}
	return nil
}

// Close releases the pool
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	if c, ok := s.PG.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
