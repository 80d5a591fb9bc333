// Package service contains the subscription intake workflow
package service

import (
	"context"
	"time"

	"newsletter/internal/modkit/repokit"
	perr "newsletter/internal/platform/errors"
	"newsletter/internal/platform/logger"
	"newsletter/internal/services/api/subscriptions/domain"
	"newsletter/internal/services/api/subscriptions/metrics"
	"newsletter/internal/services/api/subscriptions/repo"

	"github.com/google/uuid"
)

// seams for tests
var (
	newID = uuid.New
	now   = time.Now
)

// Service defines the service contract for subscriptions
type Service interface {
	domain.ServicePort
	domain.StorePort
}

// Svc implements the Service interface
type Svc struct {
	Repo repo.Repo

	// Log overrides the request logger, nil means logger.C
	Log *logger.Logger

	metrics *metrics.Metrics
}

// New creates a new subscriptions service
// it panics when db or binder is nil
func New(db repokit.Queryer, binder repokit.Binder[repo.Repo], m *metrics.Metrics) *Svc {
	return &Svc{Repo: repokit.MustBind(binder, db), metrics: m}
}

// Subscribe validates the form and stores the subscriber
// validation failures come back untouched, storage failures as domain.ErrStorage
func (s *Svc) Subscribe(ctx context.Context, form domain.SubscribeForm) error {
	sub, err := domain.ParseNewSubscriber(form)
	if err != nil {
		s.metrics.Outcome(metrics.OutcomeRejected)
		return err
	}
	if err := s.Insert(ctx, sub); err != nil {
		s.metrics.Outcome(metrics.OutcomeFailed)
		return err
	}
	s.metrics.Outcome(metrics.OutcomeStored)
	return nil
}

// Insert writes one row with a fresh id and the current UTC time
// the cause of a failure is logged here and never returned
func (s *Svc) Insert(ctx context.Context, sub domain.NewSubscriber) error {
	log := s.logger(ctx)
	if sub.IsZero() {
		log.Error().Msg("refusing to store unvalidated subscriber")
		return domain.ErrStorage
	}

	row := repo.RowSubscription{
		ID:           newID(),
		Email:        sub.Email().String(),
		Name:         sub.Name().String(),
		SubscribedAt: now().UTC(),
	}

	start := time.Now()
	err := s.Repo.Insert(ctx, row)
	s.metrics.ObserveInsert(start)
	if err != nil {
		code, _ := perr.DBErrorCode(err)
		log.Error().Err(err).
			Str("sqlstate", perr.SQLState(err)).
			Str("db_code", code.String()).
			Bool("retryable", perr.Retryable(err)).
			Msg("failed to execute query")
		return domain.ErrStorage
	}
	log.Debug().Str("subscription_id", row.ID.String()).Msg("new subscriber saved")
	return nil
}

func (s *Svc) logger(ctx context.Context) *logger.Logger {
	if s.Log == nil {
		return logger.C(ctx)
	}
	if id := logger.RequestID(ctx); id != "" {
		l := s.Log.With().Str("request_id", id).Logger()
		return &l
	}
	return s.Log
}
