// Package repo provides postgres access for subscriptions
package repo

import (
	"context"
	"time"

	"newsletter/internal/modkit/repokit"
	perr "newsletter/internal/platform/errors"
	"newsletter/internal/platform/store"

	"github.com/google/uuid"
)

// Repo defines the repository contract for subscriptions
type Repo interface {
	Insert(ctx context.Context, row RowSubscription) error
	ListByEmail(ctx context.Context, email string) ([]RowSubscription, error)
}

// RowSubscription represents a subscriptions row
type RowSubscription struct {
	ID           uuid.UUID
	Email        string
	Name         string
	SubscribedAt time.Time
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) Insert(ctx context.Context, row RowSubscription) error {
	const sql = `
insert into subscriptions (id, email, name, subscribed_at)
values ($1, $2, $3, $4)
`
	if err := store.ExecOne(ctx, r.q, sql, row.ID, row.Email, row.Name, row.SubscribedAt); err != nil {
		return perr.WithOp(perr.FromPostgres(err, "insert subscription"), "subscriptions.insert")
	}
	return nil
}

// ListByEmail returns every row for email, oldest first
// there is no uniqueness on email so repeat subscribes show up as separate rows
func (r *queries) ListByEmail(ctx context.Context, email string) ([]RowSubscription, error) {
	const sql = `
select id, email, name, subscribed_at
from subscriptions
where email = $1
order by subscribed_at, id
`
	rows, err := store.Many(ctx, r.q, scanSubscription, sql, email)
	if err != nil {
		return nil, perr.WithOp(perr.FromPostgres(err, "list subscriptions"), "subscriptions.list_by_email")
	}
	return rows, nil
}

func scanSubscription(row store.Row) (RowSubscription, error) {
	var rr RowSubscription
	err := row.Scan(&rr.ID, &rr.Email, &rr.Name, &rr.SubscribedAt)
	return rr, err
}
