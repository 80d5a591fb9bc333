package repo

import (
	"context"

	"newsletter/internal/modkit/repokit"
	perr "newsletter/internal/platform/errors"
)

const schema = `
create table if not exists subscriptions (
	id            uuid primary key,
	email         text not null,
	name          text not null,
	subscribed_at timestamptz not null
)
`

// Migrate creates the subscriptions table when missing
func Migrate(ctx context.Context, q repokit.Queryer) error {
	if _, err := q.Exec(ctx, schema); err != nil {
		return perr.FromPostgres(err, "migrate subscriptions")
	}
	return nil
}
