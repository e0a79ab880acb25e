// Package repo provides postgres access for prefs
package repo

import (
	"context"
	"errors"

	"densair/internal/modkit/repokit"
	perr "densair/internal/platform/errors"
	"densair/internal/platform/store"
)

// Repo defines the repository contract for prefs
type Repo interface {
	Get(ctx context.Context, userID string) (RowPreferences, bool, error)
	Upsert(ctx context.Context, userID, role string, interests []string) error
}

// RowPreferences represents a preference row from the database
type RowPreferences struct {
	UserID    string
	Role      string
	Interests []string
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

func (r *queries) Get(ctx context.Context, userID string) (RowPreferences, bool, error) {
	const sql = `
select user_id, coalesce(role, ''), interests
from user_preferences
where user_id = $1
`
	rr, err := store.One(ctx, r.q, scanPreferences, sql, userID)
	if err != nil {
		if errors.Is(err, perr.ErrNotFound) {
			return RowPreferences{}, false, nil
		}
		return RowPreferences{}, false, err
	}
	return rr, true, nil
}

func (r *queries) Upsert(ctx context.Context, userID, role string, interests []string) error {
	const sql = `
insert into user_preferences (user_id, role, interests, updated_at)
values ($1, nullif($2, ''), $3, now())
on conflict (user_id) do update
set role = excluded.role, interests = excluded.interests, updated_at = now()
`
	return store.ExecOne(ctx, r.q, sql, userID, role, interests)
}

func scanPreferences(row store.Row) (RowPreferences, error) {
	var rr RowPreferences
	if err := row.Scan(&rr.UserID, &rr.Role, &rr.Interests); err != nil {
		return RowPreferences{}, err
	}
	return rr, nil
}
