// Package repo provides Postgres bindings for ident sessions
package repo

import (
	"context"
	stdsql "database/sql"
	"errors"

	"densair/internal/modkit/repokit"
	"densair/internal/platform/store"
)

// Repo defines the repository contract for sessions
type Repo interface {
	Insert(ctx context.Context, token, userID string) error
	UserID(ctx context.Context, token string) (string, bool, error)
	Delete(ctx context.Context, token string) error
}

type (
	// PG is a Postgres binder for Repo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

var _ Repo = (*queries)(nil)

// NewPG returns a Postgres binder for Repo
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind implements repokit.Binder
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// Insert is a no-op on replay; a token that already exists keeps its user
func (r *queries) Insert(ctx context.Context, token, userID string) error {
	_, err := store.Exec(ctx, r.q, `
		INSERT INTO sessions (token, user_id)
		VALUES ($1::uuid, $2)
		ON CONFLICT (token) DO NOTHING
	`, token, userID)
	return err
}

func (r *queries) UserID(ctx context.Context, token string) (string, bool, error) {
	uid, err := store.Scalar[string](ctx, r.q, `SELECT user_id FROM sessions WHERE token = $1::uuid`, token)
	if err != nil {
		// pgx no-rows unwraps to the database/sql sentinel
		if errors.Is(err, stdsql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return uid, true, nil
}

func (r *queries) Delete(ctx context.Context, token string) error {
	_, err := store.Exec(ctx, r.q, `DELETE FROM sessions WHERE token = $1::uuid`, token)
	return err
}
