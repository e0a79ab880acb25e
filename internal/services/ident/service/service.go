// Package service contains the ident session workflows
package service

import (
	"context"

	"github.com/google/uuid"

	"densair/internal/modkit/repokit"
	perr "densair/internal/platform/errors"
	"densair/internal/services/ident/domain"
	"densair/internal/services/ident/repo"
)

// Service defines the service contract for ident
type Service interface{ domain.Ports }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new ident service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("ident.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("ident.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Begin issues a fresh session token for an externally authenticated subject
func (s *Svc) Begin(ctx context.Context, in domain.BeginInput) (domain.Token, error) {
	tok := uuid.NewString()
	if err := s.Repo.Insert(ctx, tok, in.UserID); err != nil {
		return domain.Token{}, perr.FromPostgres(err, "ident begin")
	}
	return domain.Token{Token: tok}, nil
}

// Resolve maps a bearer token to its session, ok=false on unknown tokens
func (s *Svc) Resolve(ctx context.Context, token string) (domain.Session, bool, error) {
	if _, err := uuid.Parse(token); err != nil {
		return domain.Anonymous, false, nil
	}
	uid, ok, err := s.Repo.UserID(ctx, token)
	if err != nil {
		return domain.Anonymous, false, perr.FromPostgres(err, "ident resolve")
	}
	if !ok {
		return domain.Anonymous, false, nil
	}
	return domain.Session{UserID: uid, Authenticated: true}, true, nil
}

// End destroys a session. Ending an unknown token is a no-op
func (s *Svc) End(ctx context.Context, token string) error {
	if _, err := uuid.Parse(token); err != nil {
		return nil
	}
	if err := s.Repo.Delete(ctx, token); err != nil {
		return perr.FromPostgres(err, "ident end")
	}
	return nil
}
