// Package service contains prefs workflows
package service

import (
	"context"

	"densair/internal/core/arxiv"
	"densair/internal/modkit/repokit"
	perr "densair/internal/platform/errors"
	"densair/internal/services/api/prefs/domain"
	"densair/internal/services/api/prefs/repo"
)

// Service defines the service contract for prefs
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new prefs service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("prefs.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("prefs.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Get returns the stored preference record for a user
func (s *Svc) Get(ctx context.Context, userID string) (domain.Preferences, bool, error) {
	row, found, err := s.Repo.Get(ctx, userID)
	if err != nil {
		return domain.Preferences{}, false, perr.FromPostgres(err, "prefs get")
	}
	if !found {
		return domain.Preferences{}, false, nil
	}
	return domain.Preferences{
		UserID:    row.UserID,
		Role:      domain.Role(row.Role),
		Interests: row.Interests,
	}, true, nil
}

// Upsert stores the user's role and interest domains.
// The role is required and must name a known reader role. Unknown
// domain abbreviations are dropped; an input left with none is
// rejected so a stored record always implies a completed onboarding
func (s *Svc) Upsert(ctx context.Context, userID string, in domain.PreferencesInput) (domain.Preferences, error) {
	if !domain.ValidRole(in.Role) {
		return domain.Preferences{}, perr.Newf(perr.ErrorCodeValidation, "role must be student, researcher or educator")
	}
	interests := dedupe(arxiv.FilterValid(arxiv.NormalizeInterests(in.Interests)))
	if len(interests) == 0 {
		return domain.Preferences{}, perr.Newf(perr.ErrorCodeValidation, "no valid interest domains")
	}
	if err := s.Repo.Upsert(ctx, userID, in.Role, interests); err != nil {
		return domain.Preferences{}, perr.FromPostgres(err, "prefs upsert")
	}
	return domain.Preferences{
		UserID:    userID,
		Role:      domain.Role(in.Role),
		Interests: interests,
	}, nil
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
