// Package service contains route guard workflows
package service

import (
	"context"

	"densair/internal/platform/logger"
	"densair/internal/services/guard/domain"
	identdom "densair/internal/services/ident/domain"
)

// PreferencePort reports whether a user has completed onboarding
type PreferencePort interface {
	Has(ctx context.Context, userID string) (bool, error)
}

// Service defines the service contract for the route guard
type Service interface {
	Evaluate(ctx context.Context, sess identdom.Session, path string) domain.Decision
	PostAuth(ctx context.Context, userID string) string
}

// Svc implements the Service interface
type Svc struct {
	prefs PreferencePort
	log   logger.Logger
}

// New creates a new guard service
func New(prefs PreferencePort) *Svc {
	if prefs == nil {
		panic("guard.Service requires a non nil PreferencePort")
	}
	return &Svc{prefs: prefs, log: *logger.Named("guard")}
}

// Evaluate decides what to do with a navigation. A failed preference
// lookup never blocks the request: the user is treated as onboarded and
// the page itself deals with missing data
func (s *Svc) Evaluate(ctx context.Context, sess identdom.Session, path string) domain.Decision {
	class := domain.Classify(path)
	if !sess.Authenticated {
		return domain.Decide(false, false, class)
	}

	hasPrefs, err := s.prefs.Has(ctx, sess.UserID)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", sess.UserID).Str("path", path).
			Msg("prefs lookup failed, letting request through")
		return domain.Allow
	}
	return domain.Decide(true, hasPrefs, class)
}

// PostAuth picks the landing page right after sign-in. Lookup failures
// fall back to onboarding, which is safe to revisit
func (s *Svc) PostAuth(ctx context.Context, userID string) string {
	hasPrefs, err := s.prefs.Has(ctx, userID)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("prefs lookup failed, landing on onboarding")
		return domain.OnboardPath
	}
	return domain.PostAuthRedirect(hasPrefs)
}
