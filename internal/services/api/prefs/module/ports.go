package module

import (
	"context"

	prefsdom "densair/internal/services/api/prefs/domain"
	prefssvc "densair/internal/services/api/prefs/service"
)

// LookupPort is the read surface other modules consume
type LookupPort interface {
	// Has reports whether a user has completed onboarding
	Has(ctx context.Context, userID string) (bool, error)

	// Interests returns the stored interest domains, nil when none
	Interests(ctx context.Context, userID string) ([]string, error)
}

// Ports exposes the prefs surfaces other modules depend on
type Ports struct {
	// Service is the full preference read/write surface
	Service prefsdom.ServicePort

	// Lookup is the narrow read surface for feed and guard decisions
	Lookup LookupPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptPrefsPort adapts the prefs service to the lookup surfaces other
// modules need
type adaptPrefsPort struct{ svc prefssvc.Service }

// Get implements the domain ServicePort interface
func (a adaptPrefsPort) Get(ctx context.Context, userID string) (prefsdom.Preferences, bool, error) {
	return a.svc.Get(ctx, userID)
}

// Upsert implements the domain ServicePort interface
func (a adaptPrefsPort) Upsert(ctx context.Context, userID string, in prefsdom.PreferencesInput) (prefsdom.Preferences, error) {
	return a.svc.Upsert(ctx, userID, in)
}

// Has reports whether a user has completed onboarding
func (a adaptPrefsPort) Has(ctx context.Context, userID string) (bool, error) {
	_, found, err := a.svc.Get(ctx, userID)
	return found, err
}

// Interests returns the stored interest domains, nil when none
func (a adaptPrefsPort) Interests(ctx context.Context, userID string) ([]string, error) {
	prefs, found, err := a.svc.Get(ctx, userID)
	if err != nil || !found {
		return nil, err
	}
	return prefs.Interests, nil
}
