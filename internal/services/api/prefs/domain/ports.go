package domain

import "context"

// ServicePort defines the service contract for prefs
type ServicePort interface {
	// Get returns the stored record, found=false when the user has
	// never completed onboarding
	Get(ctx context.Context, userID string) (Preferences, bool, error)
	Upsert(ctx context.Context, userID string, in PreferencesInput) (Preferences, error)
}
