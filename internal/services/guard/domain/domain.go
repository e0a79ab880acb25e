// Package domain holds the route guard decision machinery.
// Decide is pure and total: every (session, preference, path) triple
// maps to exactly one outcome
package domain

import "strings"

// Decision is a route guard outcome
type Decision int

const (
	// Allow lets the navigation proceed
	Allow Decision = iota

	// RedirectToAuth sends an unauthenticated caller to sign-in
	RedirectToAuth

	// RedirectToOnboarding sends a not-yet-onboarded user to onboarding
	RedirectToOnboarding

	// RedirectToFeed keeps onboarded users out of onboarding
	RedirectToFeed
)

// String implements fmt.Stringer for log fields
func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectToAuth:
		return "redirect_auth"
	case RedirectToOnboarding:
		return "redirect_onboarding"
	case RedirectToFeed:
		return "redirect_feed"
	}
	return "unknown"
}

// Canonical page paths
const (
	RootPath    = "/"
	AuthPath    = "/auth"
	FeedPath    = "/feed"
	OnboardPath = "/onboard"
)

// protectedPrefixes are the page sections gated behind a session.
// Onboard is gated too but classified separately: the decision table
// treats it specially in both directions
var protectedPrefixes = []string{FeedPath, "/summarize", "/chat"}

// PathClass partitions page paths for the decision table
type PathClass int

const (
	// PathPublic is any ungated page
	PathPublic PathClass = iota

	// PathProtected requires a session and completed onboarding
	PathProtected

	// PathOnboard is the onboarding page itself
	PathOnboard
)

// Classify maps a request path to its class
func Classify(path string) PathClass {
	if path == OnboardPath || strings.HasPrefix(path, OnboardPath+"/") {
		return PathOnboard
	}
	for _, p := range protectedPrefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return PathProtected
		}
	}
	return PathPublic
}

// Decide computes the guard outcome. hasPrefs is only consulted for
// authenticated sessions; callers that could not look preferences up
// must fail open by passing hasPrefs=true
func Decide(authenticated, hasPrefs bool, class PathClass) Decision {
	if !authenticated {
		if class == PathPublic {
			return Allow
		}
		return RedirectToAuth
	}
	if class == PathPublic {
		return Allow
	}
	if !hasPrefs && class != PathOnboard {
		return RedirectToOnboarding
	}
	if hasPrefs && class == PathOnboard {
		return RedirectToFeed
	}
	return Allow
}

// Location is the redirect target for a decision, empty for Allow
func (d Decision) Location() string {
	switch d {
	case RedirectToAuth:
		return AuthPath
	case RedirectToOnboarding:
		return OnboardPath
	case RedirectToFeed:
		return FeedPath
	}
	return ""
}

// PostAuthRedirect picks the landing page right after sign-in
func PostAuthRedirect(hasPrefs bool) string {
	if hasPrefs {
		return FeedPath
	}
	return OnboardPath
}
