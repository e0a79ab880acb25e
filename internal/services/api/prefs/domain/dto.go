// Package domain holds DTOs for prefs http and service contracts
package domain

// Role is the reader role chosen at onboarding
type Role string

const (
	// RoleStudent is a student reader
	RoleStudent Role = "student"

	// RoleResearcher is a researcher reader
	RoleResearcher Role = "researcher"

	// RoleEducator is an educator reader
	RoleEducator Role = "educator"
)

// PreferencesInput is the upsert payload.
// Role is required. A selection with no valid interest domains is
// rejected: zero interests means "not onboarded" and must never be
// stored
type PreferencesInput struct {
	Role      string   `json:"role" validate:"required,oneof=student researcher educator" example:"researcher"`
	Interests []string `json:"interests" validate:"required,min=1,max=16,dive,arxiv_domain" example:"cs,math"`
}

// ValidRole reports whether s names a known reader role
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleStudent, RoleResearcher, RoleEducator:
		return true
	}
	return false
}

// Preferences is a stored preference record
type Preferences struct {
	UserID    string   `json:"user_id"`
	Role      Role     `json:"role,omitempty"`
	Interests []string `json:"interests"`
}
