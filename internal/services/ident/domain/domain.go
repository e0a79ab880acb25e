// Package domain defines the core types and ports for the ident service
package domain

import "context"

// Session is the identity attached to a request.
// The zero value is the anonymous session
type Session struct {
	UserID        string `json:"user_id"`
	Authenticated bool   `json:"authenticated"`
}

// Anonymous is the session of an unauthenticated caller
var Anonymous = Session{}

// BeginInput starts a session for an externally authenticated subject
type BeginInput struct {
	UserID string `json:"user_id" validate:"required,min=1,max=128" example:"google-oauth2|117265..."`
}

// Token carries an issued session token back to the caller
type Token struct {
	Token string `json:"token" example:"3f1c9b3e-0b5a-4a1e-9f0e-8a2d6c4b7e21"`
}

// ReaderPort resolves bearer tokens to sessions
type ReaderPort interface {
	// Resolve returns the session for a token, ok=false when unknown
	Resolve(ctx context.Context, token string) (Session, bool, error)
}

// WriterPort creates and destroys sessions
type WriterPort interface {
	Begin(ctx context.Context, in BeginInput) (Token, error)
	End(ctx context.Context, token string) error
}

// Ports is the full ident surface other modules may depend on
type Ports interface {
	ReaderPort
	WriterPort
}
