package module

import (
	"net/http"

	"densair/internal/modkit/httpkit"
	perr "densair/internal/platform/errors"
	"densair/internal/platform/net/middleware"
	identdom "densair/internal/services/ident/domain"
	identsvc "densair/internal/services/ident/service"
)

// Ports exposes the ident surfaces other modules depend on
type Ports struct {
	// Sessions is the full session read/write surface
	Sessions identdom.Ports

	// Auth is the bearer-token middleware port for protected routes
	Auth middleware.AuthPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptAuthPort resolves Authorization bearer tokens against the
// session store
type adaptAuthPort struct{ svc identsvc.Service }

func (a adaptAuthPort) Parse(r *http.Request) (string, error) {
	tok, err := httpkit.JWT(r)
	if err != nil {
		return "", err
	}
	sess, ok, err := a.svc.Resolve(r.Context(), tok)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", perr.Unauthorizedf("invalid bearer token")
	}
	return sess.UserID, nil
}
