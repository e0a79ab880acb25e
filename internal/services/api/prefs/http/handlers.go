// Package http provides http transport for prefs
package http

import (
	stdhttp "net/http"

	"densair/internal/modkit/httpkit"
	"densair/internal/services/api/prefs/domain"
	svc "densair/internal/services/api/prefs/service"
)

// Register mounts preference endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.get)
	httpkit.PostJSON[domain.PreferencesInput](r, "/", h.upsert)
	httpkit.PutJSON[domain.PreferencesInput](r, "/", h.upsert)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /preferences Prefs prefsGet
// @Summary Stored onboarding preferences for the caller
// @Tags Prefs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Preferences "ok"
// @Router /preferences [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	prefs, found, err := h.svc.Get(r.Context(), uid)
	if err != nil {
		return nil, err
	}
	if !found {
		// no record yet is a normal state, not an error: the client
		// gets an empty role and no domains
		return domain.Preferences{UserID: uid, Interests: []string{}}, nil
	}
	return prefs, nil
}

// swagger:route POST /preferences Prefs prefsUpsert
// @Summary Create or replace the caller's preferences
// @Tags Prefs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body domain.PreferencesInput true "Preferences"
// @Success 200 {object} domain.Preferences "ok"
// @Router /preferences [post]
func (h *handlers) upsert(r *stdhttp.Request, in domain.PreferencesInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Upsert(r.Context(), uid, in)
}
