// Package http provides http transport for ident sessions
package http

import (
	stdhttp "net/http"

	"densair/internal/modkit/httpkit"
	"densair/internal/services/ident/domain"
	svc "densair/internal/services/ident/service"
)

// Register mounts session endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.BeginInput](r, "/", h.begin)

	// Call unwraps the NoContent response; the plain Delete sugar would
	// envelope it as data
	r.Delete("/", httpkit.Call(h.end))
}

type handlers struct{ svc svc.Service }

// swagger:route POST /session Ident sessionBegin
// @Summary Begin a session for an authenticated subject
// @Tags Ident
// @Accept json
// @Produce json
// @Param payload body domain.BeginInput true "Subject"
// @Success 200 {object} domain.Token "ok"
// @Router /session [post]
func (h *handlers) begin(r *stdhttp.Request, in domain.BeginInput) (any, error) {
	return h.svc.Begin(r.Context(), in)
}

// swagger:route DELETE /session Ident sessionEnd
// @Summary End the caller's session
// @Tags Ident
// @Produce json
// @Security BearerAuth
// @Success 204 "no content"
// @Router /session [delete]
func (h *handlers) end(r *stdhttp.Request) (any, error) {
	tok, err := httpkit.JWT(r)
	if err != nil {
		return nil, err
	}
	if err := h.svc.End(r.Context(), tok); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}
