// Package http mounts the guarded page routes and the auth redirects
package http

import (
	"net/http"

	"densair/internal/platform/logger"
	phttp "densair/internal/platform/net/http"
	guarddom "densair/internal/services/guard/domain"
	guardsvc "densair/internal/services/guard/service"
	identdom "densair/internal/services/ident/domain"
)

// SessionCookie carries the session token for browser navigation.
// API calls use the Authorization header instead; the guard accepts both
const SessionCookie = "densair_session"

// Auth redirect endpoints, mounted under the public auth page
const (
	callbackPath = "/auth/callback"
	signoutPath  = "/auth/signout"
)

// PageView is the navigation payload for a page route
type PageView struct {
	Page string `json:"page" example:"feed"`
	API  string `json:"api,omitempty" example:"/api/v1/papers/feed"`
}

type handlers struct {
	svc      guardsvc.Service
	sessions identdom.Ports
	log      logger.Logger
}

// Register mounts the guarded pages and auth endpoints on the root router
func Register(r phttp.Router, svc guardsvc.Service, sessions identdom.Ports) {
	if svc == nil {
		panic("guard handlers require a non nil Service")
	}
	if sessions == nil {
		panic("guard handlers require non nil ident Ports")
	}
	h := &handlers{svc: svc, sessions: sessions, log: *logger.Named("guard")}

	// pages behind the guard
	r.Group(func(gr phttp.Router) {
		gr.Use(h.middleware)
		gr.Get(guarddom.FeedPath, page("feed", "/api/v1/papers/feed"))
		gr.Get("/summarize", page("summarize", ""))
		gr.Get("/chat", page("chat", ""))
		gr.Get("/chat/{thread}", page("chat", ""))
		gr.Get(guarddom.OnboardPath, page("onboard", "/api/v1/preferences"))
	})

	// public auth surface
	r.Get(guarddom.AuthPath, page("auth", "/api/v1/session"))
	r.Get(callbackPath, h.callback)
	r.Get(signoutPath, h.signout)
}

// middleware runs every page navigation through the decision table and
// turns redirect outcomes into 307s
func (h *handlers) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := h.resolve(r)
		if err != nil {
			// a broken session store must not lock users out of pages
			h.log.Warn().Err(err).Str("path", r.URL.Path).Msg("session resolve failed, letting request through")
			next.ServeHTTP(w, r)
			return
		}
		d := h.svc.Evaluate(r.Context(), sess, r.URL.Path)
		if loc := d.Location(); loc != "" {
			http.Redirect(w, r, loc, http.StatusTemporaryRedirect)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// resolve turns the request's credentials into a session.
// Missing or unknown tokens are simply anonymous; only store failures error
func (h *handlers) resolve(r *http.Request) (identdom.Session, error) {
	tok := bearerOrCookie(r)
	if tok == "" {
		return identdom.Anonymous, nil
	}
	sess, ok, err := h.sessions.Resolve(r.Context(), tok)
	if err != nil {
		return identdom.Anonymous, err
	}
	if !ok {
		return identdom.Anonymous, nil
	}
	return sess, nil
}

// callback lands a freshly signed-in user on the feed or onboarding
func (h *handlers) callback(w http.ResponseWriter, r *http.Request) {
	sess, err := h.resolve(r)
	if err != nil || !sess.Authenticated {
		http.Redirect(w, r, guarddom.AuthPath, http.StatusTemporaryRedirect)
		return
	}
	http.Redirect(w, r, h.svc.PostAuth(r.Context(), sess.UserID), http.StatusTemporaryRedirect)
}

// signout ends the session, drops the cookie and lands on the root page
func (h *handlers) signout(w http.ResponseWriter, r *http.Request) {
	if tok := bearerOrCookie(r); tok != "" {
		if err := h.sessions.End(r.Context(), tok); err != nil {
			h.log.Warn().Err(err).Msg("session end failed during signout")
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, guarddom.RootPath, http.StatusTemporaryRedirect)
}

func page(name, api string) phttp.Handler {
	return func(w http.ResponseWriter, _ *http.Request) {
		phttp.JSON(w, http.StatusOK, PageView{Page: name, API: api})
	}
}

func bearerOrCookie(r *http.Request) string {
	const prefix = "Bearer "
	if authz := r.Header.Get("Authorization"); len(authz) > len(prefix) {
		return authz[len(prefix):]
	}
	if c, err := r.Cookie(SessionCookie); err == nil {
		return c.Value
	}
	return ""
}
