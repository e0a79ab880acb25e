// Package module wires papers into the API using modkit
package module

import (
	"net/http"
	"time"

	"densair/internal/adapters/upstream"
	"densair/internal/core/backoff"
	modkit "densair/internal/modkit"
	"densair/internal/modkit/httpkit"
	"densair/internal/platform/logger"
	str "densair/internal/platform/strings"
	papershttp "densair/internal/services/api/papers/http"
	paperssvc "densair/internal/services/api/papers/service"
)

// Module implements the papers API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc paperssvc.Service
}

// Ports declares the required injected port(s) for this API module
type Ports struct {
	Prefs paperssvc.PrefsReader
}

// warnNotify surfaces the rate-limit warning as a structured log line;
// the API response itself stays pending until the retry resolves
type warnNotify struct{ log logger.Logger }

func (n warnNotify) Warn(wait time.Duration) {
	n.log.Warn().Dur("retry_in", wait).Msg("paper backend rate limited")
}

// New constructs the papers module (config-driven, parity with other API modules)
func New(deps modkit.Deps, cfg Options, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("papers"),
		modkit.WithPrefix("/papers"),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Prefs == nil {
		panic("papers API module requires Prefs port (from api/prefs)")
	}

	pol := backoff.Default()
	if cfg.MaxRetries > 0 {
		pol.MaxAttempts = cfg.MaxRetries
	}
	if cfg.RetryHint > 0 {
		pol.DefaultHint = cfg.RetryHint
	}

	client := upstream.NewClient(upstream.Options{
		BaseURL:   cfg.BaseURL,
		APIKey:    cfg.APIKey,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout,
		Policy:    pol,
		Notify:    warnNotify{log: *logger.Named("papers")},
	})

	svc := paperssvc.New(client, injected.Prefs)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptPapersPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		papershttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
