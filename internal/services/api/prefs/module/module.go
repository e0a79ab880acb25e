// Package module wires prefs into the API using modkit
package module

import (
	"net/http"

	"densair/internal/core/arxiv"
	modkit "densair/internal/modkit"
	"densair/internal/modkit/httpkit"
	"densair/internal/platform/net/http/bind"
	str "densair/internal/platform/strings"
	prefshttp "densair/internal/services/api/prefs/http"
	prefsrepo "densair/internal/services/api/prefs/repo"
	prefssvc "densair/internal/services/api/prefs/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc prefssvc.Service
}

// New constructs a prefs module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("prefs"), modkit.WithPrefix("/preferences")}, opts...)...)

	// the dto carries the arxiv_domain tag; bind owns only its message
	_ = bind.RegisterValidation("arxiv_domain", func(fl bind.FieldLevel) bool {
		return arxiv.IsAbbrev(fl.Field().String())
	})

	repo := prefsrepo.NewPG()
	svc := prefssvc.New(deps.PG, repo)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	port := adaptPrefsPort{svc: svc}
	m.ports = Ports{Service: port, Lookup: port}

	external := b.Register
	m.register = func(r httpkit.Router) {
		prefshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
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
