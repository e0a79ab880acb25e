// Package api provides the HTTP API for the application
package api

import (
	"densair/internal/platform/config"
	"densair/internal/platform/logger"
	phttp "densair/internal/platform/net/http"
	"densair/internal/platform/net/middleware"
	"densair/internal/platform/store"

	"densair/internal/modkit"
	"densair/internal/modkit/httpkit"
	"densair/internal/modkit/module"
	"densair/internal/modkit/swaggerkit"

	metamod "densair/internal/services/api/meta/module"
	papersmod "densair/internal/services/api/papers/module"
	prefsmod "densair/internal/services/api/prefs/module"
	guardhttp "densair/internal/services/guard/http"
	guardsvc "densair/internal/services/guard/service"
	identdom "densair/internal/services/ident/domain"
	identmod "densair/internal/services/ident/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Upstream       config.Conf // scoped SERVICE_PAPERS_* conf for the paper backend
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	// ident first: its auth port protects the other modules
	identMod := identmod.New(deps)
	sessions := module.MustPortsOf[identdom.Ports](identMod)
	authPort := module.MustPortsOf[middleware.AuthPort](identMod)

	// prefs next: papers and the guard both read it
	prefsMod := prefsmod.New(deps, modkit.WithMiddlewares(httpkit.Auth(authPort)))
	prefsLookup := module.MustPortsOf[prefsmod.LookupPort](prefsMod)

	papersMod := papersmod.New(
		deps,
		papersmod.FromConfig(opt.Upstream),
		modkit.WithPorts(papersmod.Ports{Prefs: prefsLookup}),
		modkit.WithMiddlewares(httpkit.Auth(authPort)),
	)

	mods := []module.Module{
		metamod.New(deps),
		identMod,
		prefsMod,
		papersMod,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})

	// page navigation guard lives at the root, outside the versioned API
	guardhttp.Register(r, guardsvc.New(prefsLookup), sessions)
}
