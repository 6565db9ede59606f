// Package api provides the HTTP API for the application
package api

import (
	"versecraft/internal/platform/config"
	"versecraft/internal/platform/logger"
	phttp "versecraft/internal/platform/net/http"

	"versecraft/internal/modkit"
	"versecraft/internal/modkit/httpkit"
	"versecraft/internal/modkit/module"

	analyzemod "versecraft/internal/services/analyze/module"
	metamod "versecraft/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{Cfg: opt.Config}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// analyze owns the rule set and dictionary; meta reports on them
	analyze := analyzemod.New(deps)
	ports := module.MustPortsOf[analyzemod.Ports](analyze)

	meta := metamod.New(deps, metamod.Assets{
		RuleCount: ports.Rules.Len(),
		DictSize:  ports.Dict.Size(),
	})

	mods := []module.Module{meta, analyze}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
