// Command versecraft-api serves the analysis HTTP API
package main

import (
	"context"

	"versecraft/internal/platform/config"
	"versecraft/internal/platform/logger"
	phttp "versecraft/internal/platform/net/http"

	"versecraft/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (VERSECRAFT_API_*)
	root := config.New()
	apiCfg := root.Prefix("VERSECRAFT_API_")

	// bring up logging early
	l := logger.Get()

	// http server (reads VERSECRAFT_API_PORT / VERSECRAFT_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API; asset config (rules, dictionary) reads unprefixed keys
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Logger:         l,
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
