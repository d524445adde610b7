// Package httpserver runs an http.Handler with graceful shutdown and exposes
// an XML health endpoint.
//
// Run listens on the configured address and blocks until the context is
// cancelled, SIGINT/SIGTERM arrives or the listener fails. Shutdown waits for
// in-flight requests up to the shutdown timeout.
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Health renders the result of named checks:
//
//	r.Get("/health", httpserver.Health(log, httpserver.Check{Name: "rules", Fn: manifestLoaded}))
//
//	<health status="ready"><check name="rules" status="ok"></check></health>
package httpserver
