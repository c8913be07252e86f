// Package httpserver runs an http.Handler with sane timeouts and graceful
// shutdown driven by context cancellation.
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Run returns once the server has drained in-flight requests or the shutdown
// timeout elapses. HealthCheckHandler provides liveness and readiness probes.
package httpserver
