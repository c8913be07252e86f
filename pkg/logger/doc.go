// Package logger builds *slog.Logger instances from functional options and
// injects request-scoped values into every record.
//
// New picks a text or JSON handler and wraps it in LogHandlerDecorator, which
// runs the registered ContextExtractor callbacks on each Handle call. The api
// package uses this to stamp every line with the request id:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.AppEnv, cfg.ServiceName),
//		logger.WithLevelName(cfg.LogLevel),
//		logger.WithContextExtractors(api.RequestIDExtractor),
//	)
//	log.InfoContext(ctx, "theme applied", logger.ThemeID(id), logger.Zone("header"))
//
// The attribute helpers in attr.go keep key names stable. Helpers for
// optional values (Error, RequestID, ThemeID, Zone, Warning) return an empty
// attribute for zero input, so callers need no nil checks.
package logger
