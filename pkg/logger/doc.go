// Package logger builds *slog.Logger instances for paramguard services and
// provides the attribute helpers used across the module, so that keys such as
// "parameter", "error_type" and "status" stay consistent in every log line.
//
// New applies functional options on top of production-safe defaults (JSON,
// info level, stdout) and wraps the handler with LogHandlerDecorator, which
// injects attributes pulled from the record's context, for example the request
// id stored by the requestid middleware:
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "paramguard-example"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.WarnContext(ctx, "request rejected",
//	    logger.Parameter("age"),
//	    logger.ErrorType("out-of-range"),
//	    logger.Status(http.StatusBadRequest),
//	)
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally.
package logger
