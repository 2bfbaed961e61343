// Package logger builds the slog loggers used by the note server.
//
// New returns a *slog.Logger configured by Option values. WithEnvironment
// picks the handler and level for an environment and tags records with the
// service name. WithLevel overrides the level (LOG_LEVEL, parsed by
// ParseLevel). WithContextExtractors registers ContextExtractor callbacks
// that copy request-scoped values, such as the request id or client
// address, from the context into every record.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "notesd"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//	log.InfoContext(ctx, "write accepted", logger.NoteKey("notes"))
//
// The attribute helpers in attr.go (Error, Reason, NoteKey, Store, ...) keep
// key names consistent. Error and Errors return an empty attribute for nil
// errors, so they can be passed without a nil check.
package logger
