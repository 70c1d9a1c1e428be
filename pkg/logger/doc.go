// Package logger builds the slog loggers used while filtering requests.
//
// New returns a JSON logger that adds the request id from the context to every
// record. Extra context values are added with ContextExtractor functions:
//
//	log := logger.New(logger.WithLevel(slog.LevelDebug))
//	ctx := logger.WithRequestID(r.Context(), "abc-123")
//	log.DebugContext(ctx, "param rejected", slog.String("param", "age"))
//	// {"level":"DEBUG","msg":"param rejected","param":"age","request_id":"abc-123"}
//
// NewWithSentry additionally forwards warnings and errors to Sentry when a DSN
// is configured and falls back to local output otherwise. NewNope discards
// everything and is the default of components that accept a logger.
package logger
