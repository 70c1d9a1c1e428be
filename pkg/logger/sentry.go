package logger

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string
	Environment string
	// MinLevel set to slog.LevelError limits Sentry logs to errors, otherwise
	// warnings are stored too. Errors always create issues.
	MinLevel slog.Level
}

// NewWithSentry creates a logger that writes locally and to Sentry.
// Without DSN, or if Sentry cannot be initialised, it behaves like New.
func NewWithSentry(sc SentryConfig, opts ...Option) *slog.Logger {
	cfg := newConfig(opts)
	extractors := append([]ContextExtractor{RequestIDExtractor()}, cfg.extractors...)
	local := cfg.baseHandler()

	if sc.DSN == "" {
		return slog.New(NewContextHandler(local, extractors...))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         sc.DSN,
		Environment: sc.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(local).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(NewContextHandler(local, extractors...))
	}

	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if sc.MinLevel >= slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	remote := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	return slog.New(NewContextHandler(fanout{local, remote}, extractors...))
}

// Flush waits up to timeout for buffered Sentry events to be sent.
// It reports false if the timeout was reached.
func Flush(timeout time.Duration) bool {
	return sentry.Flush(timeout)
}
