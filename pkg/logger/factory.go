package logger

import (
	"io"
	"log/slog"
	"os"
)

type config struct {
	output     io.Writer
	level      slog.Leveler
	extractors []ContextExtractor
	text       bool
}

// Option configures a logger created by New or NewWithSentry.
type Option func(*config)

// WithOutput sets the destination. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithLevel sets the minimum level. Defaults to slog.LevelInfo.
func WithLevel(level slog.Leveler) Option {
	return func(c *config) {
		if level != nil {
			c.level = level
		}
	}
}

// WithExtractors adds context extractors.
func WithExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		c.extractors = append(c.extractors, extractors...)
	}
}

// WithTextFormat switches from JSON to logfmt-style text output.
func WithTextFormat() Option {
	return func(c *config) {
		c.text = true
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{output: os.Stdout, level: slog.LevelInfo}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (c *config) baseHandler() slog.Handler {
	handlerOpts := &slog.HandlerOptions{Level: c.level}
	if c.text {
		return slog.NewTextHandler(c.output, handlerOpts)
	}
	return slog.NewJSONHandler(c.output, handlerOpts)
}

// New creates a JSON logger writing to stdout unless configured otherwise.
// The request id extractor is always installed.
func New(opts ...Option) *slog.Logger {
	cfg := newConfig(opts)
	extractors := append([]ContextExtractor{RequestIDExtractor()}, cfg.extractors...)
	return slog.New(NewContextHandler(cfg.baseHandler(), extractors...))
}
