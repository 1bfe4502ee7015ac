package forkjoin

import "log/slog"

type config struct {
	threads int
	name    string
	logger  *slog.Logger
}

// Option configures a single region invocation (or a [Pool]).
type Option func(*config)

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// log returns the region's logger, falling back to the package default.
func (c *config) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return defaultLog()
}

// WithThreads requests a team size for this region. The request is still
// subject to the environment override, which wins when present. Zero (the
// default) defers to the process-wide configuration.
//
// WithThreads panics if n is negative.
func WithThreads(n int) Option {
	if n < 0 {
		panic("forkjoin: WithThreads requires non-negative n")
	}
	return func(c *config) {
		c.threads = n
	}
}

// WithName attaches a name to the region, used to attribute worker
// signals in log output.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithLogger routes this region's worker-signal logging to l instead of
// the package default. Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("forkjoin: WithLogger requires non-nil logger")
	}
	return func(c *config) {
		c.logger = l
	}
}
