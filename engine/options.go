// SPDX-License-Identifier: MIT
package engine

import (
	"log/slog"
	"runtime"

	"github.com/katalvlaran/mamdani/logging"
)

// Defaults.
const (
	// DefaultClipToBounds leaves crisp inputs untouched: membership
	// functions are total, so out-of-universe values are evaluated as given.
	DefaultClipToBounds = false
)

// Option configures an Engine. Constructors panic on nonsensical values.
type Option func(*options)

type options struct {
	logger      *slog.Logger
	clip        bool
	parallelism int
}

func defaultOptions() options {
	return options{
		logger:      logging.Discard(),
		clip:        DefaultClipToBounds,
		parallelism: runtime.GOMAXPROCS(0),
	}
}

// WithLogger sets the logger used for build-time lints and debug traces.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("engine: WithLogger(nil)")
	}

	return func(o *options) { o.logger = l }
}

// WithClipToBounds clamps every crisp input into its variable's universe
// before fuzzification.
func WithClipToBounds() Option {
	return func(o *options) { o.clip = true }
}

// WithParallelism bounds the number of concurrent computations in
// ComputeBatch. Panics when n < 1.
func WithParallelism(n int) Option {
	if n < 1 {
		panic("engine: WithParallelism(n<1)")
	}

	return func(o *options) { o.parallelism = n }
}
