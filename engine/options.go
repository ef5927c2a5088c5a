package engine

import (
	"os"

	"github.com/nileshpatra/gubbins/internal/logx"
)

// options holds Run's tunable knobs; Run starts from one worker and a
// silent logger before applying any Option.
type options struct {
	workers int
	logger  *logx.Logger
}

// Option configures Run.
type Option func(*options)

// WithWorkers sets the number of goroutines parallel.Run dispatches
// patterns across. Values less than 1 are clamped to 1.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}

// WithVerbose enables progress reporting to stderr, mirroring the
// reference tool's single verbose flag.
func WithVerbose(v bool) Option {
	return func(o *options) { o.logger = logx.New(os.Stderr, v) }
}

// WithLogger attaches a caller-supplied logger. WithLogger and WithVerbose
// both set the logger, so whichever is applied last takes effect.
// Useful when the caller wants progress routed somewhere other than
// stderr (tests, an embedding application).
func WithLogger(lg *logx.Logger) Option {
	return func(o *options) { o.logger = lg }
}
