package builder

import "strconv"

// IDFn maps an integer index to a vertex ID string.
type IDFn func(i int) string

// DefaultIDFn produces decimal IDs "0", "1", "2", ...
func DefaultIDFn(i int) string { return strconv.Itoa(i) }

// WeightFn produces the weight (branch length) for the i-th edge emitted
// by a constructor.
type WeightFn func(i int) float64

// DefaultWeightFn always returns 0 (unweighted).
func DefaultWeightFn(int) float64 { return 0 }

// BuilderOption customizes a Constructor invocation.
type BuilderOption func(cfg *builderConfig)

type builderConfig struct {
	idFn     IDFn
	weightFn WeightFn
}

func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{idFn: DefaultIDFn, weightFn: DefaultWeightFn}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithIDScheme injects a custom IDFn. A nil idFn is a no-op.
func WithIDScheme(idFn IDFn) BuilderOption {
	return func(cfg *builderConfig) {
		if idFn != nil {
			cfg.idFn = idFn
		}
	}
}

// WithWeightFn injects a custom WeightFn. A nil wfn is a no-op.
func WithWeightFn(wfn WeightFn) BuilderOption {
	return func(cfg *builderConfig) {
		if wfn != nil {
			cfg.weightFn = wfn
		}
	}
}
