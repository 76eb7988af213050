// SPDX-License-Identifier: MIT
// Package: mirage/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • degree     = DefaultDegree     (3)
//   • coeffBound = DefaultCoeffBound (10)
//   • gen        = nil               (constructor seed decides)

package builder

import (
	rng "github.com/leesper/go_rng"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	degree     int         // polynomial degree k ≥ 0
	coeffBound int64       // coefficients drawn from [−coeffBound, coeffBound]
	gen        Int64Source // shared random source; nil means "seed per call"
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		degree:     DefaultDegree,
		coeffBound: DefaultCoeffBound,
		gen:        nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// genFrom returns cfg.gen if present (shared stream), else a go_rng uniform
// generator seeded by 'seed'.
func genFrom(cfg builderConfig, seed int64) Int64Source {
	if cfg.gen != nil {
		return cfg.gen
	}

	return rng.NewUniformGenerator(seed)
}
