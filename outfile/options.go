// SPDX-License-Identifier: MIT
// Package: outfile
//
// options.go - functional options for output naming and placement.
//
// Contract:
//   - Options are functional (type Option func(*config)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     Write itself never panics.
//   - Options apply in order; later ones override earlier ones.

package outfile

import (
	"math/rand"
	"strings"
)

// Deterministic defaults (named, no magic numbers).
const (
	DefaultDir        = "ppm"  // output directory, relative to the working directory
	DefaultExt        = ".ppm" // file extension, leading dot included
	DefaultNameLength = 10     // random characters before the extension
	DefaultPerm       = 0o644  // file mode for new files
	DefaultDirPerm    = 0o755  // mode for a created output directory
)

// Option customizes a Write call by mutating its config.
type Option func(*config)

// config aggregates all knobs used by Write.
type config struct {
	dir     string
	ext     string
	nameLen int
	rng     *rand.Rand // nil means the auto-seeded global source
}

// newConfig starts from the defaults and applies opts in order.
func newConfig(opts ...Option) config {
	cfg := config{
		dir:     DefaultDir,
		ext:     DefaultExt,
		nameLen: DefaultNameLength,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithDir sets the output directory. Panics on an empty path.
func WithDir(dir string) Option {
	if dir == "" {
		panic("outfile: WithDir(\"\")")
	}
	return func(c *config) { c.dir = dir }
}

// WithExt sets the file extension; a missing leading dot is added.
// Panics on an empty extension.
func WithExt(ext string) Option {
	if ext == "" {
		panic("outfile: WithExt(\"\")")
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return func(c *config) { c.ext = ext }
}

// WithNameLength sets the number of random characters. Panics if n < 1.
func WithNameLength(n int) Option {
	if n < 1 {
		panic("outfile: WithNameLength(n<1)")
	}
	return func(c *config) { c.nameLen = n }
}

// WithRand provides an explicit RNG for name generation. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("outfile: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed makes names reproducible by seeding a private RNG.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}
