// Package outfile persists rendered output under generated names.
//
// Naming policy: a fixed number of random alphanumeric characters (10 by
// default) plus an extension (".ppm" by default), inside an output directory
// ("ppm" by default) that is created when missing. Files are opened with
// O_EXCL, so an existing file is never overwritten.
//
// All knobs are functional options; randomness is injectable (WithSeed,
// WithRand) for reproducible names in tests.
package outfile
