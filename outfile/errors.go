// SPDX-License-Identifier: MIT

package outfile

import "errors"

var (
	// ErrCreateDir is returned when the output directory cannot be created.
	ErrCreateDir = errors.New("outfile: cannot create output directory")

	// ErrWrite is returned when the output file cannot be created or written.
	ErrWrite = errors.New("outfile: cannot write output file")
)
