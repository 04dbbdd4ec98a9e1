// SPDX-License-Identifier: MIT

package outfile

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
)

// alphabet is the character set of generated names.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Name returns a fresh file name (random characters plus extension) under
// the options' policy, without touching the filesystem.
func Name(opts ...Option) string {
	return newConfig(opts...).name()
}

// name draws nameLen characters from alphabet and appends the extension.
func (c config) name() string {
	intn := rand.Intn
	if c.rng != nil {
		intn = c.rng.Intn
	}
	b := make([]byte, c.nameLen, c.nameLen+len(c.ext))
	for i := range b {
		b[i] = alphabet[intn(len(alphabet))]
	}

	return string(append(b, c.ext...))
}

// Write stores data as the entire contents of a new file and returns its
// path.
func Write(data []byte, opts ...Option) (string, error) {
	return WriteFunc(func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	}, opts...)
}

// WriteFunc creates the output directory if needed, opens a new uniquely
// named file and lets fn stream the contents into it.
// Returns the path written, or an error wrapping ErrCreateDir or ErrWrite
// (plus fn's own error). A partially written file is removed.
func WriteFunc(fn func(io.Writer) error, opts ...Option) (path string, err error) {
	cfg := newConfig(opts...)
	if err := os.MkdirAll(cfg.dir, DefaultDirPerm); err != nil {
		return "", fmt.Errorf("outfile: %s: %w", cfg.dir, errors.Join(ErrCreateDir, err))
	}

	target := filepath.Join(cfg.dir, cfg.name())
	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, DefaultPerm)
	if err != nil {
		return "", fmt.Errorf("outfile: %s: %w", target, errors.Join(ErrWrite, err))
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			path, err = "", fmt.Errorf("outfile: %s: %w", target, errors.Join(ErrWrite, cerr))
		}
		if err != nil {
			_ = os.Remove(target)
		}
	}()

	if err := fn(f); err != nil {
		return "", fmt.Errorf("outfile: %s: %w", target, errors.Join(ErrWrite, err))
	}

	return target, nil
}
