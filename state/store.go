// Copyright 2026 The Helpbot Authors
// SPDX-License-Identifier: Apache-2.0

package state

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/helpbot-matrix/helpbot/lib/codec"
)

// DataDirEnv names the environment variable that overrides the
// directory state records live in. Unset means the process working
// directory.
const DataDirEnv = "HELPBOT_DATA_DIR"

// DataDir returns the directory state records are stored in.
func DataDir() string {
	if directory := os.Getenv(DataDirEnv); directory != "" {
		return directory
	}
	return "."
}

// Store is the durable backing for one state record kind. Load and
// Save block with no timeout or cancellation; callers on a cooperative
// scheduler treat each call as one blocking unit of work.
type Store[T any] struct {
	path     string
	defaults func() T
}

// NewStore returns a store for the record named filename under
// directory, with defaults producing the first-run value.
func NewStore[T any](directory, filename string, defaults func() T) *Store[T] {
	return &Store[T]{
		path:     filepath.Join(directory, filename),
		defaults: defaults,
	}
}

// Path returns the record's filesystem path.
func (s *Store[T]) Path() string { return s.path }

// Load reads the record. A missing record means first run: the default
// value is written to disk immediately, so the record exists from the
// first load on. Permission denial is distinguished from not-found and
// is fatal, as is a record that exists but does not decode.
func (s *Store[T]) Load() (T, error) {
	var zero T

	data, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		value := s.defaults()
		slog.Debug("state record not found, creating default", "path", s.path)
		if err := s.Save(value); err != nil {
			return zero, fmt.Errorf("writing default state record: %w", err)
		}
		return value, nil
	case errors.Is(err, fs.ErrPermission):
		return zero, &AccessDeniedError{Path: s.path, Err: err}
	case err != nil:
		return zero, fmt.Errorf("reading state record %s: %w", s.path, err)
	}

	var value T
	if err := codec.Unmarshal(data, &value); err != nil {
		return zero, &CorruptRecordError{Path: s.path, Err: err}
	}
	return value, nil
}

// Save serializes value and replaces the record wholesale. The bytes go
// to a temporary file first and are renamed into place, so a failed
// save leaves the previous record intact. Failures are returned for
// the caller to retry, skip, or escalate.
func (s *Store[T]) Save(value T) error {
	data, err := codec.Marshal(value)
	if err != nil {
		return &EncodeError{Path: s.path, Err: err}
	}

	temporary, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temporary file for %s: %w", s.path, err)
	}
	temporaryName := temporary.Name()

	if _, err := temporary.Write(data); err != nil {
		temporary.Close()
		os.Remove(temporaryName)
		return fmt.Errorf("writing state record %s: %w", s.path, err)
	}
	if err := temporary.Close(); err != nil {
		os.Remove(temporaryName)
		return fmt.Errorf("closing temporary file %s: %w", temporaryName, err)
	}
	if err := os.Rename(temporaryName, s.path); err != nil {
		os.Remove(temporaryName)
		return fmt.Errorf("replacing state record %s: %w", s.path, err)
	}
	return nil
}
