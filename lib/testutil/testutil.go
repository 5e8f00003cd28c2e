// Copyright 2026 The Helpbot Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil holds small filesystem helpers shared by tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content to name under directory and returns the full
// path. Any failure fails the test immediately.
func WriteFile(t *testing.T, directory, name, content string) string {
	t.Helper()
	path := filepath.Join(directory, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}
