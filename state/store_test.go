// Copyright 2026 The Helpbot Authors
// SPDX-License-Identifier: Apache-2.0

package state

import (
	"errors"
	"os"
	"testing"

	"github.com/helpbot-matrix/helpbot/lib/testutil"
)

func TestLoadCreatesDefaultRecordOnFirstRun(t *testing.T) {
	directory := t.TempDir()
	store := SessionStore(directory)

	session, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if session.AccessToken != nil {
		t.Errorf("default AccessToken = %q, want nil", *session.AccessToken)
	}

	// The default is durable: the record now exists on disk and a fresh
	// store reads the same value back.
	if _, err := os.Stat(store.Path()); err != nil {
		t.Fatalf("record not written on first load: %v", err)
	}
	reloaded, err := SessionStore(directory).Load()
	if err != nil {
		t.Fatalf("reload error = %v", err)
	}
	if reloaded.AccessToken != nil {
		t.Errorf("reloaded AccessToken = %q, want nil", *reloaded.AccessToken)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	directory := t.TempDir()
	store := SessionStore(directory)

	token := "syt_access_token"
	if err := store.Save(Session{AccessToken: &token}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	session, err := SessionStore(directory).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if session.AccessToken == nil || *session.AccessToken != token {
		t.Errorf("AccessToken = %v, want %q", session.AccessToken, token)
	}
}

func TestSaveReplacesRecordWholesale(t *testing.T) {
	directory := t.TempDir()
	store := SessionStore(directory)

	first, second := "first-token", "second-token"
	if err := store.Save(Session{AccessToken: &first}); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(Session{AccessToken: &second}); err != nil {
		t.Fatal(err)
	}

	session, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if session.AccessToken == nil || *session.AccessToken != second {
		t.Errorf("AccessToken = %v, want %q", session.AccessToken, second)
	}
}

func TestLoadRejectsCorruptRecord(t *testing.T) {
	directory := t.TempDir()
	testutil.WriteFile(t, directory, sessionFileName, "this is not cbor \xff\xfe")

	_, err := SessionStore(directory).Load()
	var corrupt *CorruptRecordError
	if !errors.As(err, &corrupt) {
		t.Fatalf("Load() error = %v, want *CorruptRecordError", err)
	}
	if corrupt.Path == "" {
		t.Error("CorruptRecordError carries no path")
	}
}

func TestSaveLeavesNoTemporaryFiles(t *testing.T) {
	directory := t.TempDir()
	store := SessionStore(directory)
	token := "syt_access_token"
	if err := store.Save(Session{AccessToken: &token}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	entries, err := os.ReadDir(directory)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != sessionFileName {
		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			names = append(names, entry.Name())
		}
		t.Errorf("directory contents = %v, want only %s", names, sessionFileName)
	}
}

func TestSaveFailsOnMissingDirectory(t *testing.T) {
	store := SessionStore(t.TempDir() + "/nonexistent")
	token := "syt_access_token"
	if err := store.Save(Session{AccessToken: &token}); err == nil {
		t.Fatal("Save() succeeded into a missing directory")
	}
}

func TestDataDir(t *testing.T) {
	t.Setenv(DataDirEnv, "")
	if got := DataDir(); got != "." {
		t.Errorf("DataDir() = %q, want %q", got, ".")
	}
	t.Setenv(DataDirEnv, "/var/lib/helpbot")
	if got := DataDir(); got != "/var/lib/helpbot" {
		t.Errorf("DataDir() = %q, want %q", got, "/var/lib/helpbot")
	}
}
