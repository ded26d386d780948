// Package testutil provides utilities for testing fast-rustup in isolation.
package testutil

import (
	"path/filepath"
	"testing"
)

// SetupRustupHome points RUSTUP_HOME at a fresh temp directory for the
// duration of one test, so tests never touch the user's real toolchains.
// The directory itself is not created: the installer is responsible for
// creating the rustup home, and tests exercise that path too.
//
// Cleanup is handled by t.TempDir and t.Setenv.
func SetupRustupHome(t *testing.T) string {
	t.Helper()

	home := filepath.Join(t.TempDir(), "rustup")
	t.Setenv("RUSTUP_HOME", home)
	return home
}
