package dist

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/dtolnay/fast-rustup/internal/testutil"
)

func TestParseToolchain(t *testing.T) {
	tests := []struct {
		name      string
		toolchain string
		wantDate  string
		wantErr   bool
	}{
		{
			name:      "valid_nightly",
			toolchain: "nightly-2024-01-01",
			wantDate:  "2024-01-01",
		},
		{
			name:      "valid_recent",
			toolchain: "nightly-2026-08-31",
			wantDate:  "2026-08-31",
		},
		{
			name:      "missing_prefix",
			toolchain: "stable-2024-01-01",
			wantErr:   true,
		},
		{
			name:      "bare_date",
			toolchain: "2024-01-01",
			wantErr:   true,
		},
		{
			name:      "too_short",
			toolchain: "nightly-2024-1-1",
			wantErr:   true,
		},
		{
			name:      "too_long",
			toolchain: "nightly-2024-01-011",
			wantErr:   true,
		},
		{
			name:      "letters_in_date",
			toolchain: "nightly-2024-ab-01",
			wantErr:   true,
		},
		{
			name:      "wrong_separators",
			toolchain: "nightly-2024_01_01",
			wantErr:   true,
		},
		{
			name:      "empty",
			toolchain: "",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := ParseToolchain(tt.toolchain)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if !errors.Is(err, ErrInvalidToolchain) {
					t.Errorf("error = %v, want ErrInvalidToolchain", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if date != tt.wantDate {
				t.Errorf("date = %q, want %q", date, tt.wantDate)
			}
		})
	}
}

func TestHome(t *testing.T) {
	t.Run("env_override", func(t *testing.T) {
		want := testutil.SetupRustupHome(t)
		home, err := Home()
		if err != nil {
			t.Fatalf("Home failed: %v", err)
		}
		if home != want {
			t.Errorf("home = %q, want %q", home, want)
		}
	})

	t.Run("default_under_user_home", func(t *testing.T) {
		t.Setenv("RUSTUP_HOME", "")
		home, err := Home()
		if err != nil {
			t.Fatalf("Home failed: %v", err)
		}
		if filepath.Base(home) != ".rustup" {
			t.Errorf("home = %q, want a .rustup directory", home)
		}
	})
}

func TestToolchainDir(t *testing.T) {
	dir := ToolchainDir("/home/u/.rustup", "2024-01-01", "x86_64-unknown-linux-gnu")
	want := filepath.Join("/home/u/.rustup", "toolchains", "nightly-2024-01-01-x86_64-unknown-linux-gnu")
	if dir != want {
		t.Errorf("dir = %q, want %q", dir, want)
	}
}
