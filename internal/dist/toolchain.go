package dist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrInvalidToolchain indicates a toolchain name that is not of the form
// "nightly-2024-01-01". It is reported before any network or disk activity.
var ErrInvalidToolchain = errors.New(`expected a nightly version in the form "nightly-2024-01-01"`)

const nightlyPrefix = "nightly-"

// ParseToolchain validates a toolchain name of the form
// "nightly-YYYY-MM-DD" and returns its date part.
func ParseToolchain(toolchain string) (string, error) {
	if len(toolchain) != len("nightly-2024-01-01") || toolchain[:len(nightlyPrefix)] != nightlyPrefix {
		return "", fmt.Errorf("%q: %w", toolchain, ErrInvalidToolchain)
	}

	date := toolchain[len(nightlyPrefix):]
	for i, b := range []byte(date) {
		switch i {
		case 4, 7:
			if b != '-' {
				return "", fmt.Errorf("%q: %w", toolchain, ErrInvalidToolchain)
			}
		default:
			if b < '0' || b > '9' {
				return "", fmt.Errorf("%q: %w", toolchain, ErrInvalidToolchain)
			}
		}
	}

	return date, nil
}

// Home resolves the rustup root directory: $RUSTUP_HOME if set, otherwise
// ~/.rustup.
func Home() (string, error) {
	if home := os.Getenv("RUSTUP_HOME"); home != "" {
		return home, nil
	}

	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(userHome, ".rustup"), nil
}

// ToolchainDir returns the installation root for a dated nightly:
// <home>/toolchains/nightly-<date>-<target>.
func ToolchainDir(home, date, target string) string {
	return filepath.Join(home, "toolchains", fmt.Sprintf("nightly-%s-%s", date, target))
}
