// Package platform resolves the Rust target triple for the running host.
//
// OS and architecture come from runtime.GOOS and runtime.GOARCH. On Linux
// the libc flavor (gnu vs musl) is inferred from the distribution reported
// by gopsutil, with a graceful fallback to gnu when detection fails. This
// keeps triple resolution working even on systems without os-release data.
package platform

import "context"

// Libc flavor constants for Linux targets.
const (
	LibcGNU  = "gnu"
	LibcMusl = "musl"
)

// Info describes the host as a Rust compilation target.
type Info struct {
	OS     string // "linux", "darwin", "windows"
	Arch   string // Rust arch name (e.g. "x86_64", "aarch64")
	Libc   string // "gnu" or "musl" (Linux only)
	Distro string // distro ID when detected (Linux only, e.g. "alpine")
}

// Triple returns the Rust target triple for this host, for example
// "x86_64-unknown-linux-gnu" or "aarch64-apple-darwin".
func (i *Info) Triple() string {
	switch i.OS {
	case "linux":
		libc := i.Libc
		if libc == "" {
			libc = LibcGNU
		}
		return i.Arch + "-unknown-linux-" + libc
	case "darwin":
		return i.Arch + "-apple-darwin"
	case "windows":
		return i.Arch + "-pc-windows-msvc"
	default:
		return i.Arch + "-unknown-" + i.OS
	}
}

// Detector detects host platform information.
type Detector interface {
	// Detect returns platform information for the running host.
	Detect(ctx context.Context) (*Info, error)
}
