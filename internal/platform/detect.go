package platform

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
)

// RealDetector implements Detector using actual host inspection.
type RealDetector struct{}

// NewDetector creates a new platform detector.
func NewDetector() Detector {
	return &RealDetector{}
}

// Detect resolves the host's Rust target from runtime.GOOS and
// runtime.GOARCH, and on Linux uses gopsutil to decide between the gnu
// and musl flavors of the triple.
//
// If distribution detection fails the libc defaults to gnu and detection
// continues; a failure to read os-release must not prevent installing a
// toolchain on an otherwise ordinary glibc system.
func (d *RealDetector) Detect(ctx context.Context) (*Info, error) {
	arch, err := mapArch(runtime.GOARCH)
	if err != nil {
		return nil, fmt.Errorf("platform detection failed: %w", err)
	}

	info := &Info{
		OS:   runtime.GOOS,
		Arch: arch,
	}

	if runtime.GOOS == "linux" {
		info.Libc = LibcGNU

		distro, _, _, err := host.PlatformInformationWithContext(ctx)
		if err != nil {
			// Context cancellation is a hard failure
			if ctx.Err() != nil {
				return nil, fmt.Errorf("platform detection cancelled: %w", ctx.Err())
			}
			// Graceful fallback: gnu triple with no distro details
			return info, nil
		}

		info.Distro = normalizeDistro(distro)
		if muslDistros[info.Distro] {
			info.Libc = LibcMusl
		}
	}

	return info, nil
}
