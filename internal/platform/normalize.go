package platform

import (
	"fmt"
	"strings"
)

// muslDistros maps distribution IDs whose native toolchains link against
// musl rather than glibc. Anything not listed here resolves to gnu.
var muslDistros = map[string]bool{
	"alpine":       true,
	"postmarketos": true,
	"chimera":      true,
}

// mapArch converts GOARCH values to Rust architecture names.
func mapArch(goarch string) (string, error) {
	switch goarch {
	case "amd64":
		return "x86_64", nil
	case "arm64":
		return "aarch64", nil
	case "386":
		return "i686", nil
	default:
		return "", fmt.Errorf("unsupported architecture: %s", goarch)
	}
}

// normalizeDistro converts distro IDs to lowercase for consistent lookup.
func normalizeDistro(distro string) string {
	return strings.ToLower(strings.TrimSpace(distro))
}
