package pipeline

import (
	"path"
	"strings"
)

// manifestName is the install manifest each component archive carries at
// its subtree root. It drives rustup's own installer and is never
// materialized as output.
const manifestName = "manifest.in"

// destRelPath applies the entry filtering policy and returns the entry's
// destination path relative to the installation root, plus whether the
// entry should be materialized at all.
//
// Archive entries look like
//
//	rustc-nightly-<target>/rustc/bin/rustc
//
// The first segment is the archive-version directory and carries no
// destination information; it is dropped. The second segment names the
// logical package; entries whose second segment is not the wanted subdir
// belong to a different package bundled in the same archive and are
// skipped. What remains, re-rooted under the installation directory, is
// the destination. An empty remainder addresses the installation root
// itself (the component's top-level directory entry).
func destRelPath(name, subdir string) (string, bool) {
	segments := splitEntryPath(name)
	if len(segments) == 0 {
		// Does not occur in well-formed archives
		return "", false
	}
	if len(segments) < 2 || segments[1] != subdir {
		return "", false
	}

	rest := segments[2:]
	if len(rest) == 1 && rest[0] == manifestName {
		return "", false
	}

	return path.Join(rest...), true
}

// splitEntryPath splits a tar entry name into path segments, dropping
// empty segments and "." (tar names are often prefixed with "./").
func splitEntryPath(name string) []string {
	var segments []string
	for _, s := range strings.Split(name, "/") {
		if s != "" && s != "." {
			segments = append(segments, s)
		}
	}
	return segments
}
