package pipeline

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// extract walks one component's decoded archive stream and materializes
// the entries belonging to subdir under root. The stream is consumed
// entry by entry; nothing is re-read and nothing is buffered whole.
//
// Any error is fatal for this component: the walk stops immediately and
// already-written files are left on disk.
func extract(root string, r io.Reader, subdir string) error {
	tr := tar.NewReader(r)

	for {
		header, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read tar header: %w", err)
		}

		rel, ok := destRelPath(header.Name, subdir)
		if !ok {
			continue
		}
		target := filepath.Join(root, filepath.FromSlash(rel))

		switch header.Typeflag {
		case tar.TypeDir:
			// Idempotent: racing siblings may have created shared parents
			if err := os.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("create directory %s: %w", target, err)
			}

		case tar.TypeReg:
			if err := writeEntry(target, tr, header); err != nil {
				return err
			}

		case tar.TypeSymlink:
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return fmt.Errorf("create parent dir for %s: %w", target, err)
			}
			if err := os.Symlink(header.Linkname, target); err != nil {
				return fmt.Errorf("create symlink %s: %w", target, err)
			}

		case tar.TypeLink:
			linkRel, ok := destRelPath(header.Linkname, subdir)
			if !ok {
				continue
			}
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return fmt.Errorf("create parent dir for %s: %w", target, err)
			}
			if err := os.Link(filepath.Join(root, filepath.FromSlash(linkRel)), target); err != nil {
				return fmt.Errorf("create hard link %s: %w", target, err)
			}

		default:
			// Skip other types (char devices, fifos, etc.)
			continue
		}
	}
}

// writeEntry streams one regular file entry's content to disk with the
// permissions recorded in its header.
func writeEntry(target string, r io.Reader, header *tar.Header) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("create parent dir for %s: %w", target, err)
	}

	outFile, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, os.FileMode(header.Mode))
	if err != nil {
		return fmt.Errorf("create file %s: %w", target, err)
	}

	if _, err := io.Copy(outFile, r); err != nil {
		outFile.Close()
		return fmt.Errorf("write file %s: %w", target, err)
	}

	if err := outFile.Close(); err != nil {
		return fmt.Errorf("close file %s: %w", target, err)
	}

	return nil
}
