package pipeline

import (
	"archive/tar"
	"bytes"
	"io"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/ulikunitz/xz"

	"github.com/dtolnay/fast-rustup/internal/dist"
)

// tarEntry describes one entry of a test archive.
type tarEntry struct {
	name     string
	typeflag byte
	mode     int64
	content  string
	linkname string
}

func fileEntry(name, content string) tarEntry {
	return tarEntry{name: name, typeflag: tar.TypeReg, mode: 0644, content: content}
}

func dirEntry(name string) tarEntry {
	return tarEntry{name: name, typeflag: tar.TypeDir, mode: 0755}
}

// buildTar writes entries into an uncompressed tar stream.
func buildTar(t *testing.T, entries []tarEntry) []byte {
	t.Helper()

	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	for _, e := range entries {
		hdr := &tar.Header{
			Name:     e.name,
			Typeflag: e.typeflag,
			Mode:     e.mode,
			Linkname: e.linkname,
			Size:     int64(len(e.content)),
		}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("write tar header %s: %v", e.name, err)
		}
		if e.typeflag == tar.TypeReg {
			if _, err := tw.Write([]byte(e.content)); err != nil {
				t.Fatalf("write tar content %s: %v", e.name, err)
			}
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("close tar writer: %v", err)
	}
	return buf.Bytes()
}

// compress wraps raw bytes in the given archive format.
func compress(t *testing.T, format string, raw []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	var w io.WriteCloser
	switch format {
	case dist.FormatXZ:
		xw, err := xz.NewWriter(&buf)
		if err != nil {
			t.Fatalf("create xz writer: %v", err)
		}
		w = xw
	case dist.FormatGZ:
		w = gzip.NewWriter(&buf)
	default:
		t.Fatalf("unknown format %q", format)
	}

	if _, err := w.Write(raw); err != nil {
		t.Fatalf("compress: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close compressor: %v", err)
	}
	return buf.Bytes()
}

// componentEntries builds the canonical entry layout of a component
// archive: version dir, component subtree with manifest, and the files.
func componentEntries(versionDir, subdir string, files map[string]string) []tarEntry {
	entries := []tarEntry{
		dirEntry(versionDir + "/"),
		dirEntry(versionDir + "/" + subdir + "/"),
		fileEntry(versionDir+"/"+subdir+"/manifest.in", "file:lib/placeholder\n"),
	}
	for name, content := range files {
		entries = append(entries, tarEntry{
			name:     versionDir + "/" + subdir + "/" + name,
			typeflag: tar.TypeReg,
			mode:     0755,
			content:  content,
		})
	}
	return entries
}

// buildComponentArchive produces a compressed component archive ready to
// serve from a test HTTP handler.
func buildComponentArchive(t *testing.T, format, versionDir, subdir string, files map[string]string) []byte {
	t.Helper()
	return compress(t, format, buildTar(t, componentEntries(versionDir, subdir, files)))
}

// chunked feeds data into a fresh chunk channel in fixed-size pieces and
// closes it, emulating the fetch side of a pipeline.
func chunked(data []byte, size int) chan []byte {
	ch := make(chan []byte, len(data)/size+1)
	for len(data) > 0 {
		n := min(size, len(data))
		chunk := make([]byte, n)
		copy(chunk, data[:n])
		ch <- chunk
		data = data[n:]
	}
	close(ch)
	return ch
}
