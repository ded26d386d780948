package pipeline

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/ulikunitz/xz"

	"github.com/dtolnay/fast-rustup/internal/dist"
)

// newDecompressor wraps r with the streaming decoder for the given archive
// format. The decoder pulls compressed input lazily; nothing is read ahead
// of what the tar walk demands.
//
// Both decoders read the stream header at construction time, so a stream
// that is not valid xz/gzip at all fails here rather than mid-walk.
func newDecompressor(r io.Reader, format, archive string) (io.Reader, error) {
	switch format {
	case dist.FormatXZ:
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, &DecompressionError{Archive: archive, Err: err}
		}
		return &decompressReader{r: xr, archive: archive}, nil

	case dist.FormatGZ:
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, &DecompressionError{Archive: archive, Err: err}
		}
		return &decompressReader{r: gr, archive: archive}, nil

	default:
		return nil, fmt.Errorf("unsupported archive format: %s", format)
	}
}

// decompressReader tags decoder failures as DecompressionError so the
// extraction layer can tell a corrupt compressed stream apart from a
// malformed tar structure. io.EOF passes through untouched.
type decompressReader struct {
	r       io.Reader
	archive string
}

func (d *decompressReader) Read(p []byte) (int, error) {
	n, err := d.r.Read(p)
	if err != nil && err != io.EOF {
		return n, &DecompressionError{Archive: d.archive, Err: err}
	}
	return n, err
}
