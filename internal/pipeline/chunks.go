package pipeline

import "io"

// chunkReader adapts a channel of byte slices into a blocking io.Reader
// for the decompressor. Chunks are consumed exactly once, in FIFO order.
//
// A Read with no buffered data blocks the calling worker until the fetcher
// sends the next chunk or closes the channel. Channel closure is surfaced
// as io.EOF regardless of why the producer stopped; a fetch-side failure
// is observed separately when the fetch task is joined.
type chunkReader struct {
	ch  <-chan []byte
	cur []byte
}

func newChunkReader(ch <-chan []byte) *chunkReader {
	return &chunkReader{ch: ch}
}

func (r *chunkReader) Read(p []byte) (int, error) {
	for len(r.cur) == 0 {
		chunk, ok := <-r.ch
		if !ok {
			return 0, io.EOF
		}
		r.cur = chunk
	}

	n := copy(p, r.cur)
	r.cur = r.cur[n:]
	return n, nil
}
