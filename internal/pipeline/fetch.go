package pipeline

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// chunkSize is the buffer size for each network read. Each chunk is handed
// to the channel exactly once and never reused.
const chunkSize = 64 * 1024

// fetcher issues the streaming GETs, one per component archive. A single
// client is shared by all fetch tasks.
type fetcher struct {
	client    *http.Client
	userAgent string
}

func newFetcher(userAgent string) *fetcher {
	return &fetcher{
		client: &http.Client{
			// No client timeout: it would bound the whole body read, and
			// archives are large. Cancellation comes from the context.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("too many redirects")
				}
				return nil
			},
		},
		userAgent: userAgent,
	}
}

// fetch streams one archive's response body into ch, chunk by chunk, as
// bytes arrive. The channel is always closed on return; that close is the
// extractor's only end-of-stream signal.
//
// A non-success status is fatal and reported before any chunk is
// forwarded. A closed done channel means the extractor has stopped
// reading; the fetch then ends without error, since a vanished consumer
// is the consumer's failure to report, not the fetcher's.
func (f *fetcher) fetch(ctx context.Context, url string, ch chan<- []byte, done <-chan struct{}) error {
	defer close(ch)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return &HTTPStatusError{
			Status:     resp.Status,
			StatusCode: resp.StatusCode,
			URL:        url,
		}
	}

	for {
		buf := make([]byte, chunkSize)
		n, err := resp.Body.Read(buf)
		if n > 0 {
			select {
			case ch <- buf[:n]:
			case <-done:
				return nil
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read response body from %s: %w", url, err)
		}
	}
}
