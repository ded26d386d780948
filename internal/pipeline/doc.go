// Package pipeline implements the concurrent streaming download and
// extraction of toolchain components.
//
// Each component runs an independent pipeline: an HTTP fetch task forwards
// response body chunks into a channel as they arrive, and an extraction job
// on a fixed-size worker pool pulls them back out through a blocking
// reader, decompresses the stream, and walks the tar archive entry by
// entry, writing the component's subtree under the installation root. No
// archive is ever buffered whole, in memory or on disk.
//
// # Concurrency Model
//
// Fetch tasks are plain goroutines joined through an errgroup; they spend
// their time waiting on the network. Extraction jobs are CPU-bound
// (decompression plus tar parsing) and run on a pool of
// min(NumCPU, component count) workers, each draining one component's
// channel to completion before picking up another job. The chunk channel
// between the two sides is the only coupling point: it is
// single-producer/single-consumer, FIFO, and bounded, so a slow extractor
// backpressures its fetcher instead of accumulating unbounded memory.
//
// A failure in one component's pipeline does not cancel its siblings; they
// run to their own completion and the first error observed is reported as
// the overall result.
package pipeline
