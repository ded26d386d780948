package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/dtolnay/fast-rustup/internal/dist"
)

// chunkBuffer is the per-component channel capacity, in chunks. The send
// blocks once the extractor falls this far behind, capping how much
// fetched-but-unprocessed data a component can hold in memory.
const chunkBuffer = 64

// Installer runs the concurrent pipelines that install a full toolchain.
type Installer struct {
	// Config holds the immutable distribution settings.
	Config dist.Config
	// Components is the fixed set of archives to fetch and extract.
	Components []dist.Component
	// Workers overrides the extraction pool size. Zero means
	// min(NumCPU, len(Components)).
	Workers int
	// Logger is used for progress diagnostics. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// extractJob binds one component's channel ends to its extraction work.
type extractJob struct {
	archive string
	subdir  string
	ch      chan []byte
	done    chan struct{}
	// fetchErr receives the fetch task's result, exactly one value. When
	// extraction fails because its stream was cut short by a fetch-side
	// failure, the fetch error is the root cause and takes precedence in
	// the component's completion record.
	fetchErr chan error
}

// Install fetches and extracts every component of the dated nightly into
// the toolchain directory under home.
//
// It fails fast, before any network activity, when the toolchain
// directory already exists. One fetch task per component runs on the
// scheduler; one extraction job per component runs on the worker pool.
// The first failure observed becomes the overall result, but every
// remaining task is still joined before returning, so no request is left
// running. Sibling pipelines are not cancelled by a failure; partial
// output from failed or still-finishing components stays on disk.
func (inst *Installer) Install(ctx context.Context, home, date, target string) error {
	root := dist.ToolchainDir(home, date, target)

	if err := createDirIfNotExists(home); err != nil {
		return fmt.Errorf("create rustup home: %w", err)
	}
	if err := createDirIfNotExists(filepath.Join(home, "toolchains")); err != nil {
		return fmt.Errorf("create toolchains dir: %w", err)
	}
	if _, err := os.Lstat(root); err == nil {
		return fmt.Errorf("%w: %s", ErrDestinationExists, root)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat toolchain dir: %w", err)
	}

	log := inst.logger()
	f := newFetcher(inst.Config.UserAgent)

	var fetchTasks errgroup.Group
	jobs := make(chan extractJob, len(inst.Components))
	results := make(chan error, len(inst.Components))

	for _, component := range inst.Components {
		archive := component.Archive(target, inst.Config.Format)
		url := inst.Config.ComponentURL(date, archive)

		job := extractJob{
			archive:  archive,
			subdir:   component.Subdir,
			ch:       make(chan []byte, chunkBuffer),
			done:     make(chan struct{}),
			fetchErr: make(chan error, 1),
		}

		log.Debug("fetching component", "url", url)
		fetchTasks.Go(func() error {
			err := f.fetch(ctx, url, job.ch, job.done)
			job.fetchErr <- err
			return err
		})

		jobs <- job
	}
	close(jobs)

	for i, n := 0, inst.workers(); i < n; i++ {
		go func() {
			for job := range jobs {
				err := inst.runExtract(root, job)
				// Detach the fetcher before waiting on its result: it may
				// still be blocked sending into a full channel.
				close(job.done)
				if ferr := <-job.fetchErr; ferr != nil {
					err = ferr
				}
				results <- err
			}
		}()
	}

	// One completion record per extraction job, in arrival order. The
	// first failure wins; later ones are logged and dropped.
	var firstErr error
	for range inst.Components {
		if err := <-results; err != nil {
			if firstErr == nil {
				firstErr = err
			} else {
				log.Error("component failed", "error", err)
			}
		}
	}

	// Join every fetch task even when extraction already failed, so the
	// HTTP client is idle by the time we return.
	if err := fetchTasks.Wait(); err != nil && firstErr == nil {
		firstErr = err
	}

	return firstErr
}

// runExtract drains one component's channel through the decompressor and
// archive walk. This is the CPU-bound half of a pipeline.
func (inst *Installer) runExtract(root string, job extractJob) error {
	r, err := newDecompressor(newChunkReader(job.ch), inst.Config.Format, job.archive)
	if err != nil {
		return err
	}
	if err := extract(root, r, job.subdir); err != nil {
		return fmt.Errorf("extract %s: %w", job.archive, err)
	}
	inst.logger().Debug("extracted component", "archive", job.archive)
	return nil
}

func (inst *Installer) workers() int {
	workers := inst.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(inst.Components) {
		workers = len(inst.Components)
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

func (inst *Installer) logger() *slog.Logger {
	if inst.Logger != nil {
		return inst.Logger
	}
	return slog.Default()
}

// createDirIfNotExists creates a single directory, tolerating
// pre-existence but no other failure.
func createDirIfNotExists(path string) error {
	if err := os.Mkdir(path, 0755); err != nil && !os.IsExist(err) {
		return err
	}
	return nil
}
