package inventory

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Fatal scan errors. Everything else that goes wrong after traversal
// starts is absorbed as a per-file or per-directory skip.
var (
	// ErrRootNotFound indicates the scan root does not exist.
	ErrRootNotFound = errors.New("scan root does not exist")

	// ErrRootNotDir indicates the scan root is not a directory.
	ErrRootNotDir = errors.New("scan root is not a directory")
)

// Options configures one scan.
type Options struct {
	// Tables supplies the classification tables; nil uses the defaults.
	Tables *Tables

	// SummaryOnly discards per-file records and keeps only the summary.
	SummaryOnly bool

	// ShebangFallback enables the first-line language pass for files
	// whose extension yields no language.
	ShebangFallback bool

	// Workers sets the number of concurrent classification workers.
	// Values below 2 select the sequential pipeline.
	Workers int
}

// Scan walks root, classifies every reachable file, and folds the
// records into a summary. The root must exist and be a directory; all
// later per-file failures increment SkippedFiles instead of aborting.
//
// Cancellation is checked between files. On cancellation Scan returns
// the records and summary accumulated so far with Result.Incomplete
// set, not an error.
func Scan(ctx context.Context, root string, opts Options) (*Result, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return nil, fmt.Errorf("stat scan root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotDir, root)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		absRoot = root
	}

	tables := opts.Tables
	if tables == nil {
		tables = DefaultTables()
	}
	classifier := NewClassifier(tables, opts.ShebangFallback)

	slog.Debug("scan starting", "root", absRoot, "workers", opts.Workers)

	var res *Result
	if opts.Workers > 1 {
		res = scanParallel(ctx, absRoot, tables, classifier, opts)
	} else {
		res = scanSequential(ctx, absRoot, tables, classifier, opts)
	}

	slog.Debug("scan finished",
		"root", absRoot,
		"scanned", res.Summary.ScannedFiles,
		"skipped", res.Summary.SkippedFiles,
		"incomplete", res.Incomplete)
	return res, nil
}

// errScanCancelled stops the walk early without discarding progress.
var errScanCancelled = errors.New("scan cancelled")

func scanSequential(ctx context.Context, root string, tables *Tables, classifier *Classifier, opts Options) *Result {
	res := &Result{Root: root, Summary: NewSummary()}

	err := walkFiles(root, tables, func(path string, d fs.DirEntry) error {
		if ctx.Err() != nil {
			return errScanCancelled
		}

		rec, err := classifier.Classify(root, path, d)
		if err != nil {
			slog.Debug("skipping file", "path", path, "error", err)
			res.Summary.observeSkip()
			return nil
		}

		res.Summary.observe(&rec)
		if !opts.SummaryOnly {
			res.Records = append(res.Records, rec)
		}
		return nil
	})
	if errors.Is(err, errScanCancelled) {
		res.Incomplete = true
	}
	return res
}

// outcome carries one classification result from a worker to the
// aggregating loop. ok is false for skipped paths.
type outcome struct {
	rec FileRecord
	ok  bool
}

// scanParallel drains the walker's path stream through a bounded pool
// of classification workers and funnels the outcomes into a single
// aggregating loop. Histogram increments commute, so the order in which
// workers finish does not affect the summary.
func scanParallel(ctx context.Context, root string, tables *Tables, classifier *Classifier, opts Options) *Result {
	res := &Result{Root: root, Summary: NewSummary()}

	type walkItem struct {
		path string
		d    fs.DirEntry
	}

	var cancelled atomic.Bool
	paths := make(chan walkItem, opts.Workers)

	go func() {
		defer close(paths)
		err := walkFiles(root, tables, func(path string, d fs.DirEntry) error {
			select {
			case <-ctx.Done():
				return errScanCancelled
			case paths <- walkItem{path: path, d: d}:
				return nil
			}
		})
		if errors.Is(err, errScanCancelled) {
			cancelled.Store(true)
		}
	}()

	outcomes := make(chan outcome, opts.Workers)

	go func() {
		var group errgroup.Group
		group.SetLimit(opts.Workers)
		for item := range paths {
			it := item
			group.Go(func() error {
				rec, err := classifier.Classify(root, it.path, it.d)
				if err != nil {
					slog.Debug("skipping file", "path", it.path, "error", err)
					outcomes <- outcome{ok: false}
					return nil
				}
				outcomes <- outcome{rec: rec, ok: true}
				return nil
			})
		}
		_ = group.Wait()
		close(outcomes)
	}()

	// Single aggregation point: the summary is only ever touched here.
	for o := range outcomes {
		if !o.ok {
			res.Summary.observeSkip()
			continue
		}
		res.Summary.observe(&o.rec)
		if !opts.SummaryOnly {
			res.Records = append(res.Records, o.rec)
		}
	}

	if cancelled.Load() {
		res.Incomplete = true
	}
	return res
}

// Summarize runs a summary-only scan, a convenience for callers that
// never need the per-file record list.
func Summarize(ctx context.Context, root string, opts Options) (*Summary, error) {
	opts.SummaryOnly = true
	res, err := Scan(ctx, root, opts)
	if err != nil {
		return nil, err
	}
	return res.Summary, nil
}
