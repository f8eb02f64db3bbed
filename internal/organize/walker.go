package organize

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"tagsort/internal/logging"
	"tagsort/internal/placement"
	"tagsort/internal/tags"
	"tagsort/internal/textutil"
)

// Failure reasons recorded in the run report.
const (
	ReasonMissingTag = "missing-tag"
	ReasonUnreadable = "unreadable"
	ReasonCopyFailed = "copy-failed"
)

// Failure is one source file that could not be sorted.
type Failure struct {
	Path   string
	Reason string
	Detail string
}

// Report aggregates the outcome of one copy_sort run. It is the only output
// of the walk; no state outlives the call.
type Report struct {
	Source      string
	Destination string
	StartedAt   time.Time
	FinishedAt  time.Time

	Copied     int
	Duplicates int
	Scanned    int

	Failures    []Failure
	Unsupported []string
}

// Succeeded returns the number of files accounted for in the destination
// tree, counting byte-identical duplicates as successes.
func (r *Report) Succeeded() int {
	return r.Copied + r.Duplicates
}

// Options configures a run.
type Options struct {
	Source      string
	Destination string
	Sanitize    textutil.Sanitizer
	Registry    *tags.Registry
	Logger      *slog.Logger
}

// Run walks opts.Source and sorts every recognized audio file under
// opts.Destination. The returned Report is complete even when individual
// files fail; a non-nil error means the walk itself could not proceed.
func Run(ctx context.Context, opts Options) (*Report, error) {
	if opts.Sanitize == nil {
		opts.Sanitize = textutil.SanitizeReserved
	}
	if opts.Registry == nil {
		opts.Registry = tags.NewRegistry()
	}
	logger := logging.NewComponentLogger(opts.Logger, "walker")

	source, err := filepath.Abs(opts.Source)
	if err != nil {
		return nil, fmt.Errorf("resolve source: %w", err)
	}
	dest, err := filepath.Abs(opts.Destination)
	if err != nil {
		return nil, fmt.Errorf("resolve destination: %w", err)
	}

	report := &Report{
		Source:      source,
		Destination: dest,
		StartedAt:   time.Now(),
	}

	walkErr := filepath.WalkDir(source, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if path == source {
				return err
			}
			// Unreadable subtree: record and keep walking.
			logger.Warn("skipping unreadable path", logging.String("path", path), logging.Error(err))
			report.Failures = append(report.Failures, Failure{Path: path, Reason: ReasonUnreadable, Detail: err.Error()})
			if entry != nil && entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !entry.Type().IsRegular() {
			return nil
		}

		switch opts.Registry.Classify(path) {
		case tags.ClassRecognized:
			report.Scanned++
			sortFile(report, opts, logger, path, dest)
		case tags.ClassUnsupported:
			report.Scanned++
			logger.Debug("unsupported format", logging.String("source", path))
			report.Unsupported = append(report.Unsupported, path)
		case tags.ClassIgnored:
		}
		return nil
	})

	report.FinishedAt = time.Now()
	if walkErr != nil {
		return report, fmt.Errorf("walk source tree: %w", walkErr)
	}

	logger.Info("run finished",
		logging.Int("copied", report.Copied),
		logging.Int("duplicates", report.Duplicates),
		logging.Int("failures", len(report.Failures)),
		logging.Int("unsupported", len(report.Unsupported)),
		logging.Duration("elapsed", report.FinishedAt.Sub(report.StartedAt)),
	)
	return report, nil
}

func sortFile(report *Report, opts Options, logger *slog.Logger, path, dest string) {
	reader, ok := opts.Registry.Lookup(path)
	if !ok {
		// Classify said recognized; a missing reader is a registry bug.
		report.Failures = append(report.Failures, Failure{Path: path, Reason: ReasonUnreadable, Detail: "no reader registered"})
		return
	}

	set, err := reader.Extract(path)
	if err != nil {
		reason := ReasonUnreadable
		if errors.Is(err, tags.ErrMissingTag) {
			reason = ReasonMissingTag
		}
		logger.Debug("extraction failed",
			logging.String("source", path),
			logging.String("reason", reason),
			logging.Error(err),
		)
		report.Failures = append(report.Failures, Failure{Path: path, Reason: reason, Detail: err.Error()})
		return
	}

	triple := placement.Triple{
		Artist: opts.Sanitize(set.Artist),
		Album:  opts.Sanitize(set.Album),
		Title:  opts.Sanitize(set.Title),
	}
	ext := strings.ToLower(filepath.Ext(path))

	placed, err := placement.Resolve(dest, triple, ext, path)
	if err != nil {
		logger.Warn("placement failed", logging.String("source", path), logging.Error(err))
		report.Failures = append(report.Failures, Failure{Path: path, Reason: ReasonCopyFailed, Detail: err.Error()})
		return
	}

	switch placed.Outcome {
	case placement.OutcomeNew:
		report.Copied++
	case placement.OutcomeDuplicate:
		report.Duplicates++
	}
	logger.Info("sorted file",
		logging.String("source", path),
		logging.String("target", placed.Path),
		logging.String("outcome", placed.Outcome.String()),
	)
}
