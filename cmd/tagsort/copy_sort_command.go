package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"tagsort/internal/logging"
	"tagsort/internal/organize"
	"tagsort/internal/runlog"
	"tagsort/internal/tags"
	"tagsort/internal/textutil"
)

// lockFileName guards a destination tree against concurrent sorting runs.
const lockFileName = ".tagsort.lock"

func newCopySortCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "copy_sort <source> <destination>",
		Short: "Copy audio files into destination/artist/album/title by embedded tags",
		Long: `copy_sort walks the source tree, reads artist/album/title tags from every
recognized audio file, and copies each file to destination/artist/album/title.
Byte-identical files already in place are skipped; distinct files that collide
on name receive a _1, _2, ... suffix in arrival order. Files with missing tags
or unsupported formats are listed in report files instead of being copied.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			source, err := requireDirectory(args[0], "source")
			if err != nil {
				return err
			}
			dest, err := requireDirectory(args[1], "destination")
			if err != nil {
				return err
			}

			sanitize, err := textutil.ForPolicy(cfg.Sort.SanitizePolicy)
			if err != nil {
				return err
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			lock := flock.New(filepath.Join(dest, lockFileName))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire destination lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another tagsort run is active against %s", dest)
			}
			defer func() {
				_ = lock.Unlock()
			}()

			report, runErr := organize.Run(cmd.Context(), organize.Options{
				Source:      source,
				Destination: dest,
				Sanitize:    sanitize,
				Registry:    tags.NewRegistry(),
				Logger:      logger,
			})
			if report == nil {
				return runErr
			}

			out := cmd.OutOrStdout()
			files, reportErr := organize.WriteReports(cfg.Paths.ReportDir, report, cfg.Sort.ReportNaming)
			if reportErr != nil {
				logger.Warn("writing reports failed", logging.Error(reportErr))
			}
			echoFailures(out, report, files)

			recordRun(cmd, cfg.Paths.HistoryDB, logger, report)

			fmt.Fprintln(out, renderTable(
				[]string{"Copied", "Duplicates", "Failures", "Unsupported", "Elapsed"},
				[][]string{{
					fmt.Sprintf("%d", report.Copied),
					fmt.Sprintf("%d", report.Duplicates),
					fmt.Sprintf("%d", len(report.Failures)),
					fmt.Sprintf("%d", len(report.Unsupported)),
					report.FinishedAt.Sub(report.StartedAt).Round(time.Millisecond).String(),
				}},
				[]columnAlignment{alignRight, alignRight, alignRight, alignRight, alignRight},
			))

			if runErr != nil {
				return runErr
			}
			return reportErr
		},
	}
}

func requireDirectory(path, role string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s path: %w", role, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%s folder is not a valid directory: %s", role, abs)
		}
		return "", fmt.Errorf("inspect %s folder: %w", role, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s folder is not a valid directory: %s", role, abs)
	}
	return abs, nil
}

func echoFailures(out io.Writer, report *organize.Report, files organize.ReportFiles) {
	if len(report.Failures) > 0 {
		fmt.Fprintln(out, "\nThe following files failed due to missing or unreadable tags:")
		for _, failure := range report.Failures {
			fmt.Fprintf(out, "%s (%s)\n", failure.Path, failure.Reason)
		}
		if files.Failures != "" {
			fmt.Fprintf(out, "Report written to %s\n", files.Failures)
		}
	}
	if len(report.Unsupported) > 0 {
		fmt.Fprintln(out, "\nThe following files are in formats tagsort does not support yet:")
		for _, path := range report.Unsupported {
			fmt.Fprintln(out, path)
		}
		if files.Unsupported != "" {
			fmt.Fprintf(out, "Report written to %s\n", files.Unsupported)
		}
	}
}

func recordRun(cmd *cobra.Command, dbPath string, logger *slog.Logger, report *organize.Report) {
	if dbPath == "" {
		return
	}
	store, err := runlog.Open(dbPath)
	if err != nil {
		logger.Warn("opening run history failed", logging.Error(err))
		return
	}
	defer store.Close()

	_, err = store.Record(cmd.Context(), runlog.Run{
		Source:      report.Source,
		Destination: report.Destination,
		StartedAt:   report.StartedAt,
		FinishedAt:  report.FinishedAt,
		Copied:      report.Copied,
		Duplicates:  report.Duplicates,
		Failures:    len(report.Failures),
		Unsupported: len(report.Unsupported),
	})
	if err != nil {
		logger.Warn("recording run history failed", logging.Error(err))
	}
}
