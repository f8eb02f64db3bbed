package organize

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tagsort/internal/textutil"
)

// Report naming schemes accepted in configuration.
const (
	NamingSource    = "source"
	NamingTimestamp = "timestamp"
)

// ReportFiles lists the report files produced for one run.
type ReportFiles struct {
	Failures    string
	Unsupported string
}

// WriteReports writes one newline-delimited file per non-empty failure list
// under dir, which is created if absent. With NamingSource the file name is
// derived from the source root's base directory and re-runs overwrite the
// previous report; with NamingTimestamp each run gets a unique stamp.
// Empty lists produce no file.
func WriteReports(dir string, report *Report, naming string) (ReportFiles, error) {
	var files ReportFiles
	if len(report.Failures) == 0 && len(report.Unsupported) == 0 {
		return files, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return files, fmt.Errorf("create report directory: %w", err)
	}

	token, err := reportToken(report, naming)
	if err != nil {
		return files, err
	}

	if len(report.Failures) > 0 {
		paths := make([]string, 0, len(report.Failures))
		for _, failure := range report.Failures {
			paths = append(paths, failure.Path)
		}
		files.Failures = filepath.Join(dir, "failures_"+token+".txt")
		if err := writeList(files.Failures, paths); err != nil {
			return files, err
		}
	}
	if len(report.Unsupported) > 0 {
		files.Unsupported = filepath.Join(dir, "unsupported_"+token+".txt")
		if err := writeList(files.Unsupported, report.Unsupported); err != nil {
			return files, err
		}
	}
	return files, nil
}

func reportToken(report *Report, naming string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(naming)) {
	case "", NamingSource:
		return textutil.SanitizeToken(filepath.Base(report.Source)), nil
	case NamingTimestamp:
		stamp := report.StartedAt
		if stamp.IsZero() {
			stamp = time.Now()
		}
		return stamp.Format("20060102-150405"), nil
	default:
		return "", fmt.Errorf("report naming: unsupported value %q", naming)
	}
}

func writeList(path string, entries []string) error {
	var b strings.Builder
	for _, entry := range entries {
		b.WriteString(entry)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}
