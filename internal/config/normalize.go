package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeSort()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = ExpandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.ReportDir) == "" {
		c.Paths.ReportDir = defaultReportDir()
	}
	if c.Paths.ReportDir, err = ExpandPath(c.Paths.ReportDir); err != nil {
		return fmt.Errorf("paths.report_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.HistoryDB) != "" {
		if c.Paths.HistoryDB, err = ExpandPath(c.Paths.HistoryDB); err != nil {
			return fmt.Errorf("paths.history_db: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeSort() {
	c.Sort.SanitizePolicy = strings.ToLower(strings.TrimSpace(c.Sort.SanitizePolicy))
	if c.Sort.SanitizePolicy == "" {
		c.Sort.SanitizePolicy = defaultSanitizePolicy
	}
	c.Sort.ReportNaming = strings.ToLower(strings.TrimSpace(c.Sort.ReportNaming))
	if c.Sort.ReportNaming == "" {
		c.Sort.ReportNaming = defaultReportNaming
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}

// defaultReportDir resolves the "output" directory beside the executable,
// falling back to the working directory when the executable path is unknown.
func defaultReportDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "output"
	}
	return filepath.Join(filepath.Dir(exe), "output")
}
