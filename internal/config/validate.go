package config

import "fmt"

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSort(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateSort() error {
	switch c.Sort.SanitizePolicy {
	case "reserved", "legacy":
	default:
		return fmt.Errorf("sort.sanitize_policy must be %q or %q, got %q", "reserved", "legacy", c.Sort.SanitizePolicy)
	}
	switch c.Sort.ReportNaming {
	case "source", "timestamp":
	default:
		return fmt.Errorf("sort.report_naming must be %q or %q, got %q", "source", "timestamp", c.Sort.ReportNaming)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be %q or %q, got %q", "console", "json", c.Logging.Format)
	}
	return nil
}
