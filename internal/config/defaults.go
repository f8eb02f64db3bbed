package config

const (
	defaultLogDir         = "~/.local/share/tagsort/logs"
	defaultHistoryDB      = "~/.local/share/tagsort/history.db"
	defaultSanitizePolicy = "reserved"
	defaultReportNaming   = "source"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ReportDir: "",
			LogDir:    defaultLogDir,
			HistoryDB: defaultHistoryDB,
		},
		Sort: Sort{
			SanitizePolicy: defaultSanitizePolicy,
			ReportNaming:   defaultReportNaming,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
