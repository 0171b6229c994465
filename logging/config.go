package logging

// Config is the `logging` extension section of sticky.yml:
//
//	logging:
//	  level: debug
//	  file: {enabled: true, path: ~/.local/state/sticky/sticky.log}
//	  format: {preset: simple, structured_to_stderr: never}
//
// STICKY_LOG_LEVEL and STICKY_LOG_CALLER=true take precedence over level and
// report_caller.
type Config struct {
	Level        string         `yaml:"level"`
	ReportCaller bool           `yaml:"report_caller"`
	File         FileSinkConfig `yaml:"file"`
	Format       FormatConfig   `yaml:"format"`
}

// FileSinkConfig appends log lines to Path. While the viewer owns the
// terminal this is the only place logs can go.
type FileSinkConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// FormatConfig selects the line format and when stderr is written.
type FormatConfig struct {
	// Preset is "default", "simple" (no timestamp or component) or "json".
	Preset           string `yaml:"preset"`
	DisableTimestamp bool   `yaml:"disable_timestamp"`
	DisableComponent bool   `yaml:"disable_component"`
	// StructuredToStderr is "auto", "always" or "never". Auto writes to
	// stderr only when it is not a terminal or the level is debug or lower.
	StructuredToStderr string `yaml:"structured_to_stderr"`
}
