package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/grovetools/sticky/config"
	"github.com/grovetools/sticky/util/pathutil"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
)

// NewLogger returns the logger for component, creating it on first use from
// the `logging` section of the nearest sticky.yml. Components share nothing
// but the stderr sink.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if entry, ok := loggers[component]; ok {
		return entry
	}

	var logCfg Config
	if cfg, err := config.LoadDefault(); err == nil {
		if err := cfg.UnmarshalExtension("logging", &logCfg); err != nil {
			logrus.Warnf("Failed to parse 'logging' config: %v", err)
		}
	}

	entry := newLogger(component, logCfg).WithField("component", component)
	loggers[component] = entry
	return entry
}

func newLogger(component string, logCfg Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(levelFor(logCfg))
	logger.SetReportCaller(os.Getenv("STICKY_LOG_CALLER") == "true" || logCfg.ReportCaller)
	logger.SetFormatter(formatterFor(logCfg.Format))

	var sinks []io.Writer
	if f := openFileSink(logger, logCfg.File); f != nil {
		sinks = append(sinks, f)
	}
	if shouldLogToStderr(logCfg.Format.StructuredToStderr, logger.GetLevel()) {
		sinks = append(sinks, GetGlobalOutput())
	}

	switch len(sinks) {
	case 0:
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(sinks[0])
	default:
		logger.SetOutput(io.MultiWriter(sinks...))
	}
	return logger
}

func levelFor(logCfg Config) logrus.Level {
	name := os.Getenv("STICKY_LOG_LEVEL")
	if name == "" {
		name = logCfg.Level
	}
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func formatterFor(format FormatConfig) logrus.Formatter {
	switch format.Preset {
	case "json":
		return &logrus.JSONFormatter{}
	case "simple":
		return &TextFormatter{Config: FormatConfig{DisableTimestamp: true, DisableComponent: true}}
	default:
		return &TextFormatter{Config: format}
	}
}

// openFileSink returns nil when the sink is disabled or cannot be opened;
// the failure is logged to whatever other sinks exist.
func openFileSink(logger *logrus.Logger, sink FileSinkConfig) io.Writer {
	if !sink.Enabled || sink.Path == "" {
		return nil
	}
	path, err := pathutil.Expand(sink.Path)
	if err != nil {
		logger.Warnf("Invalid log file path %s: %v", sink.Path, err)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		logger.Warnf("Failed to create log directory for %s: %v", path, err)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logger.Warnf("Failed to open log file %s: %v", path, err)
		return nil
	}
	return f
}

func shouldLogToStderr(mode string, level logrus.Level) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("STICKY_DEBUG") == "1" || level >= logrus.DebugLevel {
		return true
	}
	fd := os.Stderr.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}
