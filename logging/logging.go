// Package logging builds the zerolog logger of the command line.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logging configuration.
type Config struct {
	Level      string
	File       string // File is the path of a rotating log file, empty for none.
	MaxSize    int    // megabytes
	MaxBackups int
	MaxAge     int // days
}

// DefaultConfig returns the default logging configuration: warnings and
// errors to stderr only.
func DefaultConfig() Config {
	return Config{
		Level:      "warn",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     30,
	}
}

// New creates a logger writing to stderr, and to the rotating file if any.
func New(cfg Config) zerolog.Logger {
	return newLogger(os.Stderr, cfg)
}

func newLogger(console io.Writer, cfg Config) zerolog.Logger {
	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.TimeOnly,
		NoColor:    !isTerminal(console),
	}}

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err == nil {
			writers = append(writers, &lumberjack.Logger{
				Filename:   cfg.File,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAge,
				Compress:   true,
			})
		}
	}

	var w io.Writer = writers[0]
	if len(writers) > 1 {
		w = zerolog.MultiLevelWriter(writers...)
	}
	return zerolog.New(w).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
}

// ParseLevel parses a level name. Unknown names are the warn level.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
