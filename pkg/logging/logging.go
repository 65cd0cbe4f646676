package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects the logger's level, format, and destination.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // json or text
	File   string // rotated log file; empty logs to stderr
	Quiet  bool   // only errors
}

// New builds a logger from opts. The returned closer releases the log file,
// if any, and is always safe to call.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}
	if opts.Quiet {
		level = slog.LevelError
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
		color            = isatty.IsTerminal(os.Stderr.Fd())
	)
	if opts.File != "" {
		logFile := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    15, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		w, closer, color = logFile, logFile, false
	}

	handler, err := newHandler(w, opts.Format, level, color)
	if err != nil {
		closer.Close()
		return nil, nil, err
	}
	return slog.New(handler), closer, nil
}

func newHandler(w io.Writer, format string, level slog.Level, color bool) (slog.Handler, error) {
	switch strings.ToLower(format) {
	case "", "json":
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}), nil
	case "text":
		return tint.NewHandler(w, &tint.Options{
			NoColor:    !color,
			TimeFormat: time.Kitchen,
			Level:      level,
		}), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (want json or text)", format)
	}
}

// ParseLevel maps a level name to its slog level. Empty means info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
