package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// logOutput is where both loggers write. The destination can change after the
// loggers are built.
type logOutput struct {
	mu   sync.Mutex
	w    io.Writer
	file *os.File
}

func (o *logOutput) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.w.Write(p)
}

func (o *logOutput) set(w io.Writer, file *os.File) {
	o.mu.Lock()
	previous := o.file
	o.w, o.file = w, file
	o.mu.Unlock()
	if previous != nil && previous != file {
		previous.Close()
	}
}

var output = &logOutput{w: os.Stdout}

// leveledLogger is a JSON logger whose level can change at runtime.
type leveledLogger struct {
	once   sync.Once
	level  slog.LevelVar
	logger *slog.Logger
}

func (l *leveledLogger) get(initial slog.Level, attrs ...any) *slog.Logger {
	l.once.Do(func() {
		l.level.Set(initial)
		handler := slog.NewJSONHandler(output, &slog.HandlerOptions{Level: &l.level})
		l.logger = slog.New(handler).With(attrs...)
	})
	return l.logger
}

var (
	appLogger     leveledLogger
	libraryLogger leveledLogger
)

// SetLogPath tees log output into the file at path, creating parent
// directories. On error logging stays on the current destination.
func SetLogPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return err
	}
	output.set(io.MultiWriter(os.Stdout, f), f)
	return nil
}

// SetLogWriter sends log output to w only.
func SetLogWriter(w io.Writer) {
	output.set(w, nil)
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	return appLogger.get(slog.LevelInfo)
}

// GetInternalLogger returns the logger used by the library itself. It defaults
// to error level so the library stays quiet unless asked.
func GetInternalLogger() *slog.Logger {
	return libraryLogger.get(slog.LevelError, "component", "choreo")
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	appLogger.level.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	GetInternalLogger()
	libraryLogger.level.Set(level)
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(rawLevel string) slog.Level {
	switch strings.ToLower(rawLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLogLevel(rawLevel string) {
	SetLogLevel(ParseLevel(rawLevel))
}

// CloseLogger closes the log file, if any, and logs to stdout again.
func CloseLogger() {
	output.set(os.Stdout, nil)
}
