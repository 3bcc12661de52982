package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// DefaultLogPath returns the log file location under the XDG data directory.
// The terminal owns stdout while the editor runs, so logs go to a file.
var DefaultLogPath = func() string {
	return filepath.Join(xdg.DataHome, "zorinpad", "zorinpad.log")
}

// NewFileLogger creates a logger that writes to a file
func NewFileLogger(path string) (*Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})

	cleanup := func() {
		f.Close()
	}

	return &Logger{Logger: l}, cleanup, nil
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// FileOpened logs a successful document load
func (l *Logger) FileOpened(path string, markup bool) {
	l.Info("file opened",
		"path", path,
		"markup", markup)
}

// FileSaved logs a successful document save
func (l *Logger) FileSaved(path string) {
	l.Info("file saved",
		"path", path)
}

// FileError logs a failed load or save
func (l *Logger) FileError(op, path string, err error) {
	l.Error("file error",
		"op", op,
		"path", path,
		"error", err)
}

// PrefsSaveFailed logs a best-effort preferences write that didn't make it.
// Preference loss is an accepted degradation; this is the only trace of it.
func (l *Logger) PrefsSaveFailed(err error) {
	l.Warn("preferences not saved",
		"error", err)
}

// ConverterDetected logs the startup probe result
func (l *Logger) ConverterDetected(version string) {
	l.Debug("pandoc detected",
		"version", version)
}

// ConverterMissing logs that converter-gated formats are disabled
func (l *Logger) ConverterMissing() {
	l.Debug("pandoc unavailable, RTF/DOCX/ODT disabled")
}

// ExternalChange logs that an open file was modified outside the editor
func (l *Logger) ExternalChange(path string) {
	l.Warn("file changed on disk",
		"path", path)
}
