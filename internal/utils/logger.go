package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// RunLogger writes leveled progress lines for a sitemap run to stdout and,
// optionally, to a log file.
type RunLogger struct {
	file   *os.File
	logger *log.Logger
	debug  bool
}

// NewRunLogger logs to stdout, and also appends to logPath when it is set.
func NewRunLogger(logPath string, debug bool) (*RunLogger, error) {
	if logPath == "" {
		return NewWriterLogger(os.Stdout, debug), nil
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	// Create multi-writer for both file and stdout
	l := NewWriterLogger(io.MultiWriter(os.Stdout, file), debug)
	l.file = file
	return l, nil
}

// NewWriterLogger logs to w only.
func NewWriterLogger(w io.Writer, debug bool) *RunLogger {
	return &RunLogger{
		logger: log.New(w, "", log.Ldate|log.Ltime),
		debug:  debug,
	}
}

func (rl *RunLogger) LogInfo(format string, v ...interface{}) {
	rl.log("INFO", format, v...)
}

func (rl *RunLogger) LogError(format string, v ...interface{}) {
	rl.log("ERROR", format, v...)
}

func (rl *RunLogger) LogDebug(format string, v ...interface{}) {
	if !rl.debug {
		return
	}
	rl.log("DEBUG", format, v...)
}

func (rl *RunLogger) log(level string, format string, v ...interface{}) {
	message := fmt.Sprintf(format, v...)
	rl.logger.Printf("[%s] %s", level, message)
}

func (rl *RunLogger) Close() error {
	if rl.file == nil {
		return nil
	}
	return rl.file.Close()
}
