package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	mu      sync.RWMutex
	logger  = newDiscardLogger()
	logFile *os.File
)

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Init directs logs to a timestamped file under dir. The terminal belongs
// to the TUI, so stderr is only used when the file cannot be opened.
func Init(dir, level string) error {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	if lvl, err := logrus.ParseLevel(strings.TrimSpace(level)); err == nil {
		l.SetLevel(lvl)
	} else {
		l.SetLevel(logrus.InfoLevel)
	}

	if dir == "" {
		dir = "tmp"
	}
	var openErr error
	if err := os.MkdirAll(dir, 0755); err != nil {
		openErr = fmt.Errorf("failed to create log directory: %w", err)
	} else {
		name := filepath.Join(dir, fmt.Sprintf("cli-%s.log", time.Now().Format("20060102-150405")))
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			openErr = fmt.Errorf("failed to open log file: %w", err)
		} else {
			l.SetOutput(f)
			mu.Lock()
			if logFile != nil {
				logFile.Close()
			}
			logFile = f
			mu.Unlock()
		}
	}
	if openErr != nil {
		l.SetOutput(os.Stderr)
	}

	mu.Lock()
	logger = l
	mu.Unlock()
	return openErr
}

// SetOutput replaces the log destination. Tests use it to capture logs.
func SetOutput(w io.Writer) {
	mu.RLock()
	defer mu.RUnlock()
	logger.SetOutput(w)
}

func current() *logrus.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Log writes a log message
func Log(format string, v ...interface{}) {
	current().Infof(format, v...)
}

// LogError writes an error log message
func LogError(err error, format string, v ...interface{}) {
	current().WithError(err).Errorf(format, v...)
}

// WithFields returns an entry carrying the given structured fields.
func WithFields(fields map[string]interface{}) *logrus.Entry {
	return current().WithFields(logrus.Fields(fields))
}

// CloseLog closes the log file
func CloseLog() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
