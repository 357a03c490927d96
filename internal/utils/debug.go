package utils

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	logPrefix = "debug-"
	logSuffix = ".log"
)

var (
	mu       sync.Mutex
	logsDir  string
	logger   *slog.Logger
	logFile  *os.File
	openOnce sync.Once
)

// ConfigureDebug points debug logging at dir. The log file itself is opened
// lazily by the first Debug or Warn call. Until ConfigureDebug runs,
// log calls are discarded.
func ConfigureDebug(dir string) {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	logger = nil
	logsDir = dir
	openOnce = sync.Once{}
}

func current() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if logsDir == "" {
		return nil
	}

	openOnce.Do(func() {
		if err := os.MkdirAll(logsDir, 0755); err != nil {
			return
		}
		name := logPrefix + time.Now().Format("20060102-150405") + logSuffix
		f, err := os.OpenFile(filepath.Join(logsDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return
		}
		logFile = f
		logger = newLogger(f)
	})
	return logger
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Debug writes a formatted debug line to the log file
func Debug(format string, args ...any) {
	if l := current(); l != nil {
		l.Debug(fmt.Sprintf(format, args...))
	}
}

// Warn writes a formatted warning to the log file
func Warn(format string, args ...any) {
	if l := current(); l != nil {
		l.Warn(fmt.Sprintf(format, args...))
	}
}

// CleanupLogs removes all but the newest keep debug logs in the configured
// directory. File names embed their timestamp, so name order is age order.
func CleanupLogs(keep int) {
	mu.Lock()
	dir := logsDir
	mu.Unlock()

	if dir == "" {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var logs []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), logPrefix) && strings.HasSuffix(e.Name(), logSuffix) {
			logs = append(logs, e.Name())
		}
	}
	if len(logs) <= keep {
		return
	}

	sort.Strings(logs)
	for _, name := range logs[:len(logs)-keep] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			Debug("Failed to remove old log %s: %v", name, err)
		}
	}
}
