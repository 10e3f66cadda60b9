// Package logging sets up the application log file. The TUI owns
// stdout, so all diagnostics go to a timestamped file under the data
// directory.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Setup creates a new timestamped log file under dir, prunes old
// files beyond maxFiles, and returns a JSON slog logger writing to it.
// The caller must close the returned file.
func Setup(dir string, maxFiles int) (*slog.Logger, *os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}

	filename := filepath.Join(dir, fmt.Sprintf("tracker-%s.log",
		time.Now().Format("2006-01-02T15-04-05")))

	f, err := os.Create(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("creating log file: %w", err)
	}

	if err := cleanupOldLogs(dir, maxFiles); err != nil {
		// Pruning failures don't block logging itself.
		fmt.Fprintf(os.Stderr, "warning: failed to cleanup old logs: %v\n", err)
	}

	logger := slog.New(slog.NewJSONHandler(f, nil))
	return logger, f, nil
}

// cleanupOldLogs removes the oldest log files when the count exceeds
// maxFiles.
func cleanupOldLogs(dir string, maxFiles int) error {
	pattern := filepath.Join(dir, "tracker-*.log")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return err
	}

	if len(files) <= maxFiles {
		return nil
	}

	// The timestamp format sorts chronologically.
	sort.Strings(files)

	for i := 0; i < len(files)-maxFiles; i++ {
		if err := os.Remove(files[i]); err != nil {
			return fmt.Errorf("removing %s: %w", files[i], err)
		}
	}

	return nil
}
