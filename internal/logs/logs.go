// Package logs builds the command layer's structured logger.
package logs

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	slogmulti "github.com/samber/slog-multi"
)

// New returns a logger that writes text to w and, when logFile is set,
// appends JSON records to that file. The terminal handler logs warnings
// unless verbose is set; the file handler always logs at debug.
// The returned close function releases the log file.
func New(w io.Writer, verbose bool, logFile string) (*slog.Logger, func() error, error) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}),
	}
	closeFn := func() error { return nil }

	if logFile != "" {
		//nolint:gosec // G301: 0755 is appropriate for a user log directory
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			return nil, nil, err
		}
		//nolint:gosec // G302,G304: log file path comes from user config
		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
		closeFn = f.Close
	}

	return slog.New(slogmulti.Fanout(handlers...)), closeFn, nil
}
