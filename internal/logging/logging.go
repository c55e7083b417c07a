// Package logging sets up the application's file-backed loggers: an
// error-only stream and a combined stream, both structured with timestamps.
// The TUI owns the terminal, so nothing is ever written to stdout or stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	slogmulti "github.com/samber/slog-multi"
)

// Open creates (or appends to) the error and combined log files and returns a
// logger that fans every record out to both, filtered by level. The returned
// closer must be called on shutdown.
func Open(errorPath, combinedPath string) (*slog.Logger, io.Closer, error) {
	errorFile, err := os.OpenFile(errorPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", errorPath, err)
	}

	combinedFile, err := os.OpenFile(combinedPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		errorFile.Close()
		return nil, nil, fmt.Errorf("failed to open %s: %w", combinedPath, err)
	}

	handler := slogmulti.Fanout(
		tint.NewHandler(errorFile, &tint.Options{
			Level:   slog.LevelError,
			NoColor: true,
		}),
		tint.NewHandler(combinedFile, &tint.Options{
			Level:   slog.LevelInfo,
			NoColor: true,
		}),
	)

	return slog.New(handler), multiCloser{errorFile, combinedFile}, nil
}

type multiCloser []io.Closer

func (m multiCloser) Close() error {
	var firstErr error
	for _, c := range m {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
