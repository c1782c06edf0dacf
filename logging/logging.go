package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// New builds a logfmt logger on w that drops records below lvl.
func New(w io.Writer, lvl string) (log.Logger, error) {
	option, err := levelOption(lvl)
	if err != nil {
		return nil, err
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, option)
	// The context goes outermost so caller resolves past level.X(logger).
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller), nil
}

// Open builds a logger writing to path, or to stderr when path is empty.
// The returned closer must be called on shutdown.
func Open(path, lvl string) (log.Logger, io.Closer, error) {
	if path == "" {
		logger, err := New(os.Stderr, lvl)
		return logger, nopCloser{}, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger, err := New(f, lvl)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}

func levelOption(lvl string) (level.Option, error) {
	switch strings.ToLower(lvl) {
	case "debug":
		return level.AllowDebug(), nil
	case "", "info":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	case "none":
		return level.AllowNone(), nil
	default:
		return nil, fmt.Errorf("unknown log level %q", lvl)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
