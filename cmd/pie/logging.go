package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	slogmulti "github.com/samber/slog-multi"
)

// logSetup owns the resources opened for logging.
type logSetup struct {
	level *slog.LevelVar
	file  *os.File
}

// setupLogging installs the default logger: text on stderr, plus JSON on
// logFile when it is not empty.
func setupLogging(stderr io.Writer, level string, logFile string) (*logSetup, error) {
	ret := &logSetup{level: new(slog.LevelVar)}
	if err := ret.level.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}

	opts := &slog.HandlerOptions{Level: ret.level}
	handlers := []slog.Handler{
		slog.NewTextHandler(stderr, opts),
	}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, errors.Wrapf(err, "opening log file %s", logFile)
		}
		ret.file = f
		handlers = append(handlers, slog.NewJSONHandler(f, opts))
	}

	slog.SetDefault(slog.New(slogmulti.Fanout(handlers...)))
	return ret, nil
}

// Close closes the log file, if any.
func (l *logSetup) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return errors.Wrap(err, "closing log file")
}
