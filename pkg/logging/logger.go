package logging

import (
	"io"
	"os"

	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

// Format is the line layout used by every backend set up here
var Format = logging.MustStringFormatter(
	`%{time:15:04:05.000} [%{module}] [%{shortfunc}] [%{level}] %{message}`,
)

// ParseLevel maps a level name (debug, info, notice, warning, error,
// critical) onto a go-logging level, ignoring case
func ParseLevel(level string) (logging.Level, error) {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		return logging.ERROR, errors.Wrapf(err, "bad log level %q", level)
	}
	return lvl, nil
}

// NewBackend returns a formatted backend writing to out that lets
// through records at or above level
func NewBackend(out io.Writer, level logging.Level) logging.LeveledBackend {
	backend := logging.NewBackendFormatter(logging.NewLogBackend(out, "", 0), Format)
	leveled := logging.AddModuleLevel(backend)
	leveled.SetLevel(level, "")
	return leveled
}

// Setup installs a backend writing to out as the default for every
// package logger
func Setup(out io.Writer, level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	logging.SetBackend(NewBackend(out, lvl))
	return nil
}

// SetupDefault installs a stderr backend at the given level
func SetupDefault(level string) error {
	return Setup(os.Stderr, level)
}

// MustGetLogger returns the named package logger
func MustGetLogger(module string) *logging.Logger {
	return logging.MustGetLogger(module)
}
