// Package log wraps go-logging with one shared, leveled backend so every
// subsystem logs through a named module with a common format.
package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level selects how verbose the shared backend is.
type Level logging.Level

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var format = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000} %{level:.4s} %{module}:%{color:reset} %{message}`,
)

var backend logging.LeveledBackend

// Logger is the leveled logging surface handed to subsystems.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns a logger whose messages carry the given module name.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink redirects all loggers to the given writer. The verbosity resets to
// Notice; call SetLevel after changing the sink to keep a custom level.
func SetSink(sink io.Writer) {
	formatted := logging.NewBackendFormatter(logging.NewLogBackend(sink, "", 0), format)
	backend = logging.AddModuleLevel(formatted)
	backend.SetLevel(logging.NOTICE, "")
	logging.SetBackend(backend)
}

// SetLevel changes the verbosity of every module at once.
func SetLevel(level Level) {
	mapped := logging.NOTICE
	switch level {
	case Debug:
		mapped = logging.DEBUG
	case Info:
		mapped = logging.INFO
	case Warning:
		mapped = logging.WARNING
	case Error:
		mapped = logging.ERROR
	}
	backend.SetLevel(mapped, "")
}

func init() {
	// Renders go to files or the window, diagnostics go to stderr
	SetSink(os.Stderr)
}
