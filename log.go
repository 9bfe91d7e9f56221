package easel

import (
	"fmt"
	"io"
	"os"
)

// Logger receives diagnostics. component names the subsystem ("locator",
// "canvas", "debug", ...).
type Logger interface {
	Infof(component, format string, args ...any)
	Errorf(component, format string, args ...any)
}

// NoopLogger discards everything.
type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...any)  {}
func (NoopLogger) Errorf(component, format string, args ...any) {}

// WriterLogger writes one "[easel] component: message" line per call.
type WriterLogger struct {
	W io.Writer
}

// StderrLogger returns the default logger.
func StderrLogger() WriterLogger {
	return WriterLogger{W: os.Stderr}
}

func (l WriterLogger) Infof(component, format string, args ...any) {
	_, _ = fmt.Fprintf(l.W, "[easel] %s: %s\n", component, fmt.Sprintf(format, args...))
}

func (l WriterLogger) Errorf(component, format string, args ...any) {
	_, _ = fmt.Fprintf(l.W, "[easel] %s: error: %s\n", component, fmt.Sprintf(format, args...))
}
