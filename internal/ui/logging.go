package ui

import (
	"fmt"
	"io"
	"os"
)

// Logger is the CLI's leveled logger. Debug output is opt-in via the
// --debug flag; errors go to stderr so they survive piped stdout.
type Logger struct {
	Debug bool
	Out   io.Writer
	Err   io.Writer
}

func NewLogger(debug bool) *Logger {
	return &Logger{Debug: debug, Out: os.Stdout, Err: os.Stderr}
}

func (l *Logger) Debugf(format string, args ...any) {
	if l.Debug {
		fmt.Fprintf(l.Out, "[debug] "+format, args...)
	}
}

func (l *Logger) Infof(format string, args ...any) {
	fmt.Fprintf(l.Out, "[info] "+format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	fmt.Fprintf(l.Err, "[error] "+format, args...)
}
