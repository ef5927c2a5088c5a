package logx

import (
	"io"
	"log"
)

// Logger prints messages only when verbose output is enabled.
type Logger struct {
	verbose bool
	l       *log.Logger
}

// New builds a Logger writing to w, active only when verbose is true.
func New(w io.Writer, verbose bool) *Logger {
	return &Logger{
		verbose: verbose,
		l:       log.New(w, "", log.LstdFlags),
	}
}

// Verbose reports whether this Logger prints anything.
func (lg *Logger) Verbose() bool { return lg.verbose }

// Printf prints a formatted message, if verbose.
func (lg *Logger) Printf(format string, args ...any) {
	if lg.verbose {
		lg.l.Printf(format, args...)
	}
}

// Println prints its arguments space-separated, if verbose.
func (lg *Logger) Println(args ...any) {
	if lg.verbose {
		lg.l.Println(args...)
	}
}
