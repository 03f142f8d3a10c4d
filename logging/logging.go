// Copyright 2026 The Unicycler Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package logging provides the verbosity-gated output sink used by all
// terminal rendering. Lines are logged with a verbosity value; the sink
// displays a line iff the active verbosity is at least that value.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jonathanbader/unicycler/style"
)

// Verbosity levels. Anything above Debug is treated as Debug.
const (
	Quiet   = 0
	Normal  = 1
	Verbose = 2
	Debug   = 3
)

// Logger is the interface rendering code writes through.
type Logger interface {
	Log(msg string, verbosity int)
}

// StandardLogger is the default Logger implementation. It writes plain
// message lines through logrus, mapping verbosity values onto logrus
// levels so that the usual level machinery performs the gating.
type StandardLogger struct {
	logger    *logrus.Logger
	verbosity int
}

// New returns a logger at Normal verbosity writing to stdout.
func New() *StandardLogger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&plainFormatter{})
	s := &StandardLogger{logger: l}
	s.SetVerbosity(Normal)
	return s
}

// SetOutput sets the destination for displayed lines.
func (l *StandardLogger) SetOutput(w io.Writer) {
	l.logger.SetOutput(w)
}

// SetVerbosity sets the active verbosity. Lines logged with a verbosity
// above this value are discarded.
func (l *StandardLogger) SetVerbosity(verbosity int) {
	l.verbosity = verbosity
	l.logger.SetLevel(levelForVerbosity(verbosity))
}

// Verbosity returns the active verbosity.
func (l *StandardLogger) Verbosity() int {
	return l.verbosity
}

// Log displays msg when the active verbosity is >= verbosity.
func (l *StandardLogger) Log(msg string, verbosity int) {
	l.logger.Log(levelForVerbosity(verbosity), msg)
}

// SectionHeader logs a blank line followed by a bold underlined heading
// and a dimmed timestamp.
func (l *StandardLogger) SectionHeader(heading string, verbosity int) {
	l.Log("", verbosity)
	l.Log(style.BoldUnderline(heading)+" "+DimTimestamp(), verbosity)
}

// LogToFile mirrors every displayed line to w with escape sequences
// stripped, so log files stay plain text.
func (l *StandardLogger) LogToFile(w io.Writer) {
	l.logger.AddHook(&stripHook{w: w})
}

func levelForVerbosity(verbosity int) logrus.Level {
	switch {
	case verbosity <= Quiet:
		return logrus.ErrorLevel
	case verbosity == Normal:
		return logrus.InfoLevel
	case verbosity == Verbose:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}

// plainFormatter emits the bare message. Table and banner lines carry
// their own formatting, so the usual logrus prefixes would corrupt the
// layout.
type plainFormatter struct{}

func (*plainFormatter) Format(e *logrus.Entry) ([]byte, error) {
	return append([]byte(e.Message), '\n'), nil
}

type stripHook struct {
	w io.Writer
}

func (*stripHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *stripHook) Fire(e *logrus.Entry) error {
	_, err := io.WriteString(h.w, style.Strip(e.Message)+"\n")
	return err
}

// Timestamp returns the current time formatted for banner lines.
func Timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05")
}

// DimTimestamp returns a dimmed, parenthesized timestamp.
func DimTimestamp() string {
	return style.Dim("(" + Timestamp() + ")")
}
