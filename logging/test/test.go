// Copyright 2026 The Unicycler Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package test provides a logging.Logger implementation that buffers
// lines for assertions in tests.
package test

import (
	"sync"
)

// Entry is one buffered log line.
type Entry struct {
	Verbosity int
	Message   string
}

// Logger buffers every logged line together with its verbosity.
type Logger struct {
	verbosity int
	entries   []Entry
	mtx       sync.Mutex
}

// New returns a buffering logger with active verbosity 1.
func New() *Logger {
	return &Logger{verbosity: 1}
}

// SetVerbosity sets the active verbosity used by Displayed.
func (l *Logger) SetVerbosity(verbosity int) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	l.verbosity = verbosity
}

// Log buffers msg.
func (l *Logger) Log(msg string, verbosity int) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	l.entries = append(l.entries, Entry{Verbosity: verbosity, Message: msg})
}

// Entries returns every buffered line.
func (l *Logger) Entries() []Entry {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return append([]Entry(nil), l.entries...)
}

// Displayed returns the messages the active verbosity would show.
func (l *Logger) Displayed() []string {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	var out []string
	for _, e := range l.entries {
		if e.Verbosity <= l.verbosity {
			out = append(out, e.Message)
		}
	}
	return out
}
