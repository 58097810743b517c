// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewCommandLogger creates a structured logger on stderr. When stderr
// is a terminal, it uses slog.TextHandler for human-readable output;
// when piped or redirected it uses slog.JSONHandler.
func NewCommandLogger(level slog.Level) *slog.Logger {
	return newLogger(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())), level)
}

func newLogger(w io.Writer, terminal bool, level slog.Level) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if terminal {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}
	return slog.New(handler)
}

// Verbosity is an embeddable params struct adding --verbose.
type Verbosity struct {
	Verbose bool `json:"-" flag:"verbose,v" desc:"log adapter diagnostics at debug level"`
}

// Logger returns a debug-level command logger when --verbose is set
// and logger otherwise.
func (v *Verbosity) Logger(logger *slog.Logger) *slog.Logger {
	if !v.Verbose {
		return logger
	}
	return NewCommandLogger(slog.LevelDebug)
}
