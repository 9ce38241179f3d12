// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides logging configuration with a simple
// user-level verbosity gate and colored slog output.
package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity level for user-facing log and print
// output. Messages below this level are not printed. It defaults to
// [slog.LevelInfo], or [slog.LevelDebug] with the build tag "debug",
// or [slog.LevelWarn] with the build tag "release".
var UserLevel = defaultUserLevel

// InitColor installs a colored text [slog.Handler] on the default
// logger, writing to [os.Stderr]. It should be called again after
// running external commands that may reset terminal state.
func InitColor() {
	slog.SetDefault(slog.New(newHandler(os.Stderr)))
}

// handler is a minimal text slog handler that colors level tags
// using termenv and omits timestamps, for clean diagnostic output.
type handler struct {
	mu    *sync.Mutex
	w     io.Writer
	attrs []slog.Attr
	group string
}

func newHandler(w io.Writer) *handler {
	return &handler{mu: &sync.Mutex{}, w: w}
}

func (h *handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= UserLevel
}

func (h *handler) Handle(ctx context.Context, r slog.Record) error {
	b := &strings.Builder{}
	b.WriteString(levelLabel(r.Level))
	b.WriteString(" ")
	b.WriteString(r.Message)
	for _, a := range h.attrs {
		writeAttr(b, h.group, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(b, h.group, a)
		return true
	})
	b.WriteString("\n")
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &nh
}

func (h *handler) WithGroup(name string) slog.Handler {
	nh := *h
	if nh.group != "" {
		nh.group += "."
	}
	nh.group += name
	return &nh
}

func writeAttr(b *strings.Builder, group string, a slog.Attr) {
	b.WriteString(" ")
	if group != "" {
		b.WriteString(group)
		b.WriteString(".")
	}
	b.WriteString(a.Key)
	b.WriteString("=")
	fmt.Fprintf(b, "%v", a.Value.Any())
}

// levelLabel returns the colored label text for the given level.
func levelLabel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return termenv.String("ERROR").Foreground(termenv.ANSIRed).String()
	case level >= slog.LevelWarn:
		return termenv.String("WARN").Foreground(termenv.ANSIYellow).String()
	case level >= slog.LevelInfo:
		return termenv.String("INFO").Foreground(termenv.ANSIBlue).String()
	}
	return termenv.String("DEBUG").Foreground(termenv.ANSIBrightBlack).String()
}
