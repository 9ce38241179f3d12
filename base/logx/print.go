// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"fmt"
	"log/slog"
	"os"
)

// PrintlnError prints the given arguments to [os.Stderr]
// if [UserLevel] is at or below [slog.LevelError].
func PrintlnError(a ...any) {
	if UserLevel <= slog.LevelError {
		fmt.Fprintln(os.Stderr, a...)
	}
}

// PrintlnWarn prints the given arguments to [os.Stderr]
// if [UserLevel] is at or below [slog.LevelWarn].
func PrintlnWarn(a ...any) {
	if UserLevel <= slog.LevelWarn {
		fmt.Fprintln(os.Stderr, a...)
	}
}

// PrintlnInfo prints the given arguments to [os.Stdout]
// if [UserLevel] is at or below [slog.LevelInfo].
func PrintlnInfo(a ...any) {
	if UserLevel <= slog.LevelInfo {
		fmt.Fprintln(os.Stdout, a...)
	}
}

// PrintlnDebug prints the given arguments to [os.Stdout]
// if [UserLevel] is at or below [slog.LevelDebug].
func PrintlnDebug(a ...any) {
	if UserLevel <= slog.LevelDebug {
		fmt.Fprintln(os.Stdout, a...)
	}
}

// PrintfError prints the given formatted message to [os.Stderr]
// if [UserLevel] is at or below [slog.LevelError].
func PrintfError(format string, a ...any) {
	if UserLevel <= slog.LevelError {
		fmt.Fprintf(os.Stderr, format, a...)
	}
}

// PrintfWarn prints the given formatted message to [os.Stderr]
// if [UserLevel] is at or below [slog.LevelWarn].
func PrintfWarn(format string, a ...any) {
	if UserLevel <= slog.LevelWarn {
		fmt.Fprintf(os.Stderr, format, a...)
	}
}

// PrintfInfo prints the given formatted message to [os.Stdout]
// if [UserLevel] is at or below [slog.LevelInfo].
func PrintfInfo(format string, a ...any) {
	if UserLevel <= slog.LevelInfo {
		fmt.Fprintf(os.Stdout, format, a...)
	}
}

// PrintfDebug prints the given formatted message to [os.Stdout]
// if [UserLevel] is at or below [slog.LevelDebug].
func PrintfDebug(format string, a ...any) {
	if UserLevel <= slog.LevelDebug {
		fmt.Fprintf(os.Stdout, format, a...)
	}
}
