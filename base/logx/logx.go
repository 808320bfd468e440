// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides leveled structured logging on top of log/slog
// and terminal color helpers for command output.
package logx

import (
	"io"
	"log/slog"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through the -v / -vv / -q flags of a command. It defaults
// to [slog.LevelInfo] (or [slog.LevelDebug] with the debug build tag).
var UserLevel = defaultUserLevel

// UserLevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - default: [slog.LevelWarn]
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func UserLevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// SetDefault installs a text [slog.Handler] writing to w at [UserLevel]
// as the default logger, and returns it.
func SetDefault(w io.Writer) *slog.Logger {
	lg := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: UserLevel}))
	slog.SetDefault(lg)
	return lg
}

// UseColor is whether to use color in the output of
// the color helpers. It is on by default, and the colors
// degrade to plain text on terminals without color support.
var UseColor = true

var profile = termenv.EnvColorProfile()

func colorize(hex, str string) string {
	if !UseColor {
		return str
	}
	return termenv.String(str).Foreground(profile.Color(hex)).String()
}

// SuccessColor returns the given string colored as a success message.
func SuccessColor(str string) string {
	return colorize("#00c853", str)
}

// CmdColor returns the given string colored as a command or file name.
func CmdColor(str string) string {
	return colorize("#2979ff", str)
}

// ErrorColor returns the given string colored as an error message.
func ErrorColor(str string) string {
	return colorize("#ff1744", str)
}

// LevelColor returns the given string colored according to the given level.
func LevelColor(level slog.Level, str string) string {
	switch {
	case level >= slog.LevelError:
		return ErrorColor(str)
	case level >= slog.LevelWarn:
		return colorize("#ffab00", str)
	case level >= slog.LevelInfo:
		return SuccessColor(str)
	default:
		return str
	}
}
