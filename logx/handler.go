// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// NewHandler returns a text [slog.Handler] writing to w that filters
// on [UserLevel] and colors the level names when w is a terminal.
// Timestamps are omitted.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: userLeveler{},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				lv, ok := a.Value.Any().(slog.Level)
				if !ok {
					return a
				}
				a.Value = slog.StringValue(out.String(lv.String()).Foreground(LevelColor(lv)).String())
			}
			return a
		},
	})
}

// LevelColor returns the terminal color used for the given level.
func LevelColor(lv slog.Level) termenv.Color {
	switch {
	case lv >= slog.LevelError:
		return termenv.ANSIRed
	case lv >= slog.LevelWarn:
		return termenv.ANSIYellow
	case lv >= slog.LevelInfo:
		return termenv.ANSIGreen
	default:
		return termenv.ANSIBrightBlack
	}
}

// SetDefaultLogger sets the default logger to one writing
// to [os.Stderr] through [NewHandler].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}
