// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sensucli

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Painter wraps text in ANSI colors when enabled.
type Painter struct {
	Enabled bool
}

// NewPainter enables color when w is a terminal and color was not disabled.
func NewPainter(w io.Writer, noColor bool) Painter {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return Painter{}
	}
	f, ok := w.(*os.File)
	return Painter{Enabled: ok && term.IsTerminal(int(f.Fd()))}
}

func (p Painter) wrap(code, s string) string {
	if !p.Enabled {
		return s
	}
	return "\033[" + code + "m" + s + "\033[0m"
}

func (p Painter) Cyan(s string) string  { return p.wrap("36", s) }
func (p Painter) Green(s string) string { return p.wrap("32", s) }
func (p Painter) Red(s string) string   { return p.wrap("31", s) }
