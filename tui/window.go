// Copyright © 2025 Splitpane contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/window.go
// Summary: Window capability: an independently addressable sub-region of the
// screen with its own cell buffer and cursor.
// Usage: Windows are drawn into off-screen and copied to the terminal by
// Screen.Present.

package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Window is a rectangular sub-region of the screen. All writes land in its
// in-memory buffer; nothing reaches the terminal until the screen presents
// the window.
type Window struct {
	x, y, w, h int
	cx, cy     int
	style      tcell.Style
	buf        [][]Cell
}

// NewWindow creates a window of the given size with its origin at screen
// position (y, x). Argument order follows the curses newwin convention.
func NewWindow(h, w, y, x int) (*Window, error) {
	if h < 1 || w < 1 {
		return nil, fmt.Errorf("window at (%d,%d): size %dx%d must be positive", y, x, h, w)
	}
	style := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	return &Window{
		x:     x,
		y:     y,
		w:     w,
		h:     h,
		style: style,
		buf:   makeBuffer(w, h, style),
	}, nil
}

// NewWindowRect creates a window covering the given screen rectangle.
func NewWindowRect(r Rect) (*Window, error) {
	return NewWindow(r.H, r.W, r.Y, r.X)
}

// Width returns the window width in cells.
func (w *Window) Width() int { return w.w }

// Height returns the window height in cells.
func (w *Window) Height() int { return w.h }

// Origin returns the window's top-left position on the screen.
func (w *Window) Origin() (y, x int) { return w.y, w.x }

// MoveTo places the window cursor at the given window-relative position.
func (w *Window) MoveTo(y, x int) {
	w.cy, w.cx = y, x
}

// SetCell writes a single cell at a window-relative position. Writes outside
// the window are dropped.
func (w *Window) SetCell(y, x int, ch rune, style tcell.Style) {
	if y < 0 || y >= w.h || x < 0 || x >= w.w {
		return
	}
	w.buf[y][x] = Cell{Ch: ch, Style: style}
}

// Print writes text starting at a window-relative position, advancing by
// rune display width. Text past the right edge is clipped by the cell grid;
// there is no wrapping. The cursor is left after the last rune written.
func (w *Window) Print(y, x int, text string) {
	if y < 0 || y >= w.h {
		return
	}
	for _, r := range text {
		if x >= w.w {
			break
		}
		if x >= 0 {
			w.buf[y][x] = Cell{Ch: r, Style: w.style}
		}
		x += runewidth.RuneWidth(r)
	}
	w.cy, w.cx = y, x
}

// FillPlaceholder writes a label on the window's first row, then repeats one
// placeholder line per remaining row until the window height is exhausted. A
// one-row window shows only the label.
func FillPlaceholder(w *Window, label, text string) {
	w.Print(0, 0, label)
	for y := 1; y < w.h; y++ {
		w.Print(y, 0, text)
	}
}
