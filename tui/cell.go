// Copyright © 2025 Splitpane contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/cell.go
// Summary: Cell type and buffer helpers shared by the screen and windows.

package tui

import "github.com/gdamore/tcell/v2"

// Cell represents a single character cell on the terminal screen,
// with a character and its tcell style.
type Cell struct {
	Ch    rune
	Style tcell.Style
}

// makeBuffer creates a 2D cell buffer filled with blanks in the given style.
func makeBuffer(w, h int, style tcell.Style) [][]Cell {
	buf := make([][]Cell, h)
	for i := range buf {
		buf[i] = make([]Cell, w)
		for j := range buf[i] {
			buf[i][j] = Cell{Ch: ' ', Style: style}
		}
	}
	return buf
}
