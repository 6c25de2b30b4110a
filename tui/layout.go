// Copyright © 2025 Splitpane contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/layout.go
// Summary: Geometry for the fixed split layout: header row, side-by-side
// panes, and the divider columns between them.

package tui

import "fmt"

// Rect is an absolute cell rectangle on the screen.
type Rect struct {
	X, Y, W, H int
}

// Layout describes the screen arrangement for one run: row 0 reserved for
// the header text, the rest of the screen tiled into side-by-side panes with
// a one-column divider to the left of every pane but the first.
type Layout struct {
	Rows, Cols int
	HeaderRow  int
	Panes      []Rect
	Dividers   []int
}

// SplitColumns tiles a region into n columns of equal width. Every column
// gets floor(W/n) cells; a remainder is left unused at the right edge rather
// than redistributed. The returned divider columns sit at each column origin
// minus one, so the two-pane case puts the divider on the last column of the
// left pane, matching the classic curses layout this reproduces.
func SplitColumns(region Rect, n int) ([]Rect, []int) {
	w := region.W / n
	panes := make([]Rect, n)
	dividers := make([]int, 0, n-1)
	for i := range panes {
		panes[i] = Rect{X: region.X + i*w, Y: region.Y, W: w, H: region.H}
		if i > 0 {
			dividers = append(dividers, region.X+i*w-1)
		}
	}
	return panes, dividers
}

// NewLayout computes the fixed two-pane layout for a screen of the given
// size. Fails when the screen cannot hold a header row plus at least one
// cell per pane.
func NewLayout(rows, cols int) (*Layout, error) {
	if rows < 2 || cols < 2 {
		return nil, fmt.Errorf("terminal too small for a split layout: %d rows, %d cols", rows, cols)
	}
	panes, dividers := SplitColumns(Rect{X: 0, Y: 1, W: cols, H: rows - 1}, 2)
	return &Layout{
		Rows:      rows,
		Cols:      cols,
		HeaderRow: 0,
		Panes:     panes,
		Dividers:  dividers,
	}, nil
}
