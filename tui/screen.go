// Copyright © 2025 Splitpane contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/screen.go
// Summary: Screen session lifecycle, base surface drawing, and presentation
// of windows to the physical terminal.

package tui

import (
	"fmt"
	"log"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Screen holds the terminal session and the base cell buffer that windows
// are composited over. Dimensions are read once at acquisition and stay
// fixed for the life of the session; resize events are ignored.
type Screen struct {
	driver        ScreenDriver
	width, height int
	style         tcell.Style
	base          [][]Cell
	closeOnce     sync.Once
}

// NewScreen acquires the terminal through the driver: raw input, no echo and
// special-key decoding all come with the backend init. The caller must
// Close the screen to restore the terminal; Close is safe on every exit
// path because it releases exactly once.
func NewScreen(driver ScreenDriver) (*Screen, error) {
	if err := driver.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	style := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	driver.SetStyle(style)
	driver.HideCursor()

	w, h := driver.Size()
	log.Printf("Screen acquired: %dx%d", w, h)

	return &Screen{
		driver: driver,
		width:  w,
		height: h,
		style:  style,
		base:   makeBuffer(w, h, style),
	}, nil
}

// Size returns the screen dimensions read at acquisition.
func (s *Screen) Size() (rows, cols int) {
	return s.height, s.width
}

// Close releases the terminal session, restoring the previous terminal
// mode. Calling it more than once is a no-op.
func (s *Screen) Close() {
	s.closeOnce.Do(func() {
		s.driver.Fini()
		log.Printf("Screen released")
	})
}

// Print writes text into the base buffer starting at (y, x), advancing by
// rune display width and clipping at the right edge.
func (s *Screen) Print(y, x int, text string) {
	if y < 0 || y >= s.height {
		return
	}
	for _, r := range text {
		if x >= s.width {
			break
		}
		if x >= 0 {
			s.base[y][x] = Cell{Ch: r, Style: s.style}
		}
		x += runewidth.RuneWidth(r)
	}
}

// VLine draws a vertical line of the given glyph into the base buffer at
// column x, rows y0 through y1 inclusive, clipped to the screen.
func (s *Screen) VLine(x, y0, y1 int, ch rune) {
	if x < 0 || x >= s.width {
		return
	}
	for y := y0; y <= y1; y++ {
		if y >= 0 && y < s.height {
			s.base[y][x] = Cell{Ch: ch, Style: s.style}
		}
	}
}

// Present flushes the base buffer to the terminal first, then blits each
// window over it in argument order, then makes the result visible. Later
// windows win where regions coincide, so base-screen decorations under a
// window are covered, as with curses refresh followed by wrefresh.
func (s *Screen) Present(windows ...*Window) {
	for y, row := range s.base {
		for x, cell := range row {
			s.driver.SetContent(x, y, cell.Ch, nil, cell.Style)
		}
	}
	for _, win := range windows {
		s.blit(win)
	}
	s.driver.Show()
}

// blit copies a window's buffer onto the driver at the window's origin,
// clipped to the screen bounds.
func (s *Screen) blit(win *Window) {
	oy, ox := win.Origin()
	for r, row := range win.buf {
		for c, cell := range row {
			absY, absX := oy+r, ox+c
			if absY >= 0 && absY < s.height && absX >= 0 && absX < s.width {
				s.driver.SetContent(absX, absY, cell.Ch, nil, cell.Style)
			}
		}
	}
}

// WaitKey blocks until one key event arrives and returns it. All other
// events, including resizes, are discarded; the layout is fixed for the
// run. Returns nil if the event stream ends.
func (s *Screen) WaitKey() *tcell.EventKey {
	for {
		switch ev := s.driver.PollEvent().(type) {
		case *tcell.EventKey:
			return ev
		case nil:
			return nil
		}
	}
}
