// Copyright © 2025 Splitpane contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/window_test.go
// Summary: Exercises window buffer writes, clipping and placeholder fill.
// Usage: Executed during `go test` to guard against regressions.

package tui

import "testing"

func TestNewWindowRejectsDegenerateSize(t *testing.T) {
	cases := [][4]int{{0, 10, 1, 0}, {10, 0, 1, 0}, {-1, 10, 1, 0}, {10, -1, 1, 0}}
	for _, c := range cases {
		if _, err := NewWindow(c[0], c[1], c[2], c[3]); err == nil {
			t.Fatalf("expected error for %dx%d window", c[0], c[1])
		}
	}
}

func TestWindowPrintClipsAtRightEdge(t *testing.T) {
	w, err := NewWindow(1, 5, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w.Print(0, 0, "abcdefgh")
	got := string([]rune{w.buf[0][0].Ch, w.buf[0][1].Ch, w.buf[0][2].Ch, w.buf[0][3].Ch, w.buf[0][4].Ch})
	if got != "abcde" {
		t.Fatalf("expected clipped text %q, got %q", "abcde", got)
	}
}

func TestWindowPrintIgnoresOutOfRangeRow(t *testing.T) {
	w, err := NewWindow(2, 10, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w.Print(5, 0, "nope")
	w.Print(-1, 0, "nope")
	for y := range w.buf {
		for x := range w.buf[y] {
			if w.buf[y][x].Ch != ' ' {
				t.Fatalf("cell (%d,%d) written by out-of-range print", y, x)
			}
		}
	}
}

func TestWindowPrintAdvancesByRuneWidth(t *testing.T) {
	w, err := NewWindow(1, 6, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w.Print(0, 0, "日a")
	if w.buf[0][0].Ch != '日' {
		t.Fatalf("expected wide rune at column 0, got %q", w.buf[0][0].Ch)
	}
	if w.buf[0][1].Ch != ' ' {
		t.Fatalf("expected shadow cell at column 1, got %q", w.buf[0][1].Ch)
	}
	if w.buf[0][2].Ch != 'a' {
		t.Fatalf("expected 'a' at column 2, got %q", w.buf[0][2].Ch)
	}
}

func TestFillPlaceholder(t *testing.T) {
	w, err := NewWindow(4, 30, 1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	FillPlaceholder(w, "LEFT TEST", "Lorem ipsum dolor sit amet.")

	if got := rowString(w, 0, 9); got != "LEFT TEST" {
		t.Fatalf("expected label on row 0, got %q", got)
	}
	for y := 1; y < 4; y++ {
		if got := rowString(w, y, 27); got != "Lorem ipsum dolor sit amet." {
			t.Fatalf("expected placeholder on row %d, got %q", y, got)
		}
	}
}

func TestFillPlaceholderLabelOnlyWhenOneRow(t *testing.T) {
	w, err := NewWindow(1, 30, 1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	FillPlaceholder(w, "LEFT TEST", "Lorem ipsum dolor sit amet.")
	if got := rowString(w, 0, 9); got != "LEFT TEST" {
		t.Fatalf("expected label on the single row, got %q", got)
	}
}

func rowString(w *Window, y, n int) string {
	runes := make([]rune, 0, n)
	for x := 0; x < n; x++ {
		runes = append(runes, w.buf[y][x].Ch)
	}
	return string(runes)
}
