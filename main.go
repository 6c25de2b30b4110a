package main

import (
	"fmt"
	"log"
	"os"

	"github.com/framegrace/splitpane/tui"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

const (
	leftLabel   = "LEFT TEST"
	rightLabel  = "RIGHT TEST"
	placeholder = "Lorem ipsum dolor sit amet."
)

func main() {
	// Setup logging
	logFile, err := os.OpenFile("splitpane.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		panic(err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.Println("Application starting...")

	if err := run(); err != nil {
		// The screen is already released here, so the message lands on a
		// normal-mode terminal.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		log.Printf("Application exited with error: %v", err)
		os.Exit(1)
	}
	log.Println("Application stopped cleanly.")
}

func run() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal")
	}

	driver, err := tui.NewDriver()
	if err != nil {
		return fmt.Errorf("allocate screen: %w", err)
	}
	screen, err := tui.NewScreen(driver)
	if err != nil {
		return fmt.Errorf("acquire terminal: %w", err)
	}
	defer screen.Close()

	rows, cols := screen.Size()
	layout, err := tui.NewLayout(rows, cols)
	if err != nil {
		screen.Close()
		return err
	}

	left, err := tui.NewWindowRect(layout.Panes[0])
	if err != nil {
		screen.Close()
		return fmt.Errorf("create left pane: %w", err)
	}
	right, err := tui.NewWindowRect(layout.Panes[1])
	if err != nil {
		screen.Close()
		return fmt.Errorf("create right pane: %w", err)
	}

	screen.Print(layout.HeaderRow, 0, fmt.Sprintf("Screen: %d rows, %d cols", rows, cols))
	tui.FillPlaceholder(left, leftLabel, placeholder)
	tui.FillPlaceholder(right, rightLabel, placeholder)
	for _, x := range layout.Dividers {
		screen.VLine(x, 1, rows-1, tcell.RuneVLine)
	}

	// Base screen first, then left, then right.
	screen.Present(left, right)

	screen.WaitKey()
	return nil
}
