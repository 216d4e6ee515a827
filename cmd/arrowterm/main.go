// Command arrowterm draws arrows in a terminal with the mouse.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"ArrowBoard/internal/config"
	"ArrowBoard/internal/snap"
	"ArrowBoard/internal/state"
	"ArrowBoard/internal/term"
)

func main() {
	configPath := flag.String("config", config.DefaultPath(), "configuration file")
	exportDir := flag.String("out", ".", "directory for exported files")
	logFile := flag.String("log", "", "write log output to this file")
	flag.Parse()

	// The screen owns the terminal, so logs go to a file or nowhere.
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.Clear()

	board := state.NewBoard(cfg.Settings, snap.Anchors(cfg.Anchors))
	term.New(screen, board, *exportDir, cfg.Export).Run()
	screen.Fini()

	cfg.Settings = board.Settings
	cfg.Anchors = board.Anchors()
	if err := cfg.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
	}
}
