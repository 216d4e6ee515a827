package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"ArrowBoard/internal/config"
	"ArrowBoard/internal/snap"
	"ArrowBoard/internal/state"
)

// RunApp opens the board window and blocks until it is closed. The current
// drawing settings and anchors are written back to cfg on exit.
func RunApp(cfg *config.Config) {
	myApp := app.NewWithID("io.arrowboard")
	myWindow := myApp.NewWindow("Arrow Board")
	myWindow.Resize(fyne.NewSize(1024, 768))

	board := NewBoardWidget(state.NewBoard(cfg.Settings, snap.Anchors(cfg.Anchors)))
	toolbar := NewToolbar(board, myWindow, cfg.Export)

	content := container.NewBorder(toolbar, board.statusBar, nil, nil, board)
	myWindow.SetContent(content)

	myWindow.SetOnClosed(func() {
		cfg.Settings = board.Settings()
		cfg.Anchors = board.Anchors()
		if err := cfg.Save(); err != nil {
			log.Printf("[CONFIG] %v", err)
		}
	})
	myWindow.ShowAndRun()
}
