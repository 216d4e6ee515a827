// Package term runs the arrow board in a terminal: drag with the left
// button to draw, right click to place an anchor.
package term

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"ArrowBoard/internal/export"
	"ArrowBoard/internal/geom"
	"ArrowBoard/internal/render"
	"ArrowBoard/internal/snap"
	"ArrowBoard/internal/state"
)

const helpText = "drag:draw  right:anchor  u:undo  c:clear  a:no anchors  s:snap  +/-:simplify  p:pdf  e:png  q:quit"

var (
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleAnchor = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// anchorLabels name anchors in the order they are placed.
var anchorLabels = []string{"C", "G", "Am", "F", "D", "Em", "A", "E", "Dm", "Bm"}

// App is the terminal board.
type App struct {
	screen     tcell.Screen
	board      *state.Board
	anchors    snap.Anchors
	exportDir  string
	exportOpts export.Options
	buttons    tcell.ButtonMask
	status     string
}

// New creates the terminal board on an initialized screen. Exports are
// written to exportDir.
func New(screen tcell.Screen, board *state.Board, exportDir string, opts export.Options) *App {
	a := &App{
		screen:     screen,
		board:      board,
		anchors:    append(snap.Anchors(nil), board.Anchors()...),
		exportDir:  exportDir,
		exportOpts: opts,
		status:     helpText,
	}
	a.board.SetAnchors(a.anchors)
	return a
}

// Run processes events until the user quits.
func (a *App) Run() {
	for {
		a.Draw()
		if a.HandleEvent(a.screen.PollEvent()) {
			return
		}
	}
}

// HandleEvent applies a single event and reports whether to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case nil:
		return true
	}
	return false
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}

	switch ev.Rune() {
	case 'q':
		return true
	case 'u':
		if _, ok := a.board.RemoveLastArrow(); ok {
			a.status = "Removed last arrow"
		} else {
			a.status = "Nothing to undo"
		}
	case 'c':
		a.status = fmt.Sprintf("Removed %d arrows", a.board.RemoveAllArrows())
	case 'a':
		a.anchors = nil
		a.board.SetAnchors(nil)
		a.status = "Anchors cleared"
	case 's':
		a.board.Settings.Snap = !a.board.Settings.Snap
		a.status = fmt.Sprintf("Snap %t", a.board.Settings.Snap)
	case '+':
		a.board.Settings.Tolerance += 100
		a.status = fmt.Sprintf("Simplify %.0f", a.board.Settings.Tolerance)
	case '-':
		a.board.Settings.Tolerance = max(a.board.Settings.Tolerance-100, 0)
		a.status = fmt.Sprintf("Simplify %.0f", a.board.Settings.Tolerance)
	case 'p':
		a.export("arrows.pdf", export.WritePDF)
	case 'e':
		a.export("arrows.png", export.WritePNG)
	}
	return false
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	bx, by := fromCell(x, y)
	p := geom.Pt(bx, by)
	buttons := ev.Buttons()
	pressed := buttons &^ a.buttons
	a.buttons = buttons

	switch {
	case buttons&tcell.Button1 != 0:
		if a.board.IsDrawing() {
			a.board.Extend(p)
		} else {
			a.board.Begin(p)
		}
	case a.board.IsDrawing():
		if arrow, ok := a.board.End(); ok {
			a.status = fmt.Sprintf("Arrow with %d points", len(arrow.Points))
		}
	}

	if pressed&tcell.Button2 != 0 {
		label := anchorLabels[len(a.anchors)%len(anchorLabels)]
		if n := len(a.anchors) / len(anchorLabels); n > 0 {
			label = fmt.Sprintf("%s%d", label, n+1)
		}
		a.anchors = append(a.anchors, snap.Anchor{Label: label, Pos: p})
		a.board.SetAnchors(a.anchors)
		a.status = "Anchor " + label + " placed"
	}
}

func (a *App) export(name string, write func(w io.Writer, b *state.Board, opts export.Options) error) {
	path := filepath.Join(a.exportDir, name)
	if err := a.writeFile(path, write); err != nil {
		log.Printf("[TERM] %v", err)
		a.status = "Export failed: " + err.Error()
		return
	}
	a.status = "Exported " + path
}

func (a *App) writeFile(path string, write func(w io.Writer, b *state.Board, opts export.Options) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	if err := write(f, a.board, a.exportOpts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Draw redraws anchors, arrows and the status line.
func (a *App) Draw() {
	a.screen.Clear()

	render.BoardScene(newCellSurface(a.screen), a.board)

	for _, anchor := range a.anchors {
		cx, cy := toCell(anchor.Pos.X, anchor.Pos.Y)
		a.screen.SetContent(cx, cy, 'o', nil, styleAnchor)
		a.text(cx+1, cy, anchor.Label, styleAnchor)
	}

	w, h := a.screen.Size()
	for x := 0; x < w; x++ {
		a.screen.SetContent(x, h-1, ' ', nil, styleStatus)
	}
	a.text(0, h-1, a.status, styleStatus)
	a.screen.Show()
}

func (a *App) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
