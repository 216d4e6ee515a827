package ui

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"ArrowBoard/internal/export"
	"ArrowBoard/internal/geom"
	"ArrowBoard/internal/render"
	"ArrowBoard/internal/snap"
	"ArrowBoard/internal/state"
)

const anchorRadius = 5

var (
	colorAnchor      = color.NRGBA{R: 120, G: 120, B: 120, A: 255}
	colorAnchorLabel = color.NRGBA{R: 60, G: 60, B: 60, A: 255}
)

// anchorLabels name anchors in the order they are placed.
var anchorLabels = []string{"C", "G", "Am", "F", "D", "Em", "A", "E", "Dm", "Bm"}

// BoardWidget captures arrows with the primary button, places anchors with
// the secondary button and pans when dragged without drawing.
type BoardWidget struct {
	widget.BaseWidget
	mu         sync.Mutex
	board      *state.Board
	anchors    snap.Anchors
	panX, panY float32
	statusBar  *widget.Label
	OnChange   func()
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(board *state.Board) *BoardWidget {
	b := &BoardWidget{
		board:     board,
		anchors:   append(snap.Anchors(nil), board.Anchors()...),
		statusBar: widget.NewLabel("Ready"),
	}
	b.board.SetAnchors(b.anchors)
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) SetStatus(text string) {
	b.statusBar.SetText(text)
}

// Settings returns the settings the next arrow will use.
func (b *BoardWidget) Settings() state.Settings {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.board.Settings
}

// UpdateSettings applies fn to the settings the next arrow will use.
func (b *BoardWidget) UpdateSettings(fn func(*state.Settings)) {
	b.mu.Lock()
	fn(&b.board.Settings)
	b.board.Settings = b.board.Settings.Normalize()
	b.mu.Unlock()
}

// Anchors returns the anchors placed on the board.
func (b *BoardWidget) Anchors() []snap.Anchor {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]snap.Anchor(nil), b.anchors...)
}

// AddAnchor places a new anchor at p, in board coordinates.
func (b *BoardWidget) AddAnchor(p geom.Point) snap.Anchor {
	b.mu.Lock()
	label := anchorLabels[len(b.anchors)%len(anchorLabels)]
	if n := len(b.anchors) / len(anchorLabels); n > 0 {
		label = fmt.Sprintf("%s%d", label, n+1)
	}
	a := snap.Anchor{Label: label, Pos: p}
	b.anchors = append(b.anchors, a)
	b.board.SetAnchors(b.anchors)
	b.mu.Unlock()

	log.Printf("[BOARD] Anchor %s placed at (%.0f, %.0f)", a.Label, p.X, p.Y)
	b.changed(fmt.Sprintf("Anchor %s placed", a.Label))
	return a
}

// ClearAnchors removes every anchor.
func (b *BoardWidget) ClearAnchors() {
	b.mu.Lock()
	b.anchors = nil
	b.board.SetAnchors(nil)
	b.mu.Unlock()
	b.changed("Anchors cleared")
}

// RemoveLastArrow undoes the most recent arrow.
func (b *BoardWidget) RemoveLastArrow() {
	b.mu.Lock()
	_, ok := b.board.RemoveLastArrow()
	b.mu.Unlock()
	if !ok {
		b.SetStatus("Nothing to undo")
		return
	}
	b.changed("Removed last arrow")
}

// RemoveAllArrows clears the board.
func (b *BoardWidget) RemoveAllArrows() {
	b.mu.Lock()
	n := b.board.RemoveAllArrows()
	b.mu.Unlock()
	b.changed(fmt.Sprintf("Removed %d arrows", n))
}

// Arrows returns the finished arrows.
func (b *BoardWidget) Arrows() []state.Arrow {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.board.Arrows()
}

// Export writes the board as PDF or PNG to writer.
func (b *BoardWidget) Export(writer io.WriteCloser, name string, pdf bool, opts export.Options) {
	defer func() {
		if err := writer.Close(); err != nil {
			log.Printf("[EXPORT] Error closing writer: %v", err)
		}
	}()

	b.mu.Lock()
	var err error
	if pdf {
		err = export.WritePDF(writer, b.board, opts)
	} else {
		err = export.WritePNG(writer, b.board, opts)
	}
	b.mu.Unlock()

	if err != nil {
		log.Printf("[EXPORT] %s: %v", name, err)
		b.SetStatus("Export failed")
		return
	}
	b.SetStatus("Exported " + name)
}

func (b *BoardWidget) changed(status string) {
	b.SetStatus(status)
	b.Refresh()
	if b.OnChange != nil {
		b.OnChange()
	}
}

func (b *BoardWidget) boardPos(p fyne.Position) geom.Point {
	return geom.Pt(float64(p.X-b.panX), float64(p.Y-b.panY))
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	switch e.Button {
	case desktop.MouseButtonPrimary:
		b.mu.Lock()
		b.board.Begin(b.boardPos(e.Position))
		b.mu.Unlock()
		b.Refresh()
	case desktop.MouseButtonSecondary:
		b.AddAnchor(b.boardPos(e.Position))
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.mu.Lock()
	a, ok := b.board.End()
	b.mu.Unlock()
	if ok {
		b.changed(fmt.Sprintf("Arrow with %d points", len(a.Points)))
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.mu.Lock()
	drawing := b.board.Extend(b.boardPos(e.Position))
	if !drawing {
		b.panX += e.Dragged.DX
		b.panY += e.Dragged.DY
	}
	b.mu.Unlock()
	b.Refresh()
}

func (b *BoardWidget) Scrolled(e *fyne.ScrollEvent) {
	b.mu.Lock()
	b.panX += e.Scrolled.DX
	b.panY += e.Scrolled.DY
	b.mu.Unlock()
	b.Refresh()
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	r.rebuild()
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

// rebuild recreates the canvas objects for the anchors and the arrows.
func (r *boardWidgetRenderer) rebuild() {
	b := r.board
	b.mu.Lock()
	defer b.mu.Unlock()

	offset := fyne.NewPos(b.panX, b.panY)
	objects := []fyne.CanvasObject{r.background}

	for _, a := range b.anchors {
		center := fyne.NewPos(float32(a.Pos.X)+offset.X, float32(a.Pos.Y)+offset.Y)
		dot := canvas.NewCircle(colorAnchor)
		dot.Position1 = center.SubtractXY(anchorRadius, anchorRadius)
		dot.Position2 = center.AddXY(anchorRadius, anchorRadius)

		label := canvas.NewText(a.Label, colorAnchorLabel)
		label.TextSize = 12
		label.Move(center.AddXY(anchorRadius+2, -(anchorRadius + 16)))
		objects = append(objects, dot, label)
	}

	s := newLineSurface(offset)
	render.BoardScene(s, b.board)
	r.objects = append(objects, s.objects...)
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardWidgetRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.board)
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseOut()                      {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}
func (b *BoardWidget) DragEnd()                       {}
func (r *boardWidgetRenderer) Destroy()               {}
func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}
func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}
