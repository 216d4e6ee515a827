package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"ArrowBoard/internal/render"
)

// lineSurface turns render calls into fyne line objects, shifted by the
// board's pan offset.
type lineSurface struct {
	offset  fyne.Position
	color   color.NRGBA
	alpha   float64
	width   float32
	cursor  fyne.Position
	hasPath bool
	objects []fyne.CanvasObject
}

var _ render.Surface = (*lineSurface)(nil)

func newLineSurface(offset fyne.Position) *lineSurface {
	return &lineSurface{offset: offset, color: color.NRGBA{A: 255}, alpha: 1, width: 1}
}

func (s *lineSurface) BeginPath() { s.hasPath = false }

func (s *lineSurface) MoveTo(x, y float64) {
	s.cursor = s.pos(x, y)
	s.hasPath = true
}

func (s *lineSurface) LineTo(x, y float64) {
	next := s.pos(x, y)
	if !s.hasPath {
		s.cursor, s.hasPath = next, true
		return
	}
	line := canvas.NewLine(render.WithAlpha(s.color, s.alpha))
	line.StrokeWidth = s.width
	line.Position1 = s.cursor
	line.Position2 = next
	s.objects = append(s.objects, line)
	s.cursor = next
}

func (s *lineSurface) Stroke() { s.hasPath = false }

func (s *lineSurface) SetStrokeColor(c string) { s.color, _ = render.ParseColor(c) }

func (s *lineSurface) SetLineWidth(w float64) { s.width = float32(w) }

func (s *lineSurface) SetAlpha(a float64) { s.alpha = a }

func (s *lineSurface) pos(x, y float64) fyne.Position {
	return fyne.NewPos(float32(x)+s.offset.X, float32(y)+s.offset.Y)
}
