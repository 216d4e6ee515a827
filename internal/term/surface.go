package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"ArrowBoard/internal/render"
)

// Terminal cells are roughly twice as tall as wide; one cell covers this
// many board units in each direction.
const (
	cellWidth  = 4.0
	cellHeight = 8.0
)

// cellSurface plots strokes into terminal cells.
type cellSurface struct {
	screen tcell.Screen
	style  tcell.Style
	alpha  float64
	cx, cy int
	open   bool
}

var _ render.Surface = (*cellSurface)(nil)

func newCellSurface(screen tcell.Screen) *cellSurface {
	return &cellSurface{screen: screen, style: tcell.StyleDefault, alpha: 1}
}

// toCell maps a board position to the cell containing it.
func toCell(x, y float64) (int, int) {
	return int(math.Floor(x / cellWidth)), int(math.Floor(y / cellHeight))
}

// fromCell maps a cell to the board position at its center.
func fromCell(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) * cellWidth, (float64(cy) + 0.5) * cellHeight
}

func (s *cellSurface) BeginPath() { s.open = false }

func (s *cellSurface) MoveTo(x, y float64) {
	s.cx, s.cy = toCell(x, y)
	s.open = true
	s.plot(s.cx, s.cy)
}

func (s *cellSurface) LineTo(x, y float64) {
	tx, ty := toCell(x, y)
	if !s.open {
		s.cx, s.cy, s.open = tx, ty, true
	}
	s.line(s.cx, s.cy, tx, ty)
	s.cx, s.cy = tx, ty
}

func (s *cellSurface) Stroke() { s.open = false }

func (s *cellSurface) SetStrokeColor(c string) {
	col, _ := render.ParseColor(c)
	s.style = tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(col.R), int32(col.G), int32(col.B)))
}

// Line width has no meaning at cell resolution.
func (s *cellSurface) SetLineWidth(float64) {}

func (s *cellSurface) SetAlpha(a float64) { s.alpha = a }

// line plots the cells between two cells using Bresenham's algorithm.
func (s *cellSurface) line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		s.plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (s *cellSurface) plot(x, y int) {
	w, h := s.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h-1 {
		return
	}
	r := '█'
	if s.alpha < 0.5 {
		r = '░'
	}
	s.screen.SetContent(x, y, r, nil, s.style)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
