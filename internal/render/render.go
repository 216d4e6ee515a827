// Package render draws arrows onto a Surface: finished arrows as a smooth
// curve with an arrowhead, the arrow in progress as its raw polyline.
package render

import (
	"math"

	"ArrowBoard/internal/geom"
	"ArrowBoard/internal/spline"
	"ArrowBoard/internal/state"
)

const (
	// Tension of the curve drawn through a finished arrow's points.
	Tension = 0.5
	// HeadLength is the length of each arrowhead leg.
	HeadLength = 15.0
	// HeadAngle is the angle between each leg and the final tangent.
	HeadAngle = math.Pi / 6
)

// Surface is the drawing target. Calls arrive in a fixed order for a given
// input, so a recording Surface can compare render passes.
type Surface interface {
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
	SetStrokeColor(color string)
	SetLineWidth(width float64)
	SetAlpha(alpha float64)
}

// Render strokes a finished arrow: the cardinal spline through its points
// followed by a two-legged arrowhead at the end of the curve.
func Render(s Surface, a state.Arrow) {
	points := spline.Interpolate(a.Points, Tension, spline.DefaultSegments)

	applyStyle(s, a)
	s.BeginPath()
	polyline(s, points)
	arrowhead(s, points)
	s.Stroke()
}

// RenderInProgress strokes the captured points of an unfinished arrow as
// straight segments, without a curve or an arrowhead.
func RenderInProgress(s Surface, a state.Arrow) {
	applyStyle(s, a)
	s.BeginPath()
	polyline(s, a.Points)
	s.Stroke()
}

// Scene renders every finished arrow in order, then the arrow in progress
// when there is one, and finally restores full opacity.
func Scene(s Surface, arrows []state.Arrow, drawing *state.Arrow) {
	for _, a := range arrows {
		Render(s, a)
	}
	if drawing != nil {
		RenderInProgress(s, *drawing)
	}
	s.SetAlpha(1)
}

// BoardScene renders the finished and in-progress arrows of b.
func BoardScene(s Surface, b *state.Board) {
	var drawing *state.Arrow
	if d, ok := b.Drawing(); ok {
		drawing = &d
	}
	Scene(s, b.Arrows(), drawing)
}

func applyStyle(s Surface, a state.Arrow) {
	s.SetStrokeColor(a.Color)
	s.SetLineWidth(a.Thickness)
	s.SetAlpha(a.Opacity)
}

func polyline(s Surface, points []geom.Point) {
	if len(points) < 2 {
		return
	}
	s.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		s.LineTo(p.X, p.Y)
	}
}

// arrowhead draws both legs from the last point, pointing back along the
// direction from the second to last point.
func arrowhead(s Surface, points []geom.Point) {
	if len(points) < 2 {
		return
	}
	last := points[len(points)-1]
	prev := points[len(points)-2]
	angle := math.Atan2(last.Y-prev.Y, last.X-prev.X)

	for _, leg := range []float64{-HeadAngle, HeadAngle} {
		dx := math.Cos(angle + leg)
		dy := math.Sin(angle + leg)
		s.MoveTo(last.X, last.Y)
		s.LineTo(last.X-HeadLength*dx, last.Y-HeadLength*dy)
	}
}
