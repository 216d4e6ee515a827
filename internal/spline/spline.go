// Package spline expands sparse control points into a dense, smooth curve
// using a cardinal spline.
package spline

import "ArrowBoard/internal/geom"

// DefaultSegments is the number of steps each span between two control
// points is divided into.
const DefaultSegments = 16

// Interpolate returns a cardinal spline through points. Each span between
// neighbouring control points contributes segments+1 samples, both ends
// included, so the result has (len(points)-1)*(segments+1) points and starts
// and ends exactly on the first and last control points. The first and last
// control points are duplicated so the end tangents are defined; tension
// scales every tangent.
//
// Fewer than two control points are returned as a copy, and segments below 1
// are treated as 1.
func Interpolate(points []geom.Point, tension float64, segments int) []geom.Point {
	if len(points) < 2 {
		return append([]geom.Point(nil), points...)
	}
	if segments < 1 {
		segments = 1
	}

	pts := make([]geom.Point, 0, len(points)+2)
	pts = append(pts, points[0])
	pts = append(pts, points...)
	pts = append(pts, points[len(points)-1])

	result := make([]geom.Point, 0, (len(points)-1)*(segments+1))
	for i := 1; i < len(pts)-2; i++ {
		t1 := pts[i+1].Sub(pts[i-1]).Scale(tension)
		t2 := pts[i+2].Sub(pts[i]).Scale(tension)

		for step := 0; step <= segments; step++ {
			c1, c2, c3, c4 := hermite(float64(step) / float64(segments))
			result = append(result, geom.Point{
				X: c1*pts[i].X + c2*pts[i+1].X + c3*t1.X + c4*t2.X,
				Y: c1*pts[i].Y + c2*pts[i+1].Y + c3*t1.Y + c4*t2.Y,
			})
		}
	}
	return result
}

// hermite returns the cubic Hermite basis functions at t.
func hermite(t float64) (c1, c2, c3, c4 float64) {
	t2 := t * t
	t3 := t2 * t
	c1 = 2*t3 - 3*t2 + 1
	c2 = -2*t3 + 3*t2
	c3 = t3 - 2*t2 + t
	c4 = t3 - t2
	return c1, c2, c3, c4
}
