package state

import (
	"ArrowBoard/internal/simplify"
	"ArrowBoard/internal/snap"
)

// Finalize turns a captured arrow into its stored form: the ends are snapped
// to anchors when s.Snap is set, then the points are always simplified with
// s.Tolerance. Only the points change; arrow itself is not modified.
//
// A single-point arrow (a click without a drag) comes back with that point
// repeated so every stored arrow has a start and an end.
func Finalize(arrow Arrow, s Settings, anchors []snap.Anchor) Arrow {
	points := arrow.Points
	if s.Snap && len(anchors) > 0 {
		points = snap.Snap(points, anchors)
	}

	points = simplify.Simplify(points, s.Tolerance)
	if len(points) == 1 {
		points = append(points, points[0])
	}

	arrow.Points = points
	return arrow
}
