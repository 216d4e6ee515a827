// Package simplify reduces dense freehand input to a minimal polyline using
// the Ramer-Douglas-Peucker algorithm.
package simplify

import "ArrowBoard/internal/geom"

// span is a range of point indices whose interior has not been examined yet.
type span struct {
	first, last int
}

// Simplify returns the subsequence of points that keeps the shape of the
// polyline within sqTolerance, a squared distance. The first and last points
// are always kept and the input order is preserved. With a tolerance of 0
// only points that are exactly collinear with their retained chord are
// dropped. Inputs with fewer than two points are returned as a copy.
//
// Ranges are processed from an explicit worklist rather than by recursion so
// that very long strokes cannot exhaust the stack. points is not modified.
func Simplify(points []geom.Point, sqTolerance float64) []geom.Point {
	if len(points) < 2 {
		return append([]geom.Point(nil), points...)
	}

	last := len(points) - 1
	keep := make([]bool, len(points))
	keep[0], keep[last] = true, true

	work := []span{{first: 0, last: last}}
	for len(work) > 0 {
		s := work[len(work)-1]
		work = work[:len(work)-1]

		index, maxSqDist := farthest(points, s, sqTolerance)
		if maxSqDist <= sqTolerance {
			continue
		}

		keep[index] = true
		if index-s.first > 1 {
			work = append(work, span{first: s.first, last: index})
		}
		if s.last-index > 1 {
			work = append(work, span{first: index, last: s.last})
		}
	}

	simplified := make([]geom.Point, 0, len(points))
	for i, p := range points {
		if keep[i] {
			simplified = append(simplified, p)
		}
	}
	return simplified
}

// farthest finds the interior point of s with the largest squared distance to
// the chord (first, last). Only distances strictly greater than floor count,
// so on ties the earliest index wins and index is -1 when nothing exceeds it.
func farthest(points []geom.Point, s span, floor float64) (index int, maxSqDist float64) {
	index, maxSqDist = -1, floor
	a, b := points[s.first], points[s.last]

	for i := s.first + 1; i < s.last; i++ {
		if d := geom.SquaredDistanceToSegment(points[i], a, b); d > maxSqDist {
			index, maxSqDist = i, d
		}
	}
	return index, maxSqDist
}
