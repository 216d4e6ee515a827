// Package geom provides the point type and distance math shared by the
// arrow pipeline.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a position on the board in screen units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// FromVec converts a gonum vector to a Point.
func FromVec(v r2.Vec) Point {
	return Point{X: v.X, Y: v.Y}
}

// Vec returns p as a gonum vector.
func (p Point) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return FromVec(r2.Add(p.Vec(), q.Vec()))
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return FromVec(r2.Sub(p.Vec(), q.Vec()))
}

// Scale returns p scaled by f.
func (p Point) Scale(f float64) Point {
	return FromVec(r2.Scale(f, p.Vec()))
}

// Unit returns the unit vector colinear to p. ok is false for the zero
// vector, in which case the zero Point is returned.
func Unit(p Point) (u Point, ok bool) {
	if p.X == 0 && p.Y == 0 {
		return Point{}, false
	}
	return FromVec(r2.Unit(p.Vec())), true
}

// SquaredDistance returns the squared Euclidean distance between p1 and p2.
func SquaredDistance(p1, p2 Point) float64 {
	return r2.Norm2(r2.Sub(p1.Vec(), p2.Vec()))
}

// SquaredDistanceToSegment returns the squared distance from p to the closest
// point of the segment [a, b]. A segment with a == b is treated as a point.
func SquaredDistanceToSegment(p, a, b Point) float64 {
	closest := a
	d := b.Sub(a)

	if d.X != 0 || d.Y != 0 {
		t := r2.Dot(p.Sub(a).Vec(), d.Vec()) / r2.Norm2(d.Vec())
		if t > 1 {
			closest = b
		} else if t > 0 {
			closest = a.Add(d.Scale(t))
		}
	}

	return SquaredDistance(p, closest)
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	Min, Max Point
}

// Width of the box.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height of the box.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Bounds returns the bounding box of all points in groups, grown by padding
// on every side. ok is false when there are no points at all.
func Bounds(padding float64, groups ...[]Point) (r Rect, ok bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	for _, points := range groups {
		for _, p := range points {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
			ok = true
		}
	}
	if !ok {
		return Rect{}, false
	}

	return Rect{
		Min: Point{X: minX - padding, Y: minY - padding},
		Max: Point{X: maxX + padding, Y: maxY + padding},
	}, true
}
