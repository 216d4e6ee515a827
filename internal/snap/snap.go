// Package snap pulls the ends of a freehand arrow onto nearby anchor points.
package snap

import (
	"ArrowBoard/internal/geom"
)

const (
	// GraceDistance is how far a snapped endpoint stays back from its anchor,
	// leaving room for the anchor's label.
	GraceDistance = 20.0

	// clearDistance is the radius around each anchor inside which raw points
	// are discarded before the ends are replaced.
	clearDistance = GraceDistance * 1.5
)

// Anchor is a labeled position an arrow end may snap to.
type Anchor struct {
	Label string     `json:"label"`
	Pos   geom.Point `json:"pos"`
}

// AnchorProvider supplies the anchors currently on the board, in a stable
// order. The order decides ties between equidistant anchors.
type AnchorProvider interface {
	Anchors() []Anchor
}

// Anchors is a fixed, ordered anchor list.
type Anchors []Anchor

// Anchors implements AnchorProvider.
func (a Anchors) Anchors() []Anchor { return a }

// Nearest returns the anchors closest to the first and the last of points.
// Ties go to the anchor that comes first. ok is false if either slice is empty.
func Nearest(points []geom.Point, anchors []Anchor) (start, end Anchor, ok bool) {
	if len(points) == 0 || len(anchors) == 0 {
		return Anchor{}, Anchor{}, false
	}

	first, last := points[0], points[len(points)-1]
	start, end = anchors[0], anchors[0]
	ds := geom.SquaredDistance(anchors[0].Pos, first)
	de := geom.SquaredDistance(anchors[0].Pos, last)

	for _, a := range anchors[1:] {
		if d := geom.SquaredDistance(a.Pos, first); d < ds {
			start, ds = a, d
		}
		if d := geom.SquaredDistance(a.Pos, last); d < de {
			end, de = a, d
		}
	}
	return start, end, true
}

// Snap returns a copy of points whose ends are moved onto the nearest anchors,
// each pulled back by GraceDistance along the direction it approaches from.
// Raw points within 1.5*GraceDistance of either anchor are dropped first; if
// fewer than two survive the arrow runs straight from anchor to anchor.
// Without points or anchors the points are returned unchanged.
func Snap(points []geom.Point, anchors []Anchor) []geom.Point {
	start, end, ok := Nearest(points, anchors)
	if !ok {
		return append([]geom.Point(nil), points...)
	}

	limit := clearDistance * clearDistance
	kept := make([]geom.Point, 0, len(points))
	for _, p := range points {
		if geom.SquaredDistance(p, start.Pos) > limit && geom.SquaredDistance(p, end.Pos) > limit {
			kept = append(kept, p)
		}
	}

	if len(kept) < 2 {
		kept = []geom.Point{start.Pos, end.Pos}
	}

	last := len(kept) - 1
	head := pullBack(start.Pos, kept[0])
	tail := pullBack(end.Pos, kept[last])
	kept[0] = head
	kept[last] = tail

	return kept
}

// pullBack moves anchor GraceDistance back toward from. When the two
// coincide there is no direction and the anchor is returned as is.
func pullBack(anchor, from geom.Point) geom.Point {
	dir, ok := geom.Unit(anchor.Sub(from))
	if !ok {
		return anchor
	}
	return anchor.Sub(dir.Scale(GraceDistance))
}
