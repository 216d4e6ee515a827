// Package state holds the arrows on a board and drives an arrow from the
// first press to its finished, stored form.
package state

import (
	"log"

	"ArrowBoard/internal/geom"
	"ArrowBoard/internal/snap"
)

// session is the arrow being drawn. A nil *session means the board is idle.
type session struct {
	arrow    Arrow
	settings Settings
}

// Board owns the arrow collection, the live drawing settings and at most one
// arrow in progress. It is not safe for concurrent use.
type Board struct {
	// Settings are read when an arrow is started; changing them does not
	// affect an arrow already in progress.
	Settings Settings

	anchors snap.AnchorProvider
	arrows  *Collection
	drawing *session
}

// NewBoard creates an idle, empty board. anchors may be nil.
func NewBoard(s Settings, anchors snap.AnchorProvider) *Board {
	return &Board{
		Settings: s,
		anchors:  anchors,
		arrows:   NewCollection(),
	}
}

// SetAnchors replaces the anchor provider used when arrows are finished.
func (b *Board) SetAnchors(anchors snap.AnchorProvider) {
	b.anchors = anchors
}

// Anchors returns the anchors currently offered for snapping.
func (b *Board) Anchors() []snap.Anchor {
	if b.anchors == nil {
		return nil
	}
	return b.anchors.Anchors()
}

// Begin starts a new arrow at p using a snapshot of the current settings.
// An arrow already in progress is discarded.
func (b *Board) Begin(p geom.Point) {
	if b.drawing != nil {
		log.Printf("[BOARD] Discarding unfinished arrow %s", b.drawing.arrow.ID)
	}
	s := b.Settings.Normalize()
	b.drawing = &session{arrow: NewArrow(s, p), settings: s}
}

// Extend appends p to the arrow in progress. It reports false when idle.
func (b *Board) Extend(p geom.Point) bool {
	if b.drawing == nil {
		return false
	}
	b.drawing.arrow.Points = append(b.drawing.arrow.Points, p)
	return true
}

// End finishes the arrow in progress, stores it and returns it. It reports
// false when idle.
func (b *Board) End() (Arrow, bool) {
	if b.drawing == nil {
		return Arrow{}, false
	}
	d := b.drawing
	b.drawing = nil

	raw := len(d.arrow.Points)
	arrow := Finalize(d.arrow, d.settings, b.Anchors())
	log.Printf("[BOARD] Arrow %s finalized: %d raw points -> %d (snap=%t)", arrow.ID, raw, len(arrow.Points), d.settings.Snap)
	b.arrows.Add(arrow)
	return arrow.Clone(), true
}

// Cancel drops the arrow in progress, if any.
func (b *Board) Cancel() {
	b.drawing = nil
}

// Drawing returns a copy of the arrow in progress.
func (b *Board) Drawing() (Arrow, bool) {
	if b.drawing == nil {
		return Arrow{}, false
	}
	return b.drawing.arrow.Clone(), true
}

// IsDrawing reports whether an arrow is in progress.
func (b *Board) IsDrawing() bool {
	return b.drawing != nil
}

// Arrows returns the finished arrows in drawing order.
func (b *Board) Arrows() []Arrow {
	return b.arrows.All()
}

// RemoveLastArrow deletes the most recent finished arrow. It is a no-op on
// an empty board.
func (b *Board) RemoveLastArrow() (Arrow, bool) {
	return b.arrows.RemoveLast()
}

// RemoveAllArrows deletes every finished arrow.
func (b *Board) RemoveAllArrows() int {
	return b.arrows.Clear()
}

// Bounds covers every finished arrow and every anchor, grown by padding.
// ok is false on a board with neither.
func (b *Board) Bounds(padding float64) (r geom.Rect, ok bool) {
	anchors := b.Anchors()
	groups := make([][]geom.Point, 0, b.arrows.Len()+1)
	for _, a := range b.arrows.arrows {
		groups = append(groups, a.Points)
	}

	positions := make([]geom.Point, 0, len(anchors))
	for _, a := range anchors {
		positions = append(positions, a.Pos)
	}
	groups = append(groups, positions)

	return geom.Bounds(padding, groups...)
}
