// Package export renders a board's arrows and anchors to PDF and PNG.
package export

import (
	"ArrowBoard/internal/geom"
	"ArrowBoard/internal/state"
)

// Options control the exported page.
type Options struct {
	// Padding is the margin kept around the arrows, in board units.
	Padding float64 `json:"padding"`
	// Scale converts board units to output units (points or pixels).
	Scale float64 `json:"scale"`
	// EmptyWidth and EmptyHeight size the page of a board with nothing on it.
	EmptyWidth  float64 `json:"empty_width"`
	EmptyHeight float64 `json:"empty_height"`
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		Padding:     40,
		Scale:       1,
		EmptyWidth:  800,
		EmptyHeight: 600,
	}
}

// frame is the part of the board mapped onto the output.
type frame struct {
	origin geom.Point
	scale  float64
	width  float64
	height float64
}

// newFrame fits the output to everything on b.
func newFrame(b *state.Board, opts Options) frame {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	r, ok := b.Bounds(opts.Padding)
	if !ok {
		return frame{scale: opts.Scale, width: opts.EmptyWidth * opts.Scale, height: opts.EmptyHeight * opts.Scale}
	}
	return frame{
		origin: r.Min,
		scale:  opts.Scale,
		width:  r.Width() * opts.Scale,
		height: r.Height() * opts.Scale,
	}
}

// project maps a board position to output coordinates.
func (f frame) project(x, y float64) (float64, float64) {
	return (x - f.origin.X) * f.scale, (y - f.origin.Y) * f.scale
}
