package state

import (
	"github.com/google/uuid"

	"ArrowBoard/internal/geom"
)

// Settings are the drawing settings in effect when an arrow is started.
type Settings struct {
	Color     string  `json:"color"`
	Thickness float64 `json:"thickness"`
	Opacity   float64 `json:"opacity"`
	// Tolerance is the simplification threshold, a squared distance.
	Tolerance float64 `json:"tolerance"`
	Snap      bool    `json:"snap"`
}

// DefaultSettings returns the settings a fresh board starts with.
func DefaultSettings() Settings {
	return Settings{
		Color:     "#00AAFF",
		Thickness: 3,
		Opacity:   1,
		Tolerance: 500,
		Snap:      false,
	}
}

// Normalize clamps thickness and tolerance to be non-negative and opacity
// to [0,1].
func (s Settings) Normalize() Settings {
	s.Thickness = max(s.Thickness, 0)
	s.Tolerance = max(s.Tolerance, 0)
	s.Opacity = min(max(s.Opacity, 0), 1)
	return s
}

// Arrow is a single freehand arrow and its stroke style.
type Arrow struct {
	ID        string       `json:"id"`
	Color     string       `json:"color"`
	Thickness float64      `json:"thickness"`
	Opacity   float64      `json:"opacity"`
	Points    []geom.Point `json:"points"`
}

// NewArrow starts an arrow at p styled by s.
func NewArrow(s Settings, p geom.Point) Arrow {
	s = s.Normalize()
	return Arrow{
		ID:        uuid.NewString(),
		Color:     s.Color,
		Thickness: s.Thickness,
		Opacity:   s.Opacity,
		Points:    []geom.Point{p},
	}
}

// Clone returns a copy of a that shares no memory with it.
func (a Arrow) Clone() Arrow {
	a.Points = append([]geom.Point(nil), a.Points...)
	return a
}
