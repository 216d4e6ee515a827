package spline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"ArrowBoard/internal/geom"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

var controls = []geom.Point{
	geom.Pt(10, 10), geom.Pt(40, 30), geom.Pt(100, 10),
	geom.Pt(200, 100), geom.Pt(200, 50), geom.Pt(250, 120),
}

func TestInterpolateLength(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		tension  float64
		segments int
	}{
		{"two points", 2, 0.5, DefaultSegments},
		{"all points", len(controls), 0.5, DefaultSegments},
		{"zero tension", 4, 0, DefaultSegments},
		{"negative tension", 3, -1, 8},
		{"one segment", 5, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Interpolate(controls[:tt.n], tt.tension, tt.segments)
			if want := (tt.n - 1) * (tt.segments + 1); len(got) != want {
				t.Errorf("len = %d, want %d", len(got), want)
			}
		})
	}
}

func TestInterpolateHitsEndpoints(t *testing.T) {
	for _, tension := range []float64{-0.5, 0, 0.5, 1, 2} {
		got := Interpolate(controls, tension, DefaultSegments)
		diff(t, controls[0], got[0], approx)
		diff(t, controls[len(controls)-1], got[len(got)-1], approx)
	}
}

func TestInterpolatePassesThroughControlPoints(t *testing.T) {
	got := Interpolate(controls, 0.5, DefaultSegments)
	for i, c := range controls[:len(controls)-1] {
		diff(t, c, got[i*(DefaultSegments+1)], approx)
		diff(t, controls[i+1], got[i*(DefaultSegments+1)+DefaultSegments], approx)
	}
}

func TestInterpolateStraightLine(t *testing.T) {
	got := Interpolate([]geom.Point{geom.Pt(0, 0), geom.Pt(100, 0)}, 0.5, 4)

	// With duplicated ends both tangents are half the chord, so samples stay on
	// the line and move monotonically toward the end.
	for i, p := range got {
		if p.Y != 0 {
			t.Errorf("sample %d = %v left the line", i, p)
		}
		if i > 0 && p.X < got[i-1].X {
			t.Errorf("sample %d = %v moves backward", i, p)
		}
	}
	diff(t, geom.Pt(50, 0), got[2], approx)
}

func TestInterpolateDeterministic(t *testing.T) {
	diff(t, Interpolate(controls, 0.5, DefaultSegments), Interpolate(controls, 0.5, DefaultSegments))
}

func TestInterpolateShortInput(t *testing.T) {
	diff(t, []geom.Point(nil), Interpolate(nil, 0.5, DefaultSegments))
	one := []geom.Point{geom.Pt(3, 4)}
	diff(t, one, Interpolate(one, 0.5, DefaultSegments))
}

func TestInterpolateClampsSegments(t *testing.T) {
	got := Interpolate(controls[:3], 0.5, 0)
	if len(got) != 4 {
		t.Errorf("len = %d, want 4", len(got))
	}
}

func TestHermiteBasis(t *testing.T) {
	c1, c2, c3, c4 := hermite(0)
	diff(t, []float64{1, 0, 0, 0}, []float64{c1, c2, c3, c4})
	c1, c2, c3, c4 = hermite(1)
	diff(t, []float64{0, 1, 0, 0}, []float64{c1, c2, c3, c4})
	c1, c2, c3, c4 = hermite(0.5)
	diff(t, []float64{0.5, 0.5, 0.125, -0.125}, []float64{c1, c2, c3, c4}, approx)
}
