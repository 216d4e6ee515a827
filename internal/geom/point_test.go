package geom

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestSquaredDistance(t *testing.T) {
	if d := SquaredDistance(Pt(0, 0), Pt(3, 4)); d != 25 {
		t.Errorf("SquaredDistance = %v, want 25", d)
	}
	if d := SquaredDistance(Pt(-1, 2), Pt(-1, 2)); d != 0 {
		t.Errorf("SquaredDistance of equal points = %v, want 0", d)
	}
}

func TestSquaredDistanceToSegment(t *testing.T) {
	tests := []struct {
		name    string
		p, a, b Point
		want    float64
	}{
		{"perpendicular", Pt(5, 3), Pt(0, 0), Pt(10, 0), 9},
		{"before start", Pt(-3, 4), Pt(0, 0), Pt(10, 0), 25},
		{"past end", Pt(13, 4), Pt(0, 0), Pt(10, 0), 25},
		{"on segment", Pt(7, 0), Pt(0, 0), Pt(10, 0), 0},
		{"diagonal", Pt(0, 2), Pt(0, 0), Pt(2, 2), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SquaredDistanceToSegment(tt.p, tt.a, tt.b)
			if !scalar.EqualWithinAbs(got, tt.want, 1e-12) {
				t.Errorf("SquaredDistanceToSegment(%v, %v, %v) = %v, want %v", tt.p, tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSquaredDistanceToDegenerateSegment(t *testing.T) {
	points := []Point{Pt(0, 0), Pt(3, 4), Pt(-7.5, 2.25), Pt(1e6, -1e6)}
	s := Pt(1.5, -2)
	for _, p := range points {
		if got, want := SquaredDistanceToSegment(p, s, s), SquaredDistance(p, s); got != want {
			t.Errorf("degenerate segment distance for %v = %v, want %v", p, got, want)
		}
	}
}

func TestUnit(t *testing.T) {
	u, ok := Unit(Pt(3, 4))
	if !ok {
		t.Fatal("Unit reported zero vector for (3,4)")
	}
	if !scalar.EqualWithinAbs(u.X, 0.6, 1e-12) || !scalar.EqualWithinAbs(u.Y, 0.8, 1e-12) {
		t.Errorf("Unit(3,4) = %v, want (0.6, 0.8)", u)
	}

	if u, ok := Unit(Point{}); ok || u != (Point{}) {
		t.Errorf("Unit(0,0) = %v, %v; want zero point, false", u, ok)
	}
}

func TestBounds(t *testing.T) {
	r, ok := Bounds(10, []Point{Pt(5, 20), Pt(-5, 0)}, []Point{Pt(40, 10)})
	if !ok {
		t.Fatal("Bounds reported no points")
	}
	if r.Min != Pt(-15, -10) || r.Max != Pt(50, 30) {
		t.Errorf("Bounds = %+v", r)
	}
	if r.Width() != 65 || r.Height() != 40 {
		t.Errorf("size = %vx%v, want 65x40", r.Width(), r.Height())
	}

	if _, ok := Bounds(10); ok {
		t.Error("Bounds of nothing should not be ok")
	}
	if _, ok := Bounds(10, nil, []Point{}); ok {
		t.Error("Bounds of empty groups should not be ok")
	}
}
