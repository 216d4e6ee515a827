package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"log"
	"os"
	"testing"

	"ArrowBoard/internal/geom"
	"ArrowBoard/internal/snap"
	"ArrowBoard/internal/state"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func testBoard() *state.Board {
	b := state.NewBoard(state.Settings{Color: "#ff0000", Thickness: 4, Opacity: 1, Tolerance: 1}, nil)
	b.Begin(geom.Pt(100, 100))
	b.Extend(geom.Pt(150, 100))
	b.Extend(geom.Pt(200, 100))
	b.End()
	return b
}

func TestNewFrame(t *testing.T) {
	f := newFrame(testBoard(), Options{Padding: 10, Scale: 2})
	if f.origin != geom.Pt(90, 90) {
		t.Errorf("origin = %v, want (90,90)", f.origin)
	}
	if f.width != 240 || f.height != 40 {
		t.Errorf("size = %vx%v, want 240x40", f.width, f.height)
	}
	if x, y := f.project(100, 100); x != 20 || y != 20 {
		t.Errorf("project(100,100) = (%v,%v), want (20,20)", x, y)
	}

	empty := newFrame(state.NewBoard(state.DefaultSettings(), nil), DefaultOptions())
	if empty.width != 800 || empty.height != 600 {
		t.Errorf("empty board size = %vx%v, want 800x600", empty.width, empty.height)
	}
}

func TestRenderImage(t *testing.T) {
	img := RenderImage(testBoard(), Options{Padding: 20, Scale: 1})
	if got := img.Bounds(); got != image.Rect(0, 0, 140, 40) {
		t.Fatalf("bounds = %v, want 140x40", got)
	}

	// (150,100) on the board is the middle of the shaft.
	if c := img.RGBAAt(70, 20); c.R < 200 || c.G > 50 || c.B > 50 {
		t.Errorf("shaft pixel = %v, want red", c)
	}
	if c := img.RGBAAt(70, 2); c != colorBackground {
		t.Errorf("background pixel = %v, want white", c)
	}
}

func TestRasterSurfaceTranslucentOverlap(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	s := NewRasterSurface(img)
	s.SetStrokeColor("black")
	s.SetLineWidth(6)
	s.SetAlpha(0.5)

	// Two overlapping segments in one stroke cover the pixel once.
	s.BeginPath()
	s.MoveTo(5, 10)
	s.LineTo(35, 10)
	s.MoveTo(35, 10)
	s.LineTo(5, 10)
	s.Stroke()

	c := img.RGBAAt(20, 10)
	if c.A < 120 || c.A > 136 {
		t.Errorf("alpha at overlap = %d, want about half", c.A)
	}
}

func TestWritePNG(t *testing.T) {
	b := testBoard()
	b.SetAnchors(snap.Anchors{{Label: "C", Pos: geom.Pt(60, 60)}})

	var buf bytes.Buffer
	if err := WritePNG(&buf, b, DefaultOptions()); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	// Anchor at (60,60) sits at the padding offset.
	if c := color.RGBAModel.Convert(img.At(40, 40)).(color.RGBA); c == colorBackground {
		t.Errorf("anchor pixel is background")
	}
}

func TestWritePDF(t *testing.T) {
	b := testBoard()
	b.SetAnchors(snap.Anchors{{Label: "G", Pos: geom.Pt(220, 120)}})

	var buf bytes.Buffer
	if err := WritePDF(&buf, b, DefaultOptions()); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", buf.Bytes()[:min(buf.Len(), 16)])
	}
}

func TestWritePDFEmptyBoard(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, state.NewBoard(state.DefaultSettings(), nil), DefaultOptions()); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("empty PDF")
	}
}
