package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"ArrowBoard/internal/geom"
	"ArrowBoard/internal/render"
	"ArrowBoard/internal/state"
)

// joinSides is the number of sides of the polygon used for round joins.
const joinSides = 12

var (
	colorBackground = color.RGBA{255, 255, 255, 255}
	colorAnchor     = color.RGBA{120, 120, 120, 255}
	colorLabel      = color.RGBA{60, 60, 60, 255}
)

// RasterSurface strokes paths onto an RGBA image. Each stroke is filled as
// one shape, so translucent arrows do not darken where segments overlap.
type RasterSurface struct {
	img   *image.RGBA
	frame frame
	color color.NRGBA
	alpha float64
	width float64
	paths [][]geom.Point
}

var _ render.Surface = (*RasterSurface)(nil)

// NewRasterSurface draws onto img with board coordinates mapped 1:1.
func NewRasterSurface(img *image.RGBA) *RasterSurface {
	return &RasterSurface{
		img:   img,
		frame: frame{scale: 1},
		color: color.NRGBA{A: 255},
		alpha: 1,
		width: 1,
	}
}

func (s *RasterSurface) BeginPath() { s.paths = s.paths[:0] }

func (s *RasterSurface) MoveTo(x, y float64) {
	s.paths = append(s.paths, []geom.Point{s.point(x, y)})
}

func (s *RasterSurface) LineTo(x, y float64) {
	if len(s.paths) == 0 {
		s.MoveTo(x, y)
		return
	}
	last := len(s.paths) - 1
	s.paths[last] = append(s.paths[last], s.point(x, y))
}

func (s *RasterSurface) SetStrokeColor(c string) {
	s.color, _ = render.ParseColor(c)
}

func (s *RasterSurface) SetLineWidth(w float64) { s.width = w * s.frame.scale }

func (s *RasterSurface) SetAlpha(a float64) { s.alpha = a }

func (s *RasterSurface) Stroke() {
	b := s.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over

	half := math.Max(s.width, 1) / 2
	for _, path := range s.paths {
		for i, p := range path {
			disc(z, p, half)
			if i > 0 {
				segment(z, path[i-1], p, half)
			}
		}
	}

	z.Draw(s.img, b, image.NewUniform(render.WithAlpha(s.color, s.alpha)), image.Point{})
	s.paths = s.paths[:0]
}

func (s *RasterSurface) point(x, y float64) geom.Point {
	px, py := s.frame.project(x, y)
	return geom.Pt(px, py)
}

// segment adds the rectangle covering the stroke from a to b. All shapes are
// wound the same way so overlapping coverage saturates instead of cancelling.
func segment(z *vector.Rasterizer, a, b geom.Point, half float64) {
	dir, ok := geom.Unit(b.Sub(a))
	if !ok {
		return
	}
	n := geom.Pt(-dir.Y, dir.X).Scale(half)
	polygon(z, a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
}

// disc adds a round join at p.
func disc(z *vector.Rasterizer, p geom.Point, radius float64) {
	corners := make([]geom.Point, joinSides)
	for i := range corners {
		a := -2 * math.Pi * float64(i) / joinSides
		corners[i] = p.Add(geom.Pt(math.Cos(a), math.Sin(a)).Scale(radius))
	}
	polygon(z, corners...)
}

func polygon(z *vector.Rasterizer, corners ...geom.Point) {
	z.MoveTo(float32(corners[0].X), float32(corners[0].Y))
	for _, c := range corners[1:] {
		z.LineTo(float32(c.X), float32(c.Y))
	}
	z.ClosePath()
}

// RenderImage renders b onto a new white image sized to fit its arrows and
// anchors.
func RenderImage(b *state.Board, opts Options) *image.RGBA {
	f := newFrame(b, opts)
	img := image.NewRGBA(image.Rect(0, 0, int(math.Ceil(f.width)), int(math.Ceil(f.height))))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorBackground), image.Point{}, draw.Src)

	drawImageAnchors(img, f, b)
	s := NewRasterSurface(img)
	s.frame = f
	render.BoardScene(s, b)
	return img
}

// WritePNG renders b as with RenderImage and encodes it as PNG.
func WritePNG(w io.Writer, b *state.Board, opts Options) error {
	img := RenderImage(b, opts)
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	log.Printf("[EXPORT] Wrote PNG with %d arrows (%dx%d px)", len(b.Arrows()), img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}

func drawImageAnchors(img *image.RGBA, f frame, b *state.Board) {
	anchors := b.Anchors()
	if len(anchors) == 0 {
		return
	}

	z := vector.NewRasterizer(img.Bounds().Dx(), img.Bounds().Dy())
	z.DrawOp = draw.Over
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(colorLabel),
		Face: basicfont.Face7x13,
	}

	for _, a := range anchors {
		x, y := f.project(a.Pos.X, a.Pos.Y)
		disc(z, geom.Pt(x, y), anchorRadius*f.scale)
		if a.Label != "" {
			d.Dot = fixed.P(int(x+(anchorRadius+2)*f.scale), int(y-(anchorRadius+2)*f.scale))
			d.DrawString(a.Label)
		}
	}
	z.Draw(img, img.Bounds(), image.NewUniform(colorAnchor), image.Point{})
}
