package export

import (
	"fmt"
	"io"
	"log"

	"github.com/jung-kurt/gofpdf"

	"ArrowBoard/internal/render"
	"ArrowBoard/internal/state"
)

const anchorRadius = 4.0

// PDFSurface draws onto a gofpdf document.
type PDFSurface struct {
	pdf   *gofpdf.Fpdf
	frame frame
	open  bool
}

var _ render.Surface = (*PDFSurface)(nil)

func (s *PDFSurface) BeginPath() { s.open = false }

func (s *PDFSurface) MoveTo(x, y float64) {
	s.pdf.MoveTo(s.frame.project(x, y))
	s.open = true
}

func (s *PDFSurface) LineTo(x, y float64) {
	s.pdf.LineTo(s.frame.project(x, y))
}

func (s *PDFSurface) Stroke() {
	if s.open {
		s.pdf.DrawPath("D")
	}
	s.open = false
}

func (s *PDFSurface) SetStrokeColor(c string) {
	col, ok := render.ParseColor(c)
	if !ok {
		log.Printf("[EXPORT] Unknown color %q, using black", c)
	}
	s.pdf.SetDrawColor(int(col.R), int(col.G), int(col.B))
}

func (s *PDFSurface) SetLineWidth(w float64) {
	s.pdf.SetLineWidth(w * s.frame.scale)
}

func (s *PDFSurface) SetAlpha(a float64) {
	s.pdf.SetAlpha(a, "Normal")
}

// WritePDF renders b onto a single page sized to fit its arrows and anchors.
func WritePDF(w io.Writer, b *state.Board, opts Options) error {
	f := newFrame(b, opts)

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: f.width, Ht: f.height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")

	drawPDFAnchors(pdf, f, b)
	render.BoardScene(&PDFSurface{pdf: pdf, frame: f}, b)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	log.Printf("[EXPORT] Wrote PDF with %d arrows (%.0fx%.0f pt)", len(b.Arrows()), f.width, f.height)
	return nil
}

func drawPDFAnchors(pdf *gofpdf.Fpdf, f frame, b *state.Board) {
	pdf.SetFont("Helvetica", "", 10*f.scale)
	pdf.SetDrawColor(120, 120, 120)
	pdf.SetFillColor(220, 220, 220)
	pdf.SetTextColor(60, 60, 60)
	pdf.SetLineWidth(1)

	for _, a := range b.Anchors() {
		x, y := f.project(a.Pos.X, a.Pos.Y)
		pdf.Circle(x, y, anchorRadius*f.scale, "FD")
		if a.Label != "" {
			pdf.Text(x+(anchorRadius+2)*f.scale, y-(anchorRadius+2)*f.scale, a.Label)
		}
	}
}
