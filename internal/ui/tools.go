package ui

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	colorful "github.com/lucasb-eyer/go-colorful"

	"ArrowBoard/internal/export"
	"ArrowBoard/internal/state"
)

// palette is the set of stroke colors offered by the toolbar.
var palette = []color.Color{
	color.NRGBA{R: 0x00, G: 0xAA, B: 0xFF, A: 255},
	color.Black,
	color.NRGBA{R: 0xE5, G: 0x39, B: 0x35, A: 255},
	color.NRGBA{R: 0x43, G: 0xA0, B: 0x47, A: 255},
	color.NRGBA{R: 0xFB, G: 0x8C, B: 0x00, A: 255},
}

// hexColor formats c the way settings store stroke colors.
func hexColor(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return strings.ToUpper(cf.Hex())
}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// labeledSlider returns a slider with a caption that shows its value.
func labeledSlider(caption string, lo, hi, value float64, format func(float64) string, changed func(float64)) fyne.CanvasObject {
	label := widget.NewLabel(fmt.Sprintf("%s: %s", caption, format(value)))
	slider := widget.NewSlider(lo, hi)
	slider.SetValue(value)
	slider.OnChanged = func(v float64) {
		label.SetText(fmt.Sprintf("%s: %s", caption, format(v)))
		changed(v)
	}
	return container.NewHBox(label, container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)), slider))
}

// --- The Main Toolbar ---
func NewToolbar(board *BoardWidget, win fyne.Window, opts export.Options) fyne.CanvasObject {
	current := board.Settings()

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), board.RemoveLastArrow),
		widget.NewToolbarAction(theme.DeleteIcon(), board.RemoveAllArrows),
		widget.NewToolbarAction(theme.ContentClearIcon(), board.ClearAnchors),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() { exportDialog(board, win, true, opts) }),
		widget.NewToolbarAction(theme.FileImageIcon(), func() { exportDialog(board, win, false, opts) }),
	)

	// --- Color Palette ---
	onColorTapped := func(c color.Color) {
		hex := hexColor(c)
		board.UpdateSettings(func(s *state.Settings) { s.Color = hex })
		board.SetStatus("Color " + hex)
	}
	colorBox := container.NewHBox()
	for _, c := range palette {
		colorBox.Add(newColorSwatch(c, onColorTapped))
	}

	thickness := labeledSlider("Size", 1, 20, current.Thickness,
		func(v float64) string { return fmt.Sprintf("%.0f", v) },
		func(v float64) { board.UpdateSettings(func(s *state.Settings) { s.Thickness = v }) })

	// The slider shows transparency in percent; settings hold opacity.
	transparency := labeledSlider("Transparency", 0, 100, (1-current.Opacity)*100,
		func(v float64) string { return fmt.Sprintf("%.0f%%", v) },
		func(v float64) { board.UpdateSettings(func(s *state.Settings) { s.Opacity = 1 - v/100 }) })

	simplification := labeledSlider("Simplify", 0, 2000, current.Tolerance,
		func(v float64) string { return fmt.Sprintf("%.0f", v) },
		func(v float64) { board.UpdateSettings(func(s *state.Settings) { s.Tolerance = v }) })

	snapCheck := widget.NewCheck("Snap to anchors", func(on bool) {
		board.UpdateSettings(func(s *state.Settings) { s.Snap = on })
	})
	snapCheck.SetChecked(current.Snap)

	return container.NewHBox(
		tb,
		widget.NewSeparator(),
		colorBox,
		widget.NewSeparator(),
		thickness,
		transparency,
		simplification,
		snapCheck,
		layout.NewSpacer(),
	)
}

func exportDialog(board *BoardWidget, win fyne.Window, pdf bool, opts export.Options) {
	ext := ".png"
	if pdf {
		ext = ".pdf"
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			log.Printf("[EXPORT] Save dialog: %v", err)
			board.SetStatus("Export failed")
			return
		}
		if writer == nil {
			return
		}
		board.Export(writer, writer.URI().Name(), pdf, opts)
	}, win)
	d.SetFileName("arrows" + ext)
	d.Show()
}
