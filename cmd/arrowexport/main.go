// Command arrowexport runs raw point lists through the arrow pipeline and
// writes the finished board as PDF or PNG without opening a window.
//
//	arrowexport -png out.png -points "10,10 40,30 100,10 200,100"
//
// Each -points flag adds one arrow. Without any, a demo arrow is drawn.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"ArrowBoard/internal/config"
	"ArrowBoard/internal/export"
	"ArrowBoard/internal/geom"
	"ArrowBoard/internal/snap"
	"ArrowBoard/internal/state"
)

var demoArrow = []geom.Point{
	geom.Pt(10, 10), geom.Pt(40, 30), geom.Pt(100, 10),
	geom.Pt(200, 100), geom.Pt(200, 50), geom.Pt(250, 120),
}

type pointLists [][]geom.Point

func (l *pointLists) String() string { return fmt.Sprint(len(*l), " arrows") }

func (l *pointLists) Set(v string) error {
	points, err := parsePoints(v)
	if err != nil {
		return err
	}
	*l = append(*l, points)
	return nil
}

// parsePoints reads space separated "x,y" pairs.
func parsePoints(v string) ([]geom.Point, error) {
	var points []geom.Point
	for _, field := range strings.Fields(v) {
		xs, ys, ok := strings.Cut(field, ",")
		if !ok {
			return nil, fmt.Errorf("point %q is not x,y", field)
		}
		x, err := strconv.ParseFloat(xs, 64)
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", field, err)
		}
		y, err := strconv.ParseFloat(ys, 64)
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", field, err)
		}
		points = append(points, geom.Pt(x, y))
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("no points in %q", v)
	}
	return points, nil
}

// buildBoard feeds each point list through a drag gesture.
func buildBoard(cfg *config.Config, arrows [][]geom.Point) *state.Board {
	board := state.NewBoard(cfg.Settings, snap.Anchors(cfg.Anchors))
	for _, points := range arrows {
		board.Begin(points[0])
		for _, p := range points[1:] {
			board.Extend(p)
		}
		board.End()
	}
	return board
}

func writeFile(path string, b *state.Board, opts export.Options, write func(io.Writer, *state.Board, export.Options) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	if err := write(f, b, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func main() {
	configPath := flag.String("config", config.DefaultPath(), "configuration file")
	pdfPath := flag.String("pdf", "", "write the board as PDF to this file")
	pngPath := flag.String("png", "", "write the board as PNG to this file")
	snapEnds := flag.Bool("snap", false, "snap arrow ends to the configured anchors")
	tolerance := flag.Float64("tolerance", -1, "squared simplification tolerance (negative keeps the configured value)")
	var arrows pointLists
	flag.Var(&arrows, "points", `raw arrow points "x,y x,y ..." (repeatable)`)
	flag.Parse()

	if *pdfPath == "" && *pngPath == "" {
		fmt.Fprintln(os.Stderr, "nothing to do: pass -pdf and/or -png")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[CONFIG] %v", err)
	}
	if *snapEnds {
		cfg.Settings.Snap = true
	}
	if *tolerance >= 0 {
		cfg.Settings.Tolerance = *tolerance
	}
	if len(arrows) == 0 {
		arrows = pointLists{demoArrow}
	}

	board := buildBoard(cfg, arrows)
	if *pdfPath != "" {
		if err := writeFile(*pdfPath, board, cfg.Export, export.WritePDF); err != nil {
			log.Fatalf("[EXPORT] %v", err)
		}
		log.Printf("[EXPORT] Wrote %s", *pdfPath)
	}
	if *pngPath != "" {
		if err := writeFile(*pngPath, board, cfg.Export, export.WritePNG); err != nil {
			log.Fatalf("[EXPORT] %v", err)
		}
		log.Printf("[EXPORT] Wrote %s", *pngPath)
	}
}
