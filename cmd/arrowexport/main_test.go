package main

import (
	"io"
	"log"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"ArrowBoard/internal/config"
	"ArrowBoard/internal/geom"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestParsePoints(t *testing.T) {
	got, err := parsePoints(" 10,10  40,30\t100,-2.5 ")
	if err != nil {
		t.Fatal(err)
	}
	want := []geom.Point{geom.Pt(10, 10), geom.Pt(40, 30), geom.Pt(100, -2.5)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parsePoints (-want +got):\n%s", diff)
	}

	for _, bad := range []string{"", "10", "a,1", "1,b"} {
		if _, err := parsePoints(bad); err == nil {
			t.Errorf("parsePoints(%q) succeeded", bad)
		}
	}
}

func TestPointListsFlag(t *testing.T) {
	var l pointLists
	if err := l.Set("0,0 5,5"); err != nil {
		t.Fatal(err)
	}
	if err := l.Set("1,1"); err != nil {
		t.Fatal(err)
	}
	if len(l) != 2 || len(l[0]) != 2 || len(l[1]) != 1 {
		t.Fatalf("pointLists = %v", l)
	}
}

func TestBuildBoard(t *testing.T) {
	cfg := config.Default()
	cfg.Settings.Tolerance = 0
	board := buildBoard(cfg, [][]geom.Point{
		demoArrow,
		{geom.Pt(0, 0), geom.Pt(50, 0), geom.Pt(100, 0)},
		{geom.Pt(7, 7)},
	})

	arrows := board.Arrows()
	if len(arrows) != 3 {
		t.Fatalf("got %d arrows, want 3", len(arrows))
	}
	if diff := cmp.Diff(demoArrow, arrows[0].Points); diff != "" {
		t.Errorf("demo arrow changed at zero tolerance (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]geom.Point{geom.Pt(0, 0), geom.Pt(100, 0)}, arrows[1].Points); diff != "" {
		t.Errorf("collinear arrow (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]geom.Point{geom.Pt(7, 7), geom.Pt(7, 7)}, arrows[2].Points); diff != "" {
		t.Errorf("single point arrow (-want +got):\n%s", diff)
	}
}
