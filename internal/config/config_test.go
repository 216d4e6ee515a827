package config

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"ArrowBoard/internal/geom"
	"ArrowBoard/internal/snap"
	"ArrowBoard/internal/state"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

var ignorePath = cmpopts.IgnoreUnexported(Config{})

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "config.json")
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d := cmp.Diff(Default(), c, ignorePath); d != "" {
		t.Error(d)
	}
	if c.Path() != path {
		t.Errorf("Path = %q, want %q", c.Path(), path)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arrowboard", "config.json")
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	c.Settings = state.Settings{Color: "#123456", Thickness: 5, Opacity: 0.4, Tolerance: 25, Snap: true}
	c.Anchors = []snap.Anchor{{Label: "Am", Pos: geom.Pt(10, 20)}}
	c.Export.Scale = 2
	if err := c.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load after save: %v", err)
	}
	if d := cmp.Diff(c, got, ignorePath); d != "" {
		t.Error(d)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"settings": {"color": "red", "opacity": 7}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := state.DefaultSettings()
	want.Color = "red"
	want.Opacity = 1
	if d := cmp.Diff(want, c.Settings); d != "" {
		t.Error(d)
	}
	if c.Export != Default().Export {
		t.Errorf("Export = %+v, want defaults", c.Export)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load accepted invalid JSON")
	}
}
