package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/ren/wsi"
)

func TestDefaultOptions(t *testing.T) {
	env := newTestEnv()
	env.win.batches = [][]wsi.Event{{wsi.CloseEvent{Time: 1}}}

	if err := Run(&countApp{}, env.options()...); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	want := wsi.Config{
		Title:        filepath.Base(os.Args[0]),
		Width:        856,
		Height:       482,
		VersionMajor: 4,
		VersionMinor: 5,
	}
	if diff := cmp.Diff(want, env.cfg); diff != "" {
		t.Errorf("window hints mismatch (-want +got):\n%s", diff)
	}
}

func TestOptionsOverride(t *testing.T) {
	env := newTestEnv()
	env.win.batches = [][]wsi.Event{{wsi.CloseEvent{Time: 1}}}

	err := Run(&countApp{}, env.options(
		WithTitle("viewer"),
		WithSize(1280, 720),
		WithVersion(4, 6),
		WithDebug(true),
	)...)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	want := wsi.Config{
		Title:        "viewer",
		Width:        1280,
		Height:       720,
		VersionMajor: 4,
		VersionMinor: 6,
		Debug:        true,
	}
	if diff := cmp.Diff(want, env.cfg); diff != "" {
		t.Errorf("window hints mismatch (-want +got):\n%s", diff)
	}
}
