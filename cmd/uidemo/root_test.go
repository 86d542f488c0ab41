package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testScene = `
width = 100.0
height = 40.0

[root]
type = "flex"

[[root.children]]
type = "text"
text = "ab"
font_size = 10.0

[[root.children]]
type = "container"
color = "#ff0000"
flex = 1
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLayoutCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	if err := os.WriteFile(path, []byte(testScene), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "layout", "--monospace", path)
	if err != nil {
		t.Fatalf("layout: %v\n%s", err, out)
	}
	for _, want := range []string{"glyph", "rect", "#ff0000ff", "3 shapes"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLayoutCmd_Errors(t *testing.T) {
	if _, err := run(t, "layout", filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("layout of a missing file succeeded")
	}
	if _, err := run(t, "layout"); err == nil {
		t.Error("layout without arguments succeeded")
	}
}

func TestAtlasCmd(t *testing.T) {
	output := filepath.Join(t.TempDir(), "atlas.png")
	out, err := run(t, "atlas", "--monospace", "--size", "12", "--charset", "abc", "-o", output)
	if err != nil {
		t.Fatalf("atlas: %v\n%s", err, out)
	}
	if !strings.Contains(out, "3 glyphs") {
		t.Errorf("output missing glyph count:\n%s", out)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("atlas output is not a PNG")
	}
}
