package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/tierpyramid/pkg/pipeline"
)

func TestBasePath(t *testing.T) {
	tests := []struct {
		output string
		want   string
	}{
		{"", "pyramid"},
		{"-", "pyramid"},
		{"out/scale", "out/scale"},
		{"out/scale.svg", "out/scale"},
		{"scale.png", "scale"},
		{"scale.v2", "scale.v2"},
	}
	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			if got := basePath(tt.output); got != tt.want {
				t.Errorf("basePath(%q) = %q, want %q", tt.output, got, tt.want)
			}
		})
	}
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		formats []string
		want    map[string]string
	}{
		{
			name:    "default single",
			formats: []string{"svg"},
			want:    map[string]string{"svg": "pyramid.svg"},
		},
		{
			name:    "explicit single keeps name",
			output:  "tiers.image",
			formats: []string{"svg"},
			want:    map[string]string{"svg": "tiers.image"},
		},
		{
			name:    "stdout",
			output:  "-",
			formats: []string{"json"},
			want:    map[string]string{"json": "-"},
		},
		{
			name:    "multiple from base",
			output:  "out/scale.svg",
			formats: []string{"svg", "png", "json"},
			want:    map[string]string{"svg": "out/scale.svg", "png": "out/scale.png", "json": "out/scale.json"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPaths(tt.output, tt.formats)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("outputPaths() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderOptionsFlagsOverrideConfig(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	c.cfg = config{Width: 500, Height: 700, TopWidth: 90, CornerRadius: pipeline.Float64(5), Style: "simple"}

	cmd := c.renderCommand()
	if err := cmd.ParseFlags([]string{"--height", "650", "-f", "svg,json", "--selected", "BB"}); err != nil {
		t.Fatal(err)
	}

	var f renderFlags
	f.height = 650
	f.formats = "svg,json"
	f.selected = "BB"
	f.vizType = pipeline.DefaultVizType
	f.style = pipeline.DefaultStyle

	opts := c.renderOptions(cmd, &f)
	if opts.Width != 500 {
		t.Errorf("Width = %v, want config value 500", opts.Width)
	}
	if opts.Height != 650 {
		t.Errorf("Height = %v, want flag value 650", opts.Height)
	}
	if got := opts.Config().CornerRadius; got != 5 {
		t.Errorf("CornerRadius = %v, want config value 5", got)
	}
	if opts.Style != "simple" {
		t.Errorf("Style = %q, want config value simple", opts.Style)
	}
	if diff := cmp.Diff([]string{"svg", "json"}, opts.Formats); diff != "" {
		t.Errorf("Formats mismatch (-want +got):\n%s", diff)
	}
	if opts.Selected != "BB" {
		t.Errorf("Selected = %q, want BB", opts.Selected)
	}
}

func TestRenderCommandWritesFiles(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "scale")

	var out bytes.Buffer
	c := New(&out, LogInfo)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{
		"--config", filepath.Join(dir, "none.toml"),
		"render", "--no-cache", "-f", "svg,json,dot", "-o", base, "--selected", "A",
	})
	if err := root.Execute(); err != nil {
		t.Fatalf("render error: %v", err)
	}

	svg, err := os.ReadFile(base + ".svg")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(svg), `data-index="`); got != 12 {
		t.Errorf("svg has %d bands, want 12", got)
	}

	js, err := os.ReadFile(base + ".json")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(js), `"selected": "A"`) {
		t.Errorf("json missing selection:\n%s", js)
	}

	dot, err := os.ReadFile(base + ".dot")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(dot), "digraph") {
		t.Errorf("dot output starts with %q", string(dot)[:min(20, len(dot))])
	}
}

func TestRenderCommandSharpCorners(t *testing.T) {
	tests := []struct {
		name   string
		config string
		args   []string
	}{
		{"flag", "", []string{"--corner-radius", "0"}},
		{"config", "corner-radius = 0\n", nil},
		{"flag overrides config", "corner-radius = 12\n", []string{"--corner-radius", "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			cfgPath := filepath.Join(dir, "config.toml")
			if tt.config != "" {
				if err := os.WriteFile(cfgPath, []byte(tt.config), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			path := filepath.Join(dir, "pyramid.json")

			captureStdout(t)
			c := New(io.Discard, LogInfo)
			root := c.RootCommand()
			root.SetOut(io.Discard)
			root.SetErr(io.Discard)
			args := []string{"--config", cfgPath, "render", "--no-cache", "-f", "json", "-o", path}
			root.SetArgs(append(args, tt.args...))
			if err := root.Execute(); err != nil {
				t.Fatalf("render error: %v", err)
			}

			js, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(string(js), "Q 240.00,0.00 240.00,0.00") {
				t.Errorf("top band should have degenerate corners:\n%s", js)
			}
		})
	}
}

func TestRenderCommandInvalidStyle(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "none.toml"), "render", "--no-cache", "--style", "neon"})
	if err := root.Execute(); err == nil {
		t.Error("render with unknown style should fail")
	}
}
