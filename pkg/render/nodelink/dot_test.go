package nodelink

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/tierpyramid/pkg/tier"
)

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(tier.Default(), Options{})

	for _, want := range []string{
		"digraph G",
		`"AAA" [label="AAA", fillcolor=`,
		`"AAA" -> "AA";`,
		`"C+" -> "C";`,
		"subgraph cluster_0",
		`label="Tier 1 Premium";`,
		`color="#dc2626";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %q", want)
		}
	}
	if got := strings.Count(dot, " -> "); got != 11 {
		t.Errorf("ToDOT() has %d edges, want 11", got)
	}
	if got := strings.Count(dot, "subgraph cluster_"); got != 3 {
		t.Errorf("ToDOT() has %d clusters, want 3", got)
	}
	if strings.Contains(dot, "penwidth=3") {
		t.Error("ToDOT() highlighted a level without selection")
	}
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT(tier.Default(), Options{Detailed: true})
	if !strings.Contains(dot, `label="AAA\n100%"`) {
		t.Errorf("ToDOT() detailed label missing bankability:\n%s", dot)
	}
	if !strings.Contains(dot, `label="C\n5%"`) {
		t.Errorf("ToDOT() detailed label missing bankability for C:\n%s", dot)
	}
}

func TestToDOT_Selected(t *testing.T) {
	dot := ToDOT(tier.Default(), Options{Selected: "BB"})
	if got := strings.Count(dot, "penwidth=3"); got != 1 {
		t.Fatalf("ToDOT() highlighted %d levels, want 1", got)
	}
	for _, line := range strings.Split(dot, "\n") {
		if strings.Contains(line, "penwidth=3") && !strings.Contains(line, `"BB" [`) {
			t.Errorf("wrong level highlighted: %s", line)
		}
	}
}

func TestToDOT_Ungrouped(t *testing.T) {
	c := tier.Catalog{Levels: []tier.Level{{ID: "X", Color: "#000"}, {ID: "Y", Color: "#fff"}}}
	dot := ToDOT(c, Options{})
	if strings.Contains(dot, "subgraph") {
		t.Error("ToDOT() emitted a cluster for a catalog without groups")
	}
	if !strings.Contains(dot, `"X" -> "Y";`) || !strings.Contains(dot, `"Y" [`) {
		t.Errorf("ToDOT() missing ungrouped levels:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %s, want %s", got, want)
	}

	plain := []byte(`<svg><g/></svg>`)
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("normalizeViewBox() changed an SVG without view box")
	}
}

func TestRenderSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz rendering in short mode")
	}
	svg, err := RenderSVG(context.Background(), ToDOT(tier.Default(), Options{Selected: "A"}))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(string(svg)), "<") || !strings.Contains(string(svg), "<svg") {
		t.Errorf("RenderSVG() did not return SVG: %.200s", svg)
	}
	if !strings.Contains(string(svg), "CCC+") {
		t.Error("RenderSVG() output missing level label")
	}
}

func TestRenderSVG_InvalidDOT(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz rendering in short mode")
	}
	if _, err := RenderSVG(context.Background(), "digraph {"); err == nil {
		t.Error("RenderSVG() accepted broken DOT")
	}
}
