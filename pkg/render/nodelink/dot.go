package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/tierpyramid/pkg/errors"
	"github.com/matzehuels/tierpyramid/pkg/render"
	"github.com/matzehuels/tierpyramid/pkg/tier"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the bankability percentage to node labels.
	// When false, only the level label is shown.
	Detailed bool
	// Selected is the id of the level to highlight; empty for none.
	Selected string
}

const dotHeader = `digraph G {
  rankdir=TB;
  bgcolor="transparent";
  ranksep=0.3;
  nodesep=0.3;
  node [shape=box, style="rounded,filled", fontsize=20, fontcolor="#1f2937", margin="0.2,0.1"];
`

// ToDOT writes the scale as a Graphviz chain from best to worst level.
// Every group becomes a cluster drawn in the group color.
func ToDOT(c tier.Catalog, opts Options) string {
	var b strings.Builder
	b.WriteString(dotHeader)

	clustered := make(map[int]bool, c.Len())
	for k, g := range c.Groups {
		fmt.Fprintf(&b, "\n  subgraph cluster_%d {\n", k)
		fmt.Fprintf(&b, "    label=%q; color=%q; fontcolor=%q; penwidth=2;\n",
			strings.Join(g.LabelLines, " "), g.Color, g.Color)
		for i := g.StartLevel; i < min(g.EndLevel, c.Len()); i++ {
			b.WriteString("    " + node(c, i, opts))
			clustered[i] = true
		}
		b.WriteString("  }\n")
	}
	for i := range c.Levels {
		if !clustered[i] {
			b.WriteString("  " + node(c, i, opts))
		}
	}

	b.WriteString("\n")
	for i := 1; i < c.Len(); i++ {
		fmt.Fprintf(&b, "  %q -> %q;\n", c.Levels[i-1].ID, c.Levels[i].ID)
	}
	b.WriteString("}\n")
	return b.String()
}

// node returns the statement of level i, terminated by a newline.
func node(c tier.Catalog, i int, opts Options) string {
	lvl := c.Levels[i]
	label := lvl.DisplayLabel()
	if opts.Detailed {
		label = fmt.Sprintf("%s\n%.0f%%", label, c.Bankability(i))
	}
	border := `color="white"`
	if opts.Selected != "" && lvl.ID == opts.Selected {
		border = `penwidth=3, color="#1f2937"`
	}
	return fmt.Sprintf("%q [label=%q, fillcolor=%q, %s];\n", lvl.ID, label, lvl.Color, border)
}

// RenderSVG lays out dot with the embedded Graphviz (WASM) and returns SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render DOT")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's <svg> tag (point units, odd origin)
// with one sized from its view box.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}

// RenderPDF lays out dot with Graphviz and converts the SVG with librsvg.
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	return convert(ctx, dot, func(svg []byte) ([]byte, error) { return render.ToPDF(ctx, svg) })
}

// RenderPNG is RenderPDF for PNG output at the given scale.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	return convert(ctx, dot, func(svg []byte) ([]byte, error) { return render.ToPNG(ctx, svg, scale) })
}

func convert(ctx context.Context, dot string, to func([]byte) ([]byte, error)) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return to(svg)
}
