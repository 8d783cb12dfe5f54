package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/tierpyramid/pkg/render/pyramid/layout"
	"github.com/matzehuels/tierpyramid/pkg/render/pyramid/styles"
)

const bandInteractionCSS = `
    .band { cursor: pointer; transition: opacity 0.3s ease, stroke 0.3s ease, filter 0.3s ease; }
    .band-label { user-select: none; }`

// bandInteractionJS repaints the bands with the same state rules the static
// render uses. The glow filter and the selected scale apply only to bands
// that carry data-color; a band that is a group is repainted through its
// first path.
var bandInteractionJS = fmt.Sprintf(`
    (function () {
      const bands = Array.from(document.querySelectorAll('.band'));
      let selected = bands.findIndex(b => b.classList.contains('selected'));
      let hovered = -1;
      function outline(b) {
        return b.tagName.toLowerCase() === 'g' ? b.querySelector('path') : b;
      }
      function paint() {
        bands.forEach((b, i) => {
          const isSel = i === selected, isHov = i === hovered;
          const lit = isSel || isHov || selected < 0;
          b.style.opacity = lit ? 1 : %[1]g;
          b.classList.toggle('selected', isSel);
          b.classList.toggle('hovered', isHov);
          const o = outline(b);
          o.setAttribute('stroke', isSel ? '%[2]s' : isHov ? '%[3]s' : '%[4]s');
          o.setAttribute('stroke-width', isSel ? '%.1[5]f' : '%.1[6]f');
          const color = b.dataset.color;
          if (color === undefined) return;
          b.style.filter = isSel ? 'drop-shadow(0 0 10px ' + color + ')'
            : isHov ? 'drop-shadow(0 0 12px ' + color + 'A0)' : '';
          if (isSel) {
            const cx = b.dataset.cx, cy = b.dataset.cy;
            b.setAttribute('transform', 'translate(' + cx + ' ' + cy + ') scale(%.2[7]f) translate(' + -cx + ' ' + -cy + ')');
          } else {
            b.removeAttribute('transform');
          }
        });
      }
      bands.forEach((b, i) => {
        b.addEventListener('mouseenter', () => { hovered = i; paint(); });
        b.addEventListener('mouseleave', () => { hovered = -1; paint(); });
        b.addEventListener('click', () => { selected = i; paint(); });
      });
    })();`,
	layout.DimmedOpacity, layout.SelectedStroke, layout.HoveredStroke, layout.DefaultStroke,
	layout.SelectedStrokeWidth, layout.DefaultStrokeWidth, styles.SelectedScale)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style       styles.Style
	interactive bool
	title       string
	description string
}

func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }
func WithInteraction() SVGOption         { return func(r *svgRenderer) { r.interactive = true } }
func WithTitle(s string) SVGOption       { return func(r *svgRenderer) { r.title = s } }
func WithDescription(s string) SVGOption { return func(r *svgRenderer) { r.description = s } }

// RenderSVG draws the layout. It does not modify l and is safe to call
// concurrently.
func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	w, h := l.ViewBox()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f" style="overflow:visible">`+"\n",
		w, h, w, h)
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", styles.EscapeXML(r.title))
	}
	if r.description != "" {
		fmt.Fprintf(&buf, "  <desc>%s</desc>\n", styles.EscapeXML(r.description))
	}

	r.style.RenderDefs(&buf)

	bands := buildBands(l)
	buf.WriteString(`  <g class="bands">` + "\n")
	for _, b := range bands {
		r.style.RenderBand(&buf, b)
	}
	for _, b := range bands {
		r.style.RenderLabel(&buf, b)
	}
	buf.WriteString("  </g>\n")

	buf.WriteString(`  <g class="brackets">` + "\n")
	for _, b := range buildBrackets(l) {
		r.style.RenderBracket(&buf, b)
	}
	buf.WriteString("  </g>\n")

	if r.interactive {
		renderBandInteraction(&buf)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Glow{}}
	for _, opt := range opts {
		opt(&r)
	}
	if r.style == nil {
		r.style = styles.Glow{}
	}
	return r
}

func renderBandInteraction(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  <style>%s\n  </style>\n", bandInteractionCSS)
	fmt.Fprintf(buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", bandInteractionJS)
}

func buildBands(l layout.Layout) []styles.Band {
	bands := make([]styles.Band, 0, len(l.Bands))
	for _, b := range l.Bands {
		bands = append(bands, styles.Band{
			ID:          b.LevelID,
			Index:       b.Index,
			Label:       b.Label,
			Path:        b.Path,
			Color:       b.Color,
			CX:          b.LabelAnchor.X,
			CY:          b.LabelAnchor.Y,
			Opacity:     b.State.Opacity,
			Stroke:      b.State.StrokeColor,
			StrokeWidth: b.State.StrokeWidth,
			Glow:        b.State.Glow,
			Selected:    b.State.Selected,
			Hovered:     b.State.Hovered,
		})
	}
	return bands
}

func buildBrackets(l layout.Layout) []styles.Bracket {
	brackets := make([]styles.Bracket, 0, len(l.Brackets))
	for _, b := range l.Brackets {
		brackets = append(brackets, styles.Bracket{
			Group:    b.Group,
			Path:     b.Path,
			Lines:    b.LabelLines,
			X:        b.LabelAnchor.X,
			Y:        b.LabelAnchor.Y,
			FontSize: l.Config.LabelFontSize,
			Color:    b.Color,
		})
	}
	return brackets
}
