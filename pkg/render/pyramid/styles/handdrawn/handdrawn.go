// Package handdrawn provides a sketchy, pencil-on-paper pyramid style.
//
// Band outlines are roughened with a seeded turbulence filter and traced a
// second time with a small per-band offset, so the same seed always
// produces the same drawing.
//
//	svg := sink.RenderSVG(l, sink.WithStyle(handdrawn.New(42)))
package handdrawn

import (
	"bytes"
	"fmt"
	"hash/fnv"

	"github.com/matzehuels/tierpyramid/pkg/render/pyramid/styles"
)

const (
	fontFamily   = "xkcd Script, Comic Sans MS, cursive"
	ink          = "#2a2a2a"
	maxJitter    = 1.5
	displacement = 3.0
)

// HandDrawn is a seeded sketch style.
type HandDrawn struct {
	seed uint64
}

// New returns a hand-drawn style. Equal seeds render identically.
func New(seed uint64) *HandDrawn { return &HandDrawn{seed: seed} }

func (h *HandDrawn) RenderDefs(buf *bytes.Buffer) {
	fmt.Fprintf(buf, `  <defs>
    <filter id="sketch" x="-5%%" y="-5%%" width="110%%" height="110%%">
      <feTurbulence type="fractalNoise" baseFrequency="0.03" numOctaves="2" seed="%d" result="noise"/>
      <feDisplacementMap in="SourceGraphic" in2="noise" scale="%.1f" xChannelSelector="R" yChannelSelector="G"/>
    </filter>
  </defs>
`, h.seed%10000, displacement)
}

func (h *HandDrawn) RenderBand(buf *bytes.Buffer, b styles.Band) {
	dx, dy := h.jitter(b.ID)
	fmt.Fprintf(buf, `  <g id="%s" class="%s" data-index="%d" opacity="%.2f">`+"\n",
		styles.BandID(b.ID), styles.BandClass(b), b.Index, b.Opacity)
	fmt.Fprintf(buf, `    <path d="%s" fill="%s" stroke="%s" stroke-width="%.1f" filter="url(#sketch)"/>`+"\n",
		b.Path, b.Color, b.Stroke, b.StrokeWidth)
	fmt.Fprintf(buf, `    <path d="%s" fill="none" stroke="%s" stroke-width="1" stroke-opacity="0.6" transform="translate(%.2f %.2f)" filter="url(#sketch)"/>`+"\n",
		b.Path, ink, dx, dy)
	buf.WriteString("  </g>\n")
}

func (h *HandDrawn) RenderLabel(buf *bytes.Buffer, b styles.Band) {
	styles.RenderLabelText(buf, b, fontFamily)
}

func (h *HandDrawn) RenderBracket(buf *bytes.Buffer, b styles.Bracket) {
	styles.RenderBracketShape(buf, b, fontFamily)
}

// jitter returns a deterministic offset in [-maxJitter, maxJitter] for the
// second outline of a band.
func (h *HandDrawn) jitter(id string) (dx, dy float64) {
	v := hash(id, h.seed)
	dx = (float64(v&0xffff)/0xffff*2 - 1) * maxJitter
	dy = (float64(v>>16&0xffff)/0xffff*2 - 1) * maxJitter
	return dx, dy
}

func hash(id string, seed uint64) uint64 {
	f := fnv.New64a()
	f.Write([]byte(id))
	return f.Sum64() ^ seed*0x9e3779b97f4a7c15
}
