package styles

import (
	"bytes"
	"fmt"
)

// SelectedScale enlarges the selected band around its center.
const SelectedScale = 1.05

// Glow draws bands with CSS drop-shadow glows on the selected and hovered
// bands and lifts the selected band slightly. Each band carries its fill
// color and center as data attributes so scripts can repaint the glow.
type Glow struct{}

func (Glow) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <defs>
    <filter id="pyramid-shadow" x="-10%" y="-10%" width="120%" height="130%">
      <feDropShadow dx="0" dy="4" stdDeviation="4" flood-opacity="0.15"/>
    </filter>
  </defs>
`)
}

func (Glow) RenderBand(buf *bytes.Buffer, b Band) {
	transform := ""
	if b.Selected {
		transform = fmt.Sprintf(` transform="translate(%.2f %.2f) scale(%.2f) translate(%.2f %.2f)"`,
			b.CX, b.CY, SelectedScale, -b.CX, -b.CY)
	}
	style := fmt.Sprintf("opacity:%.2f", b.Opacity)
	if b.Glow != "" {
		style += ";filter:" + b.Glow
	}
	fmt.Fprintf(buf, `  <path id="%s" class="%s" data-index="%d" data-color="%s" data-cx="%.2f" data-cy="%.2f" d="%s" fill="%s" stroke="%s" stroke-width="%.1f" style="%s"%s/>`+"\n",
		BandID(b.ID), BandClass(b), b.Index, EscapeXML(b.Color), b.CX, b.CY, b.Path, b.Color, b.Stroke, b.StrokeWidth, style, transform)
}

func (Glow) RenderLabel(buf *bytes.Buffer, b Band) { RenderLabelText(buf, b, "") }

func (Glow) RenderBracket(buf *bytes.Buffer, b Bracket) { RenderBracketShape(buf, b, "") }
