package styles

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// BandID is the element id of a band: the outline path in the glow and
// simple styles, the wrapping group in the hand-drawn style.
func BandID(id string) string { return "band-" + EscapeXML(id) }

// BandClass returns the CSS classes reflecting a band's state.
func BandClass(b Band) string {
	c := "band"
	if b.Selected {
		c += " selected"
	}
	if b.Hovered {
		c += " hovered"
	}
	return c
}

// RenderLabelText writes a centered, haloed band label. family may be empty.
func RenderLabelText(buf *bytes.Buffer, b Band, family string) {
	font := ""
	if family != "" {
		font = fmt.Sprintf(` font-family="%s"`, EscapeXML(family))
	}
	fmt.Fprintf(buf, `  <text class="band-label" data-band="%s" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="middle" fill="%s" font-size="%.0f" font-weight="bold"%s stroke="%s" stroke-width="%.2f" paint-order="stroke" pointer-events="none">%s</text>`+"\n",
		EscapeXML(b.ID), b.CX, b.CY, LabelColor, LabelFontSize, font, LabelHalo, LabelHaloWidth, EscapeXML(b.Label))
}

// RenderBracketShape writes the bracket line and its stacked label lines.
// family may be empty.
func RenderBracketShape(buf *bytes.Buffer, b Bracket, family string) {
	font := ""
	if family != "" {
		font = fmt.Sprintf(` font-family="%s"`, EscapeXML(family))
	}
	fmt.Fprintf(buf, `  <g class="bracket" data-group="%s">`+"\n", EscapeXML(b.Group))
	fmt.Fprintf(buf, `    <path d="%s" fill="none" stroke="%s" stroke-width="%.1f" stroke-linecap="round"/>`+"\n",
		b.Path, b.Color, BracketStrokeWidth)
	fmt.Fprintf(buf, `    <text dominant-baseline="middle" text-anchor="start" font-size="%.0f" font-weight="%d" fill="%s"%s>`,
		b.FontSize, BracketFontWeight, b.Color, font)
	for k, line := range b.Lines {
		y := b.Y + float64(k)*b.FontSize*lineSpacingEm
		fmt.Fprintf(buf, `<tspan x="%.2f" y="%.2f">%s</tspan>`, b.X, y, EscapeXML(line))
	}
	buf.WriteString("</text>\n  </g>\n")
}
