package styles

import (
	"bytes"
	"fmt"
)

// Simple draws bands with flat fills and no filters.
type Simple struct{}

func (Simple) RenderDefs(buf *bytes.Buffer) {}

func (Simple) RenderBand(buf *bytes.Buffer, b Band) {
	fmt.Fprintf(buf, `  <path id="%s" class="%s" data-index="%d" d="%s" fill="%s" stroke="%s" stroke-width="%.1f" opacity="%.2f"/>`+"\n",
		BandID(b.ID), BandClass(b), b.Index, b.Path, b.Color, b.Stroke, b.StrokeWidth, b.Opacity)
}

func (Simple) RenderLabel(buf *bytes.Buffer, b Band) { RenderLabelText(buf, b, "") }

func (Simple) RenderBracket(buf *bytes.Buffer, b Bracket) { RenderBracketShape(buf, b, "") }
