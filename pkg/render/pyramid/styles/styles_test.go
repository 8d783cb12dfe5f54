package styles

import (
	"bytes"
	"strings"
	"testing"
)

func testBand() Band {
	return Band{
		ID:          "AAA",
		Index:       0,
		Label:       "AAA",
		Path:        "M 180.00,0.00 Z",
		Color:       "#22c55e",
		CX:          200,
		CY:          25,
		Opacity:     1,
		Stroke:      "#1f2937",
		StrokeWidth: 2.5,
		Glow:        "drop-shadow(0 0 10px #22c55e)",
		Selected:    true,
	}
}

func TestSimpleRenderDefs(t *testing.T) {
	var buf bytes.Buffer
	Simple{}.RenderDefs(&buf)
	if buf.Len() != 0 {
		t.Errorf("RenderDefs() wrote %d bytes, want 0", buf.Len())
	}
}

func TestRenderBand(t *testing.T) {
	tests := []struct {
		name     string
		style    Style
		band     Band
		contains []string
		excludes []string
	}{
		{
			name:  "simple selected",
			style: Simple{},
			band:  testBand(),
			contains: []string{
				`<path id="band-AAA"`,
				`class="band selected"`,
				`data-index="0"`,
				`d="M 180.00,0.00 Z"`,
				`fill="#22c55e"`,
				`stroke="#1f2937"`,
				`stroke-width="2.5"`,
				`opacity="1.00"`,
			},
			excludes: []string{"drop-shadow", "transform"},
		},
		{
			name:  "glow selected",
			style: Glow{},
			band:  testBand(),
			contains: []string{
				`<path id="band-AAA" class="band selected"`,
				`data-color="#22c55e" data-cx="200.00" data-cy="25.00"`,
				`style="opacity:1.00;filter:drop-shadow(0 0 10px #22c55e)"`,
				`scale(1.05)`,
			},
		},
		{
			name:  "glow dimmed",
			style: Glow{},
			band: Band{
				ID: "B", Index: 5, Path: "M 0.00,0.00 Z", Color: "#eab308",
				Opacity: 0.5, Stroke: "white", StrokeWidth: 2,
			},
			contains: []string{`class="band"`, `style="opacity:0.50"`},
			excludes: []string{"filter:", "transform"},
		},
		{
			name:     "special chars in id",
			style:    Simple{},
			band:     Band{ID: "C<+>", Path: "M 0.00,0.00 Z"},
			contains: []string{`id="band-C&lt;+&gt;"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.style.RenderBand(&buf, tt.band)
			out := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("RenderBand() output missing %q\nGot: %s", want, out)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(out, bad) {
					t.Errorf("RenderBand() output contains %q\nGot: %s", bad, out)
				}
			}
		})
	}
}

func TestRenderLabel(t *testing.T) {
	var buf bytes.Buffer
	b := testBand()
	b.Label = "CCC+"
	Glow{}.RenderLabel(&buf, b)
	out := buf.String()

	for _, want := range []string{
		`x="200.00"`, `y="25.00"`,
		`text-anchor="middle"`,
		`font-size="26"`, `font-weight="bold"`,
		`stroke="white"`, `stroke-width="0.75"`, `paint-order="stroke"`,
		`>CCC+</text>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderLabel() output missing %q\nGot: %s", want, out)
		}
	}
	if strings.Contains(out, "font-family") {
		t.Errorf("RenderLabel() should not set a font family: %s", out)
	}
}

func TestRenderBracket(t *testing.T) {
	var buf bytes.Buffer
	Simple{}.RenderBracket(&buf, Bracket{
		Group:    "Tier 1 Premium",
		Path:     "M 410.00,0.00 L 420.00,0.00 L 420.00,150.00 L 410.00,150.00",
		Lines:    []string{"Tier 1", "Premium"},
		X:        432,
		Y:        65,
		FontSize: 20,
		Color:    "#15803d",
	})
	out := buf.String()

	for _, want := range []string{
		`data-group="Tier 1 Premium"`,
		`stroke="#15803d"`, `stroke-width="2.5"`, `stroke-linecap="round"`,
		`font-size="20"`, `font-weight="600"`, `fill="#15803d"`,
		`<tspan x="432.00" y="65.00">Tier 1</tspan>`,
		`<tspan x="432.00" y="89.00">Premium</tspan>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderBracket() output missing %q\nGot: %s", want, out)
		}
	}
}

func TestBandClass(t *testing.T) {
	tests := []struct {
		band Band
		want string
	}{
		{Band{}, "band"},
		{Band{Selected: true}, "band selected"},
		{Band{Hovered: true}, "band hovered"},
		{Band{Selected: true, Hovered: true}, "band selected hovered"},
	}
	for _, tt := range tests {
		if got := BandClass(tt.band); got != tt.want {
			t.Errorf("BandClass(%+v) = %q, want %q", tt.band, got, tt.want)
		}
	}
}

func TestEscapeXML(t *testing.T) {
	if got := EscapeXML(`a<b>&"c"`); got != "a&lt;b&gt;&amp;&#34;c&#34;" {
		t.Errorf("EscapeXML() = %q", got)
	}
}
