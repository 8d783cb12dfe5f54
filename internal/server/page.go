package server

import (
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"github.com/matzehuels/tierpyramid/pkg/pipeline"
	"github.com/matzehuels/tierpyramid/pkg/render/pyramid/layout"
	"github.com/matzehuels/tierpyramid/pkg/tier"
)

// ── Base layout ───────────────────────────────────────────────────────────────

const tmplBase = `
{{define "base"}}<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>Bankability Tiers</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:system-ui,sans-serif;background:#f9fafb;color:#1f2937;font-size:14px;line-height:1.5}
a{color:inherit;text-decoration:none}
main{display:flex;gap:32px;padding:24px;flex-wrap:wrap}
h1{font-size:20px;font-weight:700;margin-bottom:12px}
h2{font-size:12px;font-weight:600;color:#6b7280;text-transform:uppercase;letter-spacing:.06em;margin:16px 0 8px}
.pyramid{flex:0 0 auto}
.panel{flex:1;min-width:280px;max-width:420px}
.card{background:#fff;border:1px solid #e5e7eb;border-radius:8px;padding:16px}
.card .tier{font-size:28px;font-weight:800}
.badge{display:inline-block;padding:1px 8px;border-radius:10px;font-size:11px;font-weight:600;color:#fff}
.bar-wrap{background:#e5e7eb;border-radius:4px;height:8px;margin-top:4px}
.bar{border-radius:4px;height:8px;display:block}
.levels{display:flex;gap:4px;flex-wrap:wrap;margin-top:12px}
.levels a{padding:2px 8px;border-radius:4px;border:1px solid #e5e7eb;font-size:12px}
.levels a.active{border-color:#1f2937;font-weight:700}
.tabs{display:flex;gap:6px;margin-bottom:8px}
.tabs a{padding:4px 10px;border-radius:14px;border:1px solid #e5e7eb;font-size:12px}
.tabs a.active{color:#fff}
ul.brands{list-style:none}
ul.brands li{padding:4px 0;border-bottom:1px solid #f3f4f6}
.dim{color:#6b7280}
footer{padding:0 24px 24px;font-size:11px;color:#6b7280;max-width:900px}
</style>
</head>
<body>
<main>
{{template "content" .}}
</main>
{{if .Source}}<footer>{{.Source}}</footer>{{end}}
</body>
</html>{{end}}
`

// ── Index page ────────────────────────────────────────────────────────────────

const tmplIndex = `
{{define "content"}}
<div class="pyramid">
<h1>Bankability Tiers</h1>
{{.SVG}}
</div>
<div class="panel">
  {{with .Detail}}
  <div class="card">
    <div class="tier" style="color:{{.Color}}">{{.DisplayLabel}}</div>
    {{if .Group}}<span class="badge" style="background:{{.GroupColor}}">{{.Group}}</span>{{end}}
    {{if .Premium}}<span class="badge" style="background:#1f2937">premium</span>{{end}}
    <p style="margin-top:8px">{{.Description}}</p>
    <h2>Bankability</h2>
    <div>{{pct .Bankability}}</div>
    <div class="bar-wrap"><span class="bar" style="width:{{pct .Bankability}};background:{{.Color}}"></span></div>
  </div>
  {{else}}
  <div class="card dim">Select a tier.</div>
  {{end}}

  <div class="levels">
  {{range .Levels}}
    <a href="{{$.Link .ID $.Band}}" class="{{if eq .ID $.Selected}}active{{end}}" style="color:{{.Color}}">{{.DisplayLabel}}</a>
  {{end}}
  </div>

  <h2>Manufacturers</h2>
  <div class="tabs">
  {{range .Groups}}
    <a href="{{$.Link $.Selected .Name}}" class="{{if eq .Name $.Band}}active{{end}}" {{if eq .Name $.Band}}style="background:{{.Color}};border-color:{{.Color}}"{{end}}>{{.Name}}</a>
  {{end}}
  </div>
  <ul class="brands">
  {{range .Brands}}<li>{{.Name}}</li>{{else}}<li class="dim">No manufacturers listed.</li>{{end}}
  </ul>
</div>
{{end}}
`

var funcMap = template.FuncMap{
	"pct": func(v float64) string { return fmt.Sprintf("%.1f%%", v) },
}

// pageData is the view model of the index page.
type pageData struct {
	SVG      template.HTML
	Detail   *tier.Detail
	Levels   []tier.Level
	Groups   []tier.Group
	Brands   []tier.Brand
	Selected string
	Band     string
	Source   string
}

// Link builds a query string for the index page.
func (p pageData) Link(selected, band string) string {
	q := url.Values{}
	if selected != "" {
		q.Set("selected", selected)
	}
	if band != "" {
		q.Set("band", band)
	}
	return "/?" + q.Encode()
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	c := s.Catalog()
	opts := s.requestOptions(r)
	opts.Formats = []string{pipeline.FormatSVG}
	opts.Interactive = false

	res, err := s.runner.Render(r.Context(), c, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	data := pageData{
		// rendered by our own SVG sink, all text is escaped there
		SVG:    template.HTML(res.Artifacts[pipeline.FormatSVG]),
		Levels: c.Levels,
		Groups: c.Groups,
		Band:   bandParam(r, c),
		Source: c.Source,
	}
	sel := res.Layout.Selection
	if sel.Selected != layout.None {
		data.Selected = c.Levels[sel.Selected].ID
	}
	if i := sel.Display(); i != layout.None {
		d := c.DetailAt(i)
		data.Detail = &d
	}
	data.Brands = c.BrandsFor(data.Band)

	s.render(w, tmplIndex, data)
}

func (s *Server) render(w http.ResponseWriter, tmplStr string, data any) {
	t, err := template.New("page").Funcs(funcMap).Parse(tmplBase + tmplStr)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, "base", data); err != nil {
		s.logger.Error("template error", "err", err)
	}
}
