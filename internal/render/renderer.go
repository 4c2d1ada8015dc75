// Package render turns invoice content plus presentation settings into a
// standalone HTML document. The invoice region is tagged with the Marker
// class; that class is the sole contract between rendering and capture.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"

	"github.com/rezonia/invoice-builder/internal/model"
	"github.com/rezonia/invoice-builder/internal/money"
)

// Marker is the stable class on the invoice region the capture adapter
// locates at export time.
const Marker = "invoice-canvas"

// Selector is the CSS selector form of Marker
const Selector = "." + Marker

// Renderer produces the full HTML document for one layout
type Renderer interface {
	RenderHTML(data model.InvoiceData, settings model.InvoiceSettings) (string, error)
}

var (
	hexColorPattern  = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	fontFamilyFilter = regexp.MustCompile(`^[A-Za-z0-9 \-]+$`)
)

var funcMap = template.FuncMap{
	"money": money.Format,
	"qty":   money.FormatQuantity,
}

// documentShell is shared by all variants. Variants define "css" and
// "body"; the shell carries the marker div, the settings-driven font and
// alignment, and the dark-mode palette.
const documentShell = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8" />
<title>Invoice {{.Inv.InvoiceNumber}}</title>
<style>
* { box-sizing: border-box; margin: 0; padding: 0; }
html, body { background: {{.Style.PageBg}}; }
.{{.Marker}} {
  width: 800px;
  margin: 0 auto;
  background: {{.Style.Bg}};
  color: {{.Style.Fg}};
  font-family: "{{.Style.FontFamily}}", "Helvetica Neue", Arial, sans-serif;
  font-size: {{.Style.FontSizePx}}px;
  text-align: {{.Style.Align}};
}
.{{.Marker}} .muted { color: {{.Style.Muted}}; }
.{{.Marker}} .pre { white-space: pre-line; }
{{template "css" .}}
</style>
</head>
<body>
<div class="{{.Marker}}">
{{template "body" .}}
</div>
</body>
</html>
`

type style struct {
	Primary    string
	Secondary  string
	FontFamily string
	FontSizePx int
	Align      string
	Bg         string
	PageBg     string
	Fg         string
	Muted      string
}

type pageData struct {
	Inv    model.InvoiceData
	Set    model.InvoiceSettings
	Style  style
	Marker string
}

func buildStyle(set model.InvoiceSettings) style {
	st := style{
		Primary:    "#3b82f6",
		Secondary:  "#64748b",
		FontFamily: "Inter",
		FontSizePx: set.FontSize.Pixels(),
		Align:      "left",
		Bg:         "#ffffff",
		PageBg:     "#f9fafb",
		Fg:         "#111827",
		Muted:      "#6b7280",
	}
	if hexColorPattern.MatchString(set.PrimaryColor) {
		st.Primary = set.PrimaryColor
	}
	if hexColorPattern.MatchString(set.SecondaryColor) {
		st.Secondary = set.SecondaryColor
	}
	if fontFamilyFilter.MatchString(set.FontFamily) {
		st.FontFamily = set.FontFamily
	}
	if set.Alignment.Valid() {
		st.Align = string(set.Alignment)
	}
	if set.DarkMode {
		st.Bg = "#1e293b"
		st.PageBg = "#0f172a"
		st.Fg = "#e2e8f0"
		st.Muted = "#94a3b8"
	}
	return st
}

type htmlRenderer struct {
	tpl *template.Template
}

func (r *htmlRenderer) RenderHTML(data model.InvoiceData, settings model.InvoiceSettings) (string, error) {
	var buf bytes.Buffer
	pd := pageData{
		Inv:    data,
		Set:    settings,
		Style:  buildStyle(settings),
		Marker: Marker,
	}
	if err := r.tpl.Execute(&buf, pd); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// ForVariant returns the renderer for a named layout. The switch is the
// single dispatch point; adding a layout without a case here fails loudly
// for every caller.
func ForVariant(v model.TemplateVariant) (Renderer, error) {
	var src string
	switch v {
	case model.TemplateModern:
		src = modernHTML
	case model.TemplateClassic:
		src = classicHTML
	case model.TemplateMinimal:
		src = minimalHTML
	case model.TemplateCorporate:
		src = corporateHTML
	case model.TemplateCreative:
		src = creativeHTML
	default:
		return nil, fmt.Errorf("unknown template variant %q", v)
	}

	tpl, err := template.New(string(v)).Funcs(funcMap).Parse(documentShell)
	if err != nil {
		return nil, fmt.Errorf("parse document shell: %w", err)
	}
	if _, err := tpl.Parse(src); err != nil {
		return nil, fmt.Errorf("parse %s template: %w", v, err)
	}
	return &htmlRenderer{tpl: tpl}, nil
}

// RenderHTML renders data with the layout named by settings.Template
func RenderHTML(data model.InvoiceData, settings model.InvoiceSettings) (string, error) {
	r, err := ForVariant(settings.Template)
	if err != nil {
		return "", err
	}
	return r.RenderHTML(data, settings)
}
