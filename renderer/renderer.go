// Package renderer renders portfolio reports to markdown. Rendering is kept
// apart from the operations themselves: the manager returns outcome values,
// and only the front-ends decide how they look.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// ListingMarkdown renders the full portfolio listing to a markdown string.
func ListingMarkdown(l *Listing) string {
	return renderTemplate("listing", "templates/listing.md", l)
}

// StockMarkdown renders a single stock's detail block to a markdown string.
func StockMarkdown(s *Stock) string {
	return renderTemplate("stock", "templates/stock.md", s)
}

// renderTemplate is a small utility to render one embedded template file.
func renderTemplate(templateName, file string, data any) string {
	content, err := fs.ReadFile(templates, file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}

	tmpl, err := template.New(templateName).Funcs(template.FuncMap{
		"join": strings.Join,
	}).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
