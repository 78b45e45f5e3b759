// SPDX-License-Identifier: MIT

package report

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/report.html.tmpl
var templateFS embed.FS

var reportTemplate = template.Must(template.ParseFS(templateFS, "templates/report.html.tmpl"))

type htmlData struct {
	Lang    string
	Doc     document
	Palette []template.CSS
}

// RenderHTML writes the report as a standalone printable HTML document. Cells
// carry bg-color-N classes so matching positions share a color in print.
func RenderHTML(w io.Writer, r *Report) error {
	data := htmlData{
		Lang:    r.Language().String(),
		Doc:     r.document(),
		Palette: make([]template.CSS, len(Palette)),
	}
	for i, c := range Palette {
		data.Palette[i] = template.CSS(c)
	}
	if err := reportTemplate.ExecuteTemplate(w, "report.html.tmpl", data); err != nil {
		return fmt.Errorf("report: render html: %w", err)
	}

	return nil
}
