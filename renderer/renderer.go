// Package renderer turns computed stats into markdown views.
//
// Views are built in two phases: a view model (Summary, Activity) holds every
// value already formatted in the user's language, then an embedded
// text/template lays it out.
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

// RenderSummary renders the summary card.
func RenderSummary(s *Summary) string {
	partials := map[string]string{
		"summary_position": "templates/summary_position.md",
		"summary_market":   "templates/summary_market.md",
	}
	if !s.Valued {
		// An empty file name results in an empty template.
		partials["summary_market"] = ""
	}
	return renderTemplate("summary", "templates/summary.md", partials, s)
}

// RenderActivity renders the activity history.
func RenderActivity(a *Activity) string {
	partials := map[string]string{
		"activity_rows": "templates/activity_rows.md",
	}
	if len(a.Rows) == 0 {
		partials["activity_rows"] = "templates/activity_empty.md"
	}
	return renderTemplate("activity", "templates/activity.md", partials, a)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
