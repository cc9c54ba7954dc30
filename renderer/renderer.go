// Package renderer renders job reports as markdown, using the templates
// embedded in this package.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed *.md
var templates embed.FS

// reportPartials are the sections of a report, by template name.
var reportPartials = map[string]string{
	"report_title":   "report_title.md",
	"report_jobs":    "report_jobs.md",
	"report_summary": "report_summary.md",
}

// RenderReport renders the full report: title, jobs table and summary.
func RenderReport(r *Report) string {
	return renderTemplate("report", "report.md", reportPartials, r)
}

// RenderJobs renders only the jobs table of r.
func RenderJobs(r *Report) string {
	return renderTemplate("jobs", "jobs.md", reportPartials, r)
}

// RenderSummary renders only the summary of r.
func RenderSummary(r *Report) string {
	return renderTemplate("summary", "summary.md", reportPartials, r)
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
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
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
