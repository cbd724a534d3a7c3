package dashboard

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageTemplate is the full dashboard page; the rest are region fragments.
const PageTemplate = "page.html"

// Templates parses the embedded page and fragment templates. Each template
// is named after its file.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}
