package views

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

func RenderPage(w io.Writer, p Page) error {
	return templates.ExecuteTemplate(w, "page", p)
}

func RenderConfirm(w io.Writer, c Confirm) error {
	return templates.ExecuteTemplate(w, "confirm", c)
}
