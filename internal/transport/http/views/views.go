// Package views holds the server-rendered HTML pages.
package views

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Colors are the palette offered when creating an account.
var Colors = []string{"teal", "coral", "gold", "olive", "navy", "plum"}

// Templates parses every page. Each page template is named after its file.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(files, "templates/*.html"))
}
