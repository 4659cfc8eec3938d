package handlers

import (
	"embed"
	"html/template"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/jsamuelsen/quotebook/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates. Install the result with
// gin.Engine.SetHTMLTemplate.
func Templates() *template.Template {
	return template.Must(template.New("pages").Funcs(templateFuncs()).ParseFS(templateFS, "templates/*.html"))
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"comma": humanize.Comma,
		"ago": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}

			return humanize.Time(t)
		},
		"fieldErrors": func(errs domain.ValidationErrors, field string) []string {
			return errs[field]
		},
	}
}
