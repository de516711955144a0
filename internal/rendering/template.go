package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

//go:embed templates/*.gohtml
var templateFiles embed.FS

// Layout renders a document and color scheme into a standalone HTML page.
// All layouts surface the same facts for the same input; only arrangement,
// grouping, and typography differ.
type Layout interface {
	Name() types.Template
	Render(doc types.ResumeDocument, scheme types.ColorScheme) (string, error)
}

// htmlLayout is a Layout backed by an embedded html/template file.
type htmlLayout struct {
	name types.Template
	tmpl *template.Template
}

var layouts = map[types.Template]*htmlLayout{}

func init() {
	for _, name := range types.Templates {
		file := "templates/" + strings.ReplaceAll(string(name), "-", "_") + ".gohtml"
		tmpl, err := template.New(string(name)).Funcs(template.FuncMap{
			"join": strings.Join,
		}).ParseFS(templateFiles, file)
		if err != nil {
			panic(fmt.Sprintf("failed to parse layout %s: %v", name, err))
		}
		layouts[name] = &htmlLayout{name: name, tmpl: tmpl}
	}
}

// ForTemplate returns the layout registered under a template name.
func ForTemplate(name types.Template) (Layout, error) {
	layout, ok := layouts[name]
	if !ok {
		return nil, &UnknownLayoutError{Name: string(name)}
	}
	return layout, nil
}

// All returns every registered layout in display order.
func All() []Layout {
	out := make([]Layout, 0, len(types.Templates))
	for _, name := range types.Templates {
		out = append(out, layouts[name])
	}
	return out
}

// Name returns the template name this layout is registered under.
func (l *htmlLayout) Name() types.Template {
	return l.name
}

// Render projects the document through the shared view model and executes the
// layout's template.
func (l *htmlLayout) Render(doc types.ResumeDocument, scheme types.ColorScheme) (string, error) {
	view := BuildView(doc, scheme)

	var sb strings.Builder
	templateName := strings.ReplaceAll(string(l.name), "-", "_") + ".gohtml"
	if err := l.tmpl.ExecuteTemplate(&sb, templateName, view); err != nil {
		return "", &TemplateError{
			Message: fmt.Sprintf("failed to execute layout %s", l.name),
			Cause:   err,
		}
	}
	return sb.String(), nil
}
