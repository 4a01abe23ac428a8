package sysprompt

import (
	"embed"
	"io/fs"
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer renders the embedded prompt templates.
type Renderer struct {
	templates *template.Template
	parseErr  error
}

// NewRenderer parses every embedded template.
func NewRenderer() *Renderer {
	r := &Renderer{}
	r.templates, r.parseErr = parseTemplates(templateFS)
	return r
}

// Render executes the named template with the given data.
func (r *Renderer) Render(name string, data any) (string, error) {
	if r.parseErr != nil {
		return "", errors.Wrap(r.parseErr, "failed to initialize templates")
	}
	if r.templates.Lookup(name) == nil {
		return "", errors.Errorf("template %s not found", name)
	}

	var buf strings.Builder
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", errors.Wrapf(err, "failed to execute template %s", name)
	}
	return strings.TrimSpace(buf.String()), nil
}

func parseTemplates(fsys fs.FS) (*template.Template, error) {
	paths, err := fs.Glob(fsys, "templates/*.tmpl")
	if err != nil {
		return nil, errors.Wrap(err, "failed to glob templates")
	}

	templates := template.New("templates")
	for _, path := range paths {
		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read template %s", path)
		}
		name := strings.TrimSuffix(strings.TrimPrefix(path, "templates/"), ".tmpl")
		if _, err := templates.New(name).Parse(string(content)); err != nil {
			return nil, errors.Wrapf(err, "failed to parse template %s", path)
		}
	}
	return templates, nil
}
