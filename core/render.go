package core

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path"

	"github.com/tdewolff/minify/v2"
	minhtml "github.com/tdewolff/minify/v2/html"
)

// TemplatesDir is the directory, next to this package, that holds the page
// templates. It is compiled into the binary.
const TemplatesDir = "templates"

const partialsGlob = "partials/*.html"

//go:embed templates
var embeddedTemplates embed.FS

// Renderer turns a template name and its variables into HTML.
type Renderer interface {
	Render(name string, values map[string]interface{}) ([]byte, error)
}

type TemplateRenderer struct {
	fsys     fs.FS
	funcs    template.FuncMap
	minifier *minify.M
}

// TemplatesFS returns the embedded templates when dir is empty, otherwise
// the templates found in dir on disk.
func TemplatesFS(dir string) fs.FS {
	if dir == "" {
		sub, err := fs.Sub(embeddedTemplates, TemplatesDir)
		if err != nil {
			panic(err)
		}
		return sub
	}
	return os.DirFS(dir)
}

// NewTemplateRenderer parses templates from fsys on every Render call, so
// edits to an on-disk templates dir show up without a restart.
func NewTemplateRenderer(fsys fs.FS, funcs template.FuncMap, minifyHTML bool) *TemplateRenderer {
	r := &TemplateRenderer{fsys: fsys, funcs: funcs}
	if minifyHTML {
		m := minify.New()
		m.AddFunc("text/html", minhtml.Minify)
		r.minifier = m
	}
	return r
}

func (r *TemplateRenderer) Render(name string, values map[string]interface{}) ([]byte, error) {
	if _, err := fs.Stat(r.fsys, name); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("template %s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("template %s: %w", name, err)
	}

	patterns := []string{name}
	if partials, _ := fs.Glob(r.fsys, partialsGlob); len(partials) > 0 {
		patterns = append(patterns, partialsGlob)
	}

	tmpl, err := template.New(path.Base(name)).Funcs(r.funcs).ParseFS(r.fsys, patterns...)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, values); err != nil {
		return nil, fmt.Errorf("execute %s: %w", name, err)
	}

	if r.minifier == nil {
		return buf.Bytes(), nil
	}

	var out bytes.Buffer
	if err := r.minifier.Minify("text/html", &out, &buf); err != nil {
		return nil, fmt.Errorf("minify %s: %w", name, err)
	}
	return out.Bytes(), nil
}

// ResolveTemplate maps a template file name onto its slash-separated path
// inside the templates directory.
func ResolveTemplate(templateFile string) (string, error) {
	if templateFile == "" || templateFile == "." || !fs.ValidPath(templateFile) {
		return "", fmt.Errorf("%q: %w", templateFile, ErrInvalidTemplatePath)
	}
	return path.Clean(templateFile), nil
}

// RenderTemplate renders templateFile with values. A nil values map is
// replaced by an empty one.
func RenderTemplate(r Renderer, templateFile string, values map[string]interface{}) ([]byte, error) {
	if values == nil {
		values = map[string]interface{}{}
	}

	name, err := ResolveTemplate(templateFile)
	if err != nil {
		return nil, err
	}

	return r.Render(name, values)
}
