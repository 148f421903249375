// Package scaffold provides embedded templates for the brochure CLI.
package scaffold

import (
	"embed"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

// Templates contains all scaffold template files.
// Files use Go text/template syntax and have a .tmpl suffix.
//
//go:embed templates
var Templates embed.FS

// ResourceData fills the new resource template.
type ResourceData struct {
	Title       string
	Description string
	Author      string
	Slug        string
	Date        string // YYYY-MM-DD, used for both publish and modify dates
	Tags        []string
}

var funcs = template.FuncMap{"yaml": yamlScalar}

// RenderResource writes a Markdown resource with front matter for d.
func RenderResource(w io.Writer, d ResourceData) error {
	tmpl, err := template.New("resource.md.tmpl").Funcs(funcs).ParseFS(Templates, "templates/resource.md.tmpl")
	if err != nil {
		return fmt.Errorf("scaffold: parse: %w", err)
	}
	if err := tmpl.Execute(w, d); err != nil {
		return fmt.Errorf("scaffold: execute: %w", err)
	}
	return nil
}

// yamlScalar encodes s as a single-line YAML scalar, quoting when needed.
func yamlScalar(s string) (string, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return "", err
	}
	v := strings.TrimSuffix(string(out), "\n")
	if strings.Contains(v, "\n") {
		return strconv.Quote(s), nil
	}
	return v, nil
}
