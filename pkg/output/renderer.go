package output

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/shohamc1/mxbmm/pkg/errors"
	"github.com/shohamc1/mxbmm/pkg/logging"
	"github.com/shohamc1/mxbmm/pkg/style"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Renderer writes reports in one format.
type Renderer struct {
	templates *template.Template
	writer    io.Writer
	format    string
}

// NewRenderer creates a Renderer for format, one of text, json or yaml.
func NewRenderer(w io.Writer, format string) (*Renderer, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatText
	}
	switch format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown output format %q (use text, json or yaml)", format)
	}

	tmpl, err := template.New("output").Funcs(templateFuncs()).ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Renderer{templates: tmpl, writer: w, format: format}, nil
}

// Format is the renderer's output format.
func (r *Renderer) Format() string {
	return r.format
}

// RenderInventory writes an inventory report.
func (r *Renderer) RenderInventory(report *Report) error {
	return r.render("inventory.tmpl", report)
}

// RenderCategories writes the category table.
func (r *Renderer) RenderCategories(cats []CategoryInfo) error {
	return r.render("categories.tmpl", cats)
}

func (r *Renderer) render(name string, data interface{}) error {
	log := logging.GetLogger("output")
	log.Trace().Str("template", name).Str("format", r.format).Msg("Rendering")

	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.writer)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case FormatYAML:
		enc := yaml.NewEncoder(r.writer)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()
	}

	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	_, err := fmt.Fprintln(r.writer, buf.String())
	return err
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"title":   func(s string) string { return style.TitleStyle.Render(s) },
		"heading": style.Heading,
		"muted":   style.Muted,
		"path":    style.Path,
		"pad": func(s string, width int) string {
			if len(s) >= width {
				return s
			}
			return s + strings.Repeat(" ", width-len(s))
		},
	}
}
