package topics

import (
	"github.com/charmbracelet/glamour"
)

// Renderer formats topic content for the terminal.
type Renderer interface {
	// Render returns content formatted for display. format is the topic's
	// file extension.
	Render(content string, format string) string
}

// PlainRenderer returns content unchanged.
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// GlamourRenderer renders markdown topics with glamour. Other formats pass
// through.
type GlamourRenderer struct {
	// Style is a glamour standard style name ("dark", "light", "notty") or
	// empty for auto detection.
	Style string

	// Width wraps output when positive.
	Width int
}

// NewGlamourRenderer creates a renderer. Without color it uses the notty
// style.
func NewGlamourRenderer(color bool) *GlamourRenderer {
	r := &GlamourRenderer{Width: 80}
	if !color {
		r.Style = "notty"
	}
	return r
}

func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	var opts []glamour.TermRendererOption
	if r.Style != "" {
		opts = append(opts, glamour.WithStandardStyle(r.Style))
	} else {
		opts = append(opts, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		opts = append(opts, glamour.WithWordWrap(r.Width))
	}

	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return content
	}
	out, err := tr.Render(content)
	if err != nil {
		return content
	}
	return out
}
