package services

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/devtoolbox/internal/toolbox"
	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders markdown for a given terminal width
type MarkdownRenderer interface {
	Render(content string, width int) (string, error)
}

// GlamourRenderer renders markdown with a glamour standard style.
// The underlying renderer is rebuilt only when the width changes.
type GlamourRenderer struct {
	style    string
	width    int
	renderer *glamour.TermRenderer
}

// NewGlamourRenderer creates a renderer for a standard style such as "dark", "light" or "notty"
func NewGlamourRenderer(style string) *GlamourRenderer {
	return &GlamourRenderer{style: style}
}

func (g *GlamourRenderer) Render(content string, width int) (string, error) {
	if g.renderer == nil || g.width != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(g.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", fmt.Errorf("failed to create %s renderer: %w", g.style, err)
		}
		g.renderer = r
		g.width = width
	}
	return g.renderer.Render(content)
}

// RenderMarkdown renders content, falling back to the raw text for widths too
// small to render into
func RenderMarkdown(content string, width int, renderer MarkdownRenderer) (string, error) {
	if renderer == nil || width < 10 {
		return content, nil
	}
	return renderer.Render(content, width)
}

// codeLanguage is the fence language used to highlight a tool's output
func codeLanguage(tool toolbox.Tool) string {
	switch tool {
	case toolbox.ToolJSONFormat:
		return "json"
	case toolbox.ToolSQLFormat:
		return "sql"
	default:
		return ""
	}
}

// HighlightOutput renders the output of the JSON and SQL formatters as a
// fenced code block. Other tools, placeholder outputs and render failures
// return the output unchanged.
func HighlightOutput(tool toolbox.Tool, output string, width int, renderer MarkdownRenderer) string {
	lang := codeLanguage(tool)
	if lang == "" || output == "" || output == toolbox.OutputInvalid {
		return output
	}

	block := "```" + lang + "\n" + output + "\n```\n"
	rendered, err := RenderMarkdown(block, width, renderer)
	if err != nil {
		return output
	}
	return strings.Trim(rendered, "\n")
}
