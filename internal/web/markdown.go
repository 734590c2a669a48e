package web

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"
)

var mathBlock = regexp.MustCompile(`(?s)\$\$(.+?)\$\$`)

// markdownRenderer turns model output into HTML. Raw HTML inside the markdown is only
// passed through when the deployment explicitly trusts the model output.
type markdownRenderer struct {
	md goldmark.Markdown
}

func newMarkdownRenderer(allowRawHTML bool) *markdownRenderer {
	var opts []goldmark.Option
	opts = append(opts, goldmark.WithExtensions(extension.GFM))
	if allowRawHTML {
		opts = append(opts, goldmark.WithRendererOptions(ghtml.WithUnsafe()))
	}
	return &markdownRenderer{md: goldmark.New(opts...)}
}

// Render converts summary to HTML. $$...$$ blocks bypass markdown so backslashes in
// LaTeX survive, and are re-inserted escaped for MathJax.
func (m *markdownRenderer) Render(summary string) (template.HTML, error) {
	protected, exprs := protectMath(summary)

	var buf bytes.Buffer
	if err := m.md.Convert([]byte(protected), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}

	out := buf.String()
	for i, expr := range exprs {
		out = strings.Replace(out, placeholder(i), html.EscapeString(expr), 1)
	}
	return template.HTML(out), nil
}

// protectMath swaps $$...$$ blocks for placeholders, leaving fenced code untouched.
func protectMath(summary string) (string, []string) {
	var (
		out   strings.Builder
		chunk strings.Builder
		exprs []string
		fence string
	)
	flush := func() {
		out.WriteString(mathBlock.ReplaceAllStringFunc(chunk.String(), func(s string) string {
			exprs = append(exprs, s)
			return placeholder(len(exprs) - 1)
		}))
		chunk.Reset()
	}

	for _, line := range strings.SplitAfter(summary, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case fence == "" && (strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")):
			flush()
			fence = trimmed[:3]
			out.WriteString(line)
		case fence != "":
			out.WriteString(line)
			if strings.HasPrefix(trimmed, fence) && strings.Trim(trimmed, fence[:1]) == "" {
				fence = ""
			}
		default:
			chunk.WriteString(line)
		}
	}
	flush()
	return out.String(), exprs
}

func placeholder(i int) string {
	return fmt.Sprintf("CDMATHBLOCK%dX", i)
}
