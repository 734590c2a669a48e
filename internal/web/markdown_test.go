package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderKeepsLatexBackslashes(t *testing.T) {
	r := newMarkdownRenderer(false)

	out, err := r.Render("Matrix:\n\n$$\n\\begin{bmatrix} a & b \\\\ c & d \\end{bmatrix}\n$$\n\nand $$x_1 * y_1$$ inline")
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, `$$
\begin{bmatrix} a &amp; b \\ c &amp; d \end{bmatrix}
$$`)
	assert.Contains(t, html, "$$x_1 * y_1$$")
	assert.NotContains(t, html, "CDMATHBLOCK")
}

func TestRenderRawHTMLPolicy(t *testing.T) {
	safe, err := newMarkdownRenderer(false).Render("hi <b>there</b>")
	require.NoError(t, err)
	assert.NotContains(t, string(safe), "<b>there</b>")

	trusted, err := newMarkdownRenderer(true).Render("hi <b>there</b>")
	require.NoError(t, err)
	assert.Contains(t, string(trusted), "<b>there</b>")
}

func TestRenderMarkdown(t *testing.T) {
	out, err := newMarkdownRenderer(false).Render("### 2. Detailed Explanation\n\n- one\n- two")
	require.NoError(t, err)
	assert.Contains(t, string(out), "<h3>2. Detailed Explanation</h3>")
	assert.Contains(t, string(out), "<li>one</li>")
}

func TestRenderLeavesFencedCodeAlone(t *testing.T) {
	out, err := newMarkdownRenderer(false).Render("```sh\necho $$ $$PID\n```\n\nthen $$\\frac{a}{b}$$ here\n")
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "<pre><code class=\"language-sh\">echo $$ $$PID\n</code></pre>")
	assert.Contains(t, html, `$$\frac{a}{b}$$`)
	assert.NotContains(t, html, "CDMATHBLOCK")
}

func TestProtectMathSkipsFences(t *testing.T) {
	protected, exprs := protectMath("~~~\n$$x$$\n~~~\n$$y$$\n")
	assert.Equal(t, []string{"$$y$$"}, exprs)
	assert.Equal(t, "~~~\n$$x$$\n~~~\n"+placeholder(0)+"\n", protected)
}
