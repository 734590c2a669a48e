package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildDeterministic(t *testing.T) {
	a := Build("Hello world")
	b := Build("Hello world")
	assert.Equal(t, a, b)
}

func TestBuildSections(t *testing.T) {
	p := Build("Hello world")

	for _, want := range []string{
		"### 1. Overview",
		"### 2. Detailed Explanation",
		"### 3. Extra Notes",
		"`$$...$$`",
		"not inline `$...$`",
		`\begin{bmatrix} a & b \\ c & d \end{bmatrix}`,
	} {
		assert.Contains(t, p, want)
	}
}

func TestBuildEmbedsTranscriptBeforeClosing(t *testing.T) {
	p := Build("TRANSCRIPT-BODY")

	assert.True(t, strings.HasPrefix(p, preamble))
	assert.True(t, strings.HasSuffix(p, "Now generate the structured enriched summary as described."))
	assert.Contains(t, p, "Here is the full transcript:\nTRANSCRIPT-BODY\n\n")
}

func TestBuildOnlyTranscriptVaries(t *testing.T) {
	a := Build("first")
	b := Build("second one")

	assert.Equal(t, strings.Replace(a, "first", "", 1), strings.Replace(b, "second one", "", 1))
}
