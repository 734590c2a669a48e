package summarizer

import (
	"context"
	"errors"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/nguyentantai21042004/caption-digest/internal/config"
	"github.com/nguyentantai21042004/caption-digest/internal/logger"
)

type fakeModels struct {
	resp    *genai.GenerateContentResponse
	err     error
	models  []*genai.Model
	listErr error

	gotModel  string
	gotPrompt string
	gotConfig *genai.GenerateContentConfig
	calls     int
}

func (f *fakeModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.gotModel = model
	f.gotConfig = cfg
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.gotPrompt = contents[0].Parts[0].Text
	}
	return f.resp, f.err
}

func (f *fakeModels) All(ctx context.Context) iter.Seq2[*genai.Model, error] {
	return func(yield func(*genai.Model, error) bool) {
		for _, m := range f.models {
			if !yield(m, nil) {
				return
			}
		}
		if f.listErr != nil {
			yield(nil, f.listErr)
		}
	}
}

func testConfig() *config.Config {
	return &config.Config{Gemini: config.GeminiConfig{Temperature: 0.2, MaxOutputTokens: 4096}}
}

func textResponse(parts ...*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: parts}}},
	}
}

func TestGenerate(t *testing.T) {
	fake := &fakeModels{resp: textResponse(
		&genai.Part{Text: "plan", Thought: true},
		&genai.Part{Text: "### 1. Overview\n"},
		&genai.Part{Text: "- <b>raw</b> $$x$$ "},
	)}
	s := newWithModels(fake, testConfig(), logger.NewNop())

	out, err := s.Generate(context.Background(), "PROMPT", "models/gemini-2.5-flash")
	require.NoError(t, err)

	assert.Equal(t, "### 1. Overview\n- <b>raw</b> $$x$$ ", out, "text is returned verbatim")
	assert.Equal(t, 1, fake.calls)
	assert.Equal(t, "models/gemini-2.5-flash", fake.gotModel)
	assert.Equal(t, "PROMPT", fake.gotPrompt)
	require.NotNil(t, fake.gotConfig.Temperature)
	assert.InDelta(t, 0.2, *fake.gotConfig.Temperature, 1e-6)
	assert.Equal(t, int32(4096), fake.gotConfig.MaxOutputTokens)
}

func TestGenerateFailureNotRetried(t *testing.T) {
	fake := &fakeModels{err: errors.New("network unreachable")}
	s := newWithModels(fake, testConfig(), logger.NewNop())

	_, err := s.Generate(context.Background(), "PROMPT", "m")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "network unreachable")
	assert.Equal(t, 1, fake.calls)
}

func TestGenerateEmpty(t *testing.T) {
	for name, resp := range map[string]*genai.GenerateContentResponse{
		"nil response":  nil,
		"no candidates": {},
		"only thoughts": textResponse(&genai.Part{Text: "x", Thought: true}),
	} {
		t.Run(name, func(t *testing.T) {
			s := newWithModels(&fakeModels{resp: resp}, testConfig(), logger.NewNop())
			_, err := s.Generate(context.Background(), "PROMPT", "m")
			assert.ErrorIs(t, err, ErrEmptyResponse)
		})
	}
}

func TestListModels(t *testing.T) {
	fake := &fakeModels{models: []*genai.Model{
		{Name: "models/embedding-001", SupportedActions: []string{"embedContent"}},
		{Name: "models/gemini-2.0-flash", DisplayName: "Gemini 2.0 Flash", SupportedActions: []string{"generateContent", "countTokens"}},
		{Name: "models/gemini-2.5-flash", SupportedActions: []string{"generateContent"}, OutputTokenLimit: 65536},
	}}
	s := newWithModels(fake, testConfig(), logger.NewNop())

	models, err := s.ListModels(context.Background())
	require.NoError(t, err)
	require.Len(t, models, 2)
	assert.Equal(t, "models/gemini-2.0-flash", models[0].Name)
	assert.Equal(t, "Gemini 2.0 Flash", models[0].DisplayName)
	assert.Equal(t, int32(65536), models[1].OutputTokenLimit)
}

func TestListModelsError(t *testing.T) {
	s := newWithModels(&fakeModels{listErr: errors.New("permission denied")}, testConfig(), logger.NewNop())
	_, err := s.ListModels(context.Background())
	assert.ErrorContains(t, err, "permission denied")
}

func TestChooseDefault(t *testing.T) {
	models := []ModelDescriptor{{Name: "models/gemini-2.0-flash"}, {Name: "models/gemini-2.5-flash"}}

	assert.Equal(t, "models/gemini-2.5-flash", ChooseDefault(models, "models/gemini-2.5-flash"))
	assert.Equal(t, "models/gemini-2.5-flash", ChooseDefault(models, "gemini-2.5-flash"))
	assert.Equal(t, "models/gemini-2.0-flash", ChooseDefault(models, "models/gemini-1.5-flash-latest"))
	assert.Equal(t, "", ChooseDefault(nil, "models/gemini-2.5-flash"))
}

func TestContains(t *testing.T) {
	models := []ModelDescriptor{{Name: "models/gemini-2.5-flash"}}
	assert.True(t, Contains(models, "gemini-2.5-flash"))
	assert.False(t, Contains(models, "models/other"))
	assert.False(t, Contains(models, ""))
}

func TestWriteMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "abc123.md")
	at := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

	require.NoError(t, WriteMarkdown(path, "abc123", "### 1. Overview", at))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# abc123\n\n_2026-10-16 09:30_\n\n### 1. Overview\n", string(data))
}

func TestWriteDocx(t *testing.T) {
	md := strings.Join([]string{
		"### 1. Overview",
		"- **Matrices** and vectors",
		"1. First step",
		"$$",
		`\begin{bmatrix} a & b \\ c & d \end{bmatrix}`,
		"$$",
		"$$E = mc^2$$",
		"---",
		"Plain paragraph with `code`.",
	}, "\n")
	path := filepath.Join(t.TempDir(), "abc123.docx")

	require.NoError(t, WriteDocx("abc123", md, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
