package processor

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/caption-digest/internal/config"
	"github.com/nguyentantai21042004/caption-digest/internal/logger"
	"github.com/nguyentantai21042004/caption-digest/internal/pipeline"
	"github.com/nguyentantai21042004/caption-digest/internal/transcript"
)

type fakePipeline struct {
	result *pipeline.Result
	err    error
	urls   []string
}

func (f *fakePipeline) Run(_ context.Context, req pipeline.Request) (*pipeline.Result, error) {
	f.urls = append(f.urls, req.URL)
	return f.result, f.err
}

func setup(t *testing.T, fp *fakePipeline) (*config.Config, Processor) {
	t.Helper()
	root := t.TempDir()
	cfg := &config.Config{Paths: config.PathsConfig{
		Input:    filepath.Join(root, "inbox"),
		Output:   filepath.Join(root, "out"),
		Archived: filepath.Join(root, "archived"),
	}}
	for _, dir := range []string{cfg.Paths.Input, cfg.Paths.Output, cfg.Paths.Archived} {
		require.NoError(t, os.MkdirAll(dir, 0755))
	}

	p := New(cfg, fp, logger.NewNop()).(*implProcessor)
	p.now = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }
	return cfg, p
}

func writeLink(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestProcessWritesOutputs(t *testing.T) {
	fp := &fakePipeline{result: &pipeline.Result{VideoID: "abc123", Summary: "### 1. Overview\n\nHello"}}
	cfg, p := setup(t, fp)
	link := writeLink(t, cfg.Paths.Input, "lecture.txt", "\n# week 3\nhttps://youtu.be/abc123\n")

	require.NoError(t, p.Process(context.Background(), link))

	assert.Equal(t, []string{"https://youtu.be/abc123"}, fp.urls)

	md, err := os.ReadFile(filepath.Join(cfg.Paths.Output, "abc123.md"))
	require.NoError(t, err)
	assert.Contains(t, string(md), "# Summary of abc123")
	assert.Contains(t, string(md), "### 1. Overview\n\nHello")

	assert.FileExists(t, filepath.Join(cfg.Paths.Output, "abc123.docx"))
	assert.FileExists(t, filepath.Join(cfg.Paths.Archived, "lecture.txt"))
	assert.NoFileExists(t, link)
}

func TestProcessInternetShortcut(t *testing.T) {
	fp := &fakePipeline{result: &pipeline.Result{VideoID: "xyz", Summary: "ok"}}
	cfg, p := setup(t, fp)
	link := writeLink(t, cfg.Paths.Input, "video.url", "[InternetShortcut]\r\nURL=https://www.youtube.com/watch?v=xyz\r\n")

	require.NoError(t, p.Process(context.Background(), link))
	assert.Equal(t, []string{"https://www.youtube.com/watch?v=xyz"}, fp.urls)
}

func TestProcessPipelineFailure(t *testing.T) {
	fp := &fakePipeline{err: &pipeline.Error{Kind: pipeline.KindTranscriptsDisabled, Err: transcript.ErrTranscriptsDisabled}}
	cfg, p := setup(t, fp)
	link := writeLink(t, cfg.Paths.Input, "bad.txt", "https://youtu.be/nope")

	err := p.Process(context.Background(), link)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Transcripts are disabled for this video.")

	entries, readErr := os.ReadDir(cfg.Paths.Output)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "no partial output on failure")
	assert.FileExists(t, filepath.Join(cfg.Paths.Archived, "bad.txt"))
}

func TestProcessEmptyFile(t *testing.T) {
	fp := &fakePipeline{}
	cfg, p := setup(t, fp)
	link := writeLink(t, cfg.Paths.Input, "empty.txt", "\n\n")

	err := p.Process(context.Background(), link)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no link found")
	assert.Empty(t, fp.urls)
}
