package processor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/caption-digest/internal/pipeline"
	"github.com/nguyentantai21042004/caption-digest/internal/summarizer"
)

// Process runs the link stored in linkPath through the pipeline and writes
// <id>.md and <id>.docx to the output folder. The link file is archived either way.
func (p *implProcessor) Process(ctx context.Context, linkPath string) error {
	startTime := time.Now()
	defer p.archive(ctx, linkPath)

	link, err := readLink(linkPath)
	if err != nil {
		return err
	}

	p.logger.Info(ctx, "Summarizing %s from %s", link, filepath.Base(linkPath))

	res, err := p.pipeline.Run(ctx, pipeline.Request{URL: link})
	if err != nil {
		var pe *pipeline.Error
		if errors.As(err, &pe) {
			return fmt.Errorf("%s: %s", filepath.Base(linkPath), pe.Message())
		}
		return fmt.Errorf("run pipeline: %w", err)
	}

	title := "Summary of " + res.VideoID
	mdPath := filepath.Join(p.cfg.Paths.Output, res.VideoID+".md")
	if err := summarizer.WriteMarkdown(mdPath, title, res.Summary, p.now()); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}

	docxPath := filepath.Join(p.cfg.Paths.Output, res.VideoID+".docx")
	if err := summarizer.WriteDocx(title, res.Summary, docxPath); err != nil {
		p.logger.Warn(ctx, "Failed to write docx for %s: %v", res.VideoID, err)
		docxPath = ""
	}

	p.logger.Info(ctx, "Summary written: %s", mdPath)
	if docxPath != "" {
		p.logger.Info(ctx, "Document written: %s", docxPath)
	}
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime).Round(time.Millisecond))

	return nil
}
