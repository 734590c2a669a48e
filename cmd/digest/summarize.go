package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/caption-digest/internal/pipeline"
	"github.com/nguyentantai21042004/caption-digest/internal/summarizer"
)

var (
	fromClipboard bool
	modelFlag     string
	outPath       string
	docxPath      string
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [url]",
	Short: "Summarize one video and print the markdown",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		link, err := linkFrom(args)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}

		model := a.defaultModel
		if modelFlag != "" {
			model = summarizer.QualifiedName(modelFlag)
		}

		res, err := a.pipeline.Run(ctx, pipeline.Request{URL: link, Model: model})
		if err != nil {
			var pe *pipeline.Error
			if errors.As(err, &pe) {
				return errors.New(pe.Message())
			}
			return err
		}

		title := "Summary of " + res.VideoID
		if outPath != "" {
			if err := summarizer.WriteMarkdown(outPath, title, res.Summary, time.Now()); err != nil {
				return err
			}
			a.log.Info(ctx, "Summary written: %s", outPath)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), res.Summary)
		}

		if docxPath != "" {
			if err := summarizer.WriteDocx(title, res.Summary, docxPath); err != nil {
				return fmt.Errorf("write docx: %w", err)
			}
			a.log.Info(ctx, "Document written: %s", docxPath)
		}
		return nil
	},
}

func init() {
	summarizeCmd.Flags().BoolVar(&fromClipboard, "clipboard", false, "read the video link from the clipboard")
	summarizeCmd.Flags().StringVarP(&modelFlag, "model", "m", "", "model to use instead of the default")
	summarizeCmd.Flags().StringVarP(&outPath, "out", "o", "", "write markdown to this file instead of stdout")
	summarizeCmd.Flags().StringVar(&docxPath, "docx", "", "also export the summary as a .docx file")
}

func linkFrom(args []string) (string, error) {
	if len(args) == 1 {
		return strings.TrimSpace(args[0]), nil
	}
	if !fromClipboard {
		return "", errors.New("a video link or --clipboard is required")
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	return strings.TrimSpace(text), nil
}
