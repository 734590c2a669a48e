package processor

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// readLink returns the first link in a .txt file or a .url internet shortcut.
func readLink(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open link file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "[") {
			continue
		}
		if strings.HasPrefix(strings.ToUpper(line), "URL=") {
			line = strings.TrimSpace(line[len("URL="):])
		}
		return line, nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read link file: %w", err)
	}
	return "", fmt.Errorf("%s: no link found", filepath.Base(path))
}

// archive moves the link file out of the inbox, logs a warning if it fails
func (p *implProcessor) archive(ctx context.Context, linkPath string) {
	destPath := filepath.Join(p.cfg.Paths.Archived, filepath.Base(linkPath))

	if err := os.Rename(linkPath, destPath); err != nil {
		p.logger.Warn(ctx, "Failed to archive %s: %v", linkPath, err)
		return
	}
	p.logger.Debug(ctx, "Archived link file: %s -> %s", linkPath, destPath)
}
