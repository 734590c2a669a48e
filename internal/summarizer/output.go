package summarizer

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/renameio/v2"
)

// WriteMarkdown stores a summary as a markdown file headed by title and the generation date.
// The file is replaced atomically, so a reader never sees half a summary.
func WriteMarkdown(path, title, summary string, at time.Time) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0644))
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	defer pendingFile.Cleanup()

	if _, err := fmt.Fprintf(pendingFile, "# %s\n\n_%s_\n\n%s\n", title, at.Format("2006-01-02 15:04"), summary); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
