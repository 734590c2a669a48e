package executor

import "context"

// Executor runs an external tool (yt-dlp) and returns what it printed to stdout.
// A non-zero exit becomes an error carrying the tool's last stderr line.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
}
