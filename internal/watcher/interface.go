package watcher

import "context"

// Watcher monitors the inbox folder for link files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler handles one link file.
type EventHandler func(ctx context.Context, filePath string) error
