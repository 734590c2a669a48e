package processor

import "context"

// Processor handles one link file dropped into the inbox.
type Processor interface {
	Process(ctx context.Context, linkPath string) error
}
