package pipeline

import (
	"context"

	"github.com/nguyentantai21042004/caption-digest/internal/metrics"
)

// gate admits one run at a time. Waiters are not served in any particular order.
type gate struct {
	slot chan struct{}
}

func newGate() *gate {
	return &gate{slot: make(chan struct{}, 1)}
}

// enter blocks until the gate is free or ctx is done.
func (g *gate) enter(ctx context.Context) error {
	select {
	case g.slot <- struct{}{}:
		return nil
	default:
	}

	metrics.PipelineWaiting.Inc()
	defer metrics.PipelineWaiting.Dec()

	select {
	case g.slot <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (g *gate) leave() {
	<-g.slot
}
