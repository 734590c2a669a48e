package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/caption-digest/internal/metrics"
)

func TestGateCountsWaiters(t *testing.T) {
	g := newGate()
	require.NoError(t, g.enter(context.Background()))

	entered := make(chan error, 1)
	go func() { entered <- g.enter(context.Background()) }()

	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(metrics.PipelineWaiting) == 1
	}, time.Second, 5*time.Millisecond)

	g.leave()
	require.NoError(t, <-entered)
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.PipelineWaiting))
	g.leave()
}

func TestGateCancelledWhileWaiting(t *testing.T) {
	g := newGate()
	require.NoError(t, g.enter(context.Background()))
	defer g.leave()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, g.enter(ctx), context.DeadlineExceeded)
}
