package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordRun(t *testing.T) {
	before := testutil.ToFloat64(PipelineRunsTotal.WithLabelValues("invalid_url"))
	RecordRun("invalid_url")
	RecordRun("invalid_url")
	assert.Equal(t, before+2, testutil.ToFloat64(PipelineRunsTotal.WithLabelValues("invalid_url")))
}

func TestObserveStage(t *testing.T) {
	ObserveStage("fetching", time.Now().Add(-time.Second))
	assert.Equal(t, 1, testutil.CollectAndCount(PipelineStageSeconds, "caption_digest_pipeline_stage_seconds"))
}
