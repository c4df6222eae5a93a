package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusRecorder_ObserveRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder := NewPrometheusRecorder(reg)

	recorder.ObserveRun(SourceUpload, StatusSuccess, 3, 20*time.Millisecond)
	recorder.ObserveRun(SourceUpload, StatusSuccess, 5, 10*time.Millisecond)
	recorder.ObserveRun(SourceScheduler, StatusFailure, 0, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(recorder.runs.WithLabelValues(SourceUpload, StatusSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.runs.WithLabelValues(SourceScheduler, StatusFailure)))
	assert.Equal(t, 0.0, testutil.ToFloat64(recorder.runs.WithLabelValues(SourceScheduler, StatusSuccess)))

	count, err := testutil.GatherAndCount(reg, "smartvend_analysis_records")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}
