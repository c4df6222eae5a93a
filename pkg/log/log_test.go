package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestIsRelevant(t *testing.T) {
	tests := []struct {
		key      string
		expected bool
	}{
		{key: "run_id", expected: true},
		{key: "correlation_id", expected: true},
		{key: "record_count", expected: true},
		{key: "forecast_days", expected: true},
		{key: "total_sales", expected: true},
		{key: "total_profit", expected: true},
		{key: "error_code", expected: true},
		{key: "filename", expected: true},
		{key: "sync_enabled", expected: true},
		{key: "cron_schedule", expected: true},
		{key: "content_length", expected: false},
		{key: "user_agent", expected: false},
		{key: "remote_addr", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, isRelevant(tt.key))
		})
	}
}

func TestWithFields_DevelopmentFiltersIrrelevantFields(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	SetupTestLogger()

	base := L.(*logger)
	filtered := L.WithFields(Fields{"remote_addr": "127.0.0.1"})
	assert.Same(t, base, filtered)

	kept := L.WithFields(Fields{"run_id": "abc123", "remote_addr": "127.0.0.1"}).(*logger)
	assert.Equal(t, "abc123", kept.entry.Data["run_id"])
	assert.NotContains(t, kept.entry.Data, "remote_addr")
}

func TestWithFields_DefaultEnvKeepsReportTotals(t *testing.T) {
	t.Setenv("APP_ENV", "")
	SetupTestLogger()

	l := L.WithFields(Fields{
		"run_id":       "x",
		"record_count": 3,
		"total_sales":  "70.00",
		"total_profit": "35.00",
		"user_agent":   "curl",
	}).(*logger)

	assert.Equal(t, Fields{
		"run_id":       "x",
		"record_count": 3,
		"total_sales":  "70.00",
		"total_profit": "35.00",
	}, Fields(l.entry.Data))
}

func TestWithFields_ProductionKeepsEverything(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	SetupTestLogger()

	l := L.WithFields(Fields{"remote_addr": "127.0.0.1"}).(*logger)
	assert.Equal(t, "127.0.0.1", l.entry.Data["remote_addr"])
}
