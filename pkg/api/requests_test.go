package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/autopiloot/autopiloot/pkg/orchestrator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchJobRequestJobInputs(t *testing.T) {
	tests := []struct {
		name string
		req  DispatchJobRequest
		want orchestrator.JobInputs
	}{
		{
			"channel scrape",
			DispatchJobRequest{Type: "channel_scrape", Channels: []string{"@a"}},
			orchestrator.ChannelScrape{Channels: []string{"@a"}},
		},
		{
			"sheet backfill",
			DispatchJobRequest{Type: "sheet_backfill", SheetID: "sheet1", Range: "A:D"},
			orchestrator.SheetBackfill{SheetID: "sheet1", Range: "A:D"},
		},
		{
			"single video",
			DispatchJobRequest{Type: "single_video", VideoID: "dQw4w9WgXcQ", Priority: "high"},
			orchestrator.SingleVideo{VideoID: "dQw4w9WgXcQ", Priority: "high"},
		},
		{
			"batch transcribe",
			DispatchJobRequest{Type: "batch_transcribe", VideoIDs: []string{"dQw4w9WgXcQ"}, BatchSize: 5},
			orchestrator.BatchTranscribe{VideoIDs: []string{"dQw4w9WgXcQ"}, BatchSize: 5},
		},
		{
			"single summary",
			DispatchJobRequest{Type: "single_summary", VideoID: "dQw4w9WgXcQ", Platforms: []string{"zep"}},
			orchestrator.SingleSummary{VideoID: "dQw4w9WgXcQ", Platforms: []string{"zep"}},
		},
		{
			"batch summarize",
			DispatchJobRequest{Type: "batch_summarize", VideoIDs: []string{"dQw4w9WgXcQ"}, PromptOverride: "coach_v2"},
			orchestrator.BatchSummarize{VideoIDs: []string{"dQw4w9WgXcQ"}, PromptOverride: "coach_v2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.jobInputs()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown type", func(t *testing.T) {
		_, err := DispatchJobRequest{Type: "mystery"}.jobInputs()
		assert.Error(t, err)
	})
}

func TestDispatchOptions(t *testing.T) {
	t.Run("created_by defaults to api", func(t *testing.T) {
		opts := DispatchJobRequest{Type: "channel_scrape"}.dispatchOptions()
		assert.Equal(t, "api", opts.CreatedBy)
		assert.Nil(t, opts.Overrides.MaxAttempts)
	})

	t.Run("overrides map through", func(t *testing.T) {
		attempts := 5
		budget := 2.5
		opts := DispatchJobRequest{
			Type:      "single_video",
			CreatedBy: "scheduler",
			Overrides: &OverridesRequest{MaxAttempts: &attempts, BudgetLimitUSD: &budget},
		}.dispatchOptions()
		assert.Equal(t, "scheduler", opts.CreatedBy)
		require.NotNil(t, opts.Overrides.MaxAttempts)
		assert.Equal(t, 5, *opts.Overrides.MaxAttempts)
		require.NotNil(t, opts.Overrides.BudgetLimitUSD)
		assert.InDelta(t, 2.5, *opts.Overrides.BudgetLimitUSD, 1e-9)
	})
}

func TestDispatchHandlerBadRequests(t *testing.T) {
	server := NewServer(nil, nil, nil, nil, nil, nil)

	t.Run("malformed body", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/transcribe", strings.NewReader("{"))
		server.Router().ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing type", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/scrape", strings.NewReader(`{"channels":["@a"]}`))
		server.Router().ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown type", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/summarize", strings.NewReader(`{"type":"mystery"}`))
		server.Router().ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
