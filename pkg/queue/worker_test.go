package queue

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/autopiloot/autopiloot/ent"
	"github.com/autopiloot/autopiloot/ent/job"
	"github.com/autopiloot/autopiloot/pkg/config"
	"github.com/autopiloot/autopiloot/pkg/policy"
	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"typed job error", NewJobError("quota_exceeded", errors.New("daily quota spent")), "quota_exceeded"},
		{"wrapped job error", fmt.Errorf("transcribing: %w", NewJobError("video_too_long", errors.New("4500s"))), "video_too_long"},
		{"deadline", context.DeadlineExceeded, "api_timeout"},
		{"wrapped deadline", fmt.Errorf("calling api: %w", context.DeadlineExceeded), "api_timeout"},
		{"plain error", errors.New("boom"), "execution_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyError(tt.err))
		})
	}
}

func TestJobErrorUnwrap(t *testing.T) {
	inner := errors.New("upstream 401")
	err := NewJobError("authorization_failed", inner)
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "authorization_failed")
}

func TestPollIntervalJitterBounds(t *testing.T) {
	cfg := &config.QueueConfig{
		PollInterval:       1 * time.Second,
		PollIntervalJitter: 500 * time.Millisecond,
	}
	w := &Worker{config: cfg}
	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond)
		assert.LessOrEqual(t, d, 1500*time.Millisecond)
	}
}

func TestPollIntervalNoJitter(t *testing.T) {
	w := &Worker{config: &config.QueueConfig{PollInterval: 2 * time.Second}}
	assert.Equal(t, 2*time.Second, w.pollInterval())
}

func TestJobPolicyContext(t *testing.T) {
	attemptAt := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	errType := "api_timeout"
	cost := 1.5

	t.Run("fresh job", func(t *testing.T) {
		jc := jobPolicyContext(&ent.Job{
			ID:      "channel_scrape_20250115_120000",
			JobType: job.JobTypeChannelScrape,
		})
		assert.Equal(t, "channel_scrape", jc.JobType)
		assert.Zero(t, jc.RetryCount)
		assert.True(t, jc.LastAttemptAt.IsZero())
		assert.Zero(t, jc.VideoCount)
	})

	t.Run("retried job with failure metadata", func(t *testing.T) {
		jc := jobPolicyContext(&ent.Job{
			ID:               "single_video_20250115_120000",
			JobType:          job.JobTypeSingleVideo,
			RetryCount:       2,
			LastAttemptAt:    &attemptAt,
			LastErrorType:    &errType,
			EstimatedCostUsd: &cost,
		})
		assert.Equal(t, 2, jc.RetryCount)
		assert.Equal(t, attemptAt, jc.LastAttemptAt)
		assert.Equal(t, "api_timeout", jc.ErrorType)
		assert.InDelta(t, 1.5, jc.EstimatedCostUSD, 1e-9)
	})

	t.Run("single video counts as one", func(t *testing.T) {
		videoID := "dQw4w9WgXcQ"
		jc := jobPolicyContext(&ent.Job{JobType: job.JobTypeSingleVideo, VideoID: &videoID})
		assert.Equal(t, 1, jc.VideoCount)
	})

	t.Run("batch counts its videos", func(t *testing.T) {
		jc := jobPolicyContext(&ent.Job{
			JobType:  job.JobTypeBatchTranscribe,
			VideoIds: []string{"a", "b", "c"},
		})
		assert.Equal(t, 3, jc.VideoCount)
	})
}

func TestDLQErrorType(t *testing.T) {
	errType := "api_timeout"

	t.Run("budget decision wins", func(t *testing.T) {
		got := dlqErrorType(&ent.Job{LastErrorType: &errType}, policy.Decision{Action: policy.ActionDLQ, Reason: policy.ReasonBudgetExceeded})
		assert.Equal(t, "budget_exceeded", got)
	})

	t.Run("recorded failure type", func(t *testing.T) {
		got := dlqErrorType(&ent.Job{LastErrorType: &errType}, policy.Decision{Action: policy.ActionDLQ, Reason: "max attempts exceeded"})
		assert.Equal(t, "api_timeout", got)
	})

	t.Run("no recorded failure", func(t *testing.T) {
		got := dlqErrorType(&ent.Job{}, policy.Decision{Action: policy.ActionDLQ, Reason: "max attempts exceeded"})
		assert.Equal(t, "execution_error", got)
	})
}

func TestDLQErrorMessage(t *testing.T) {
	msg := "connect timeout after 30s"
	assert.Equal(t, msg, dlqErrorMessage(&ent.Job{LastErrorMessage: &msg}, policy.Decision{Reason: "max attempts exceeded"}))
	assert.Equal(t, policy.ReasonBudgetExceeded, dlqErrorMessage(&ent.Job{}, policy.Decision{Reason: policy.ReasonBudgetExceeded}))
}
