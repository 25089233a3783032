package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/autopiloot/autopiloot/pkg/policy"
	"github.com/autopiloot/autopiloot/pkg/store"
	"github.com/autopiloot/autopiloot/pkg/timeutil"
)

// Quota cost per channel discovery pass, in YouTube API units.
const quotaUnitsPerChannel = 100

// PlanOptions are optional overrides for a daily plan.
type PlanOptions struct {
	// Channels overrides the configured channel handle list.
	Channels []string

	// PerChannelLimit overrides scraper.daily_limit_per_channel.
	PerChannelLimit int
}

// Window is a half-open UTC interval a pipeline phase runs in.
type Window struct {
	Start time.Time
	End   time.Time
}

// PlanWindows are the phase windows of a run: discovery before transcription
// before summarization.
type PlanWindows struct {
	Discovery     Window
	Transcription Window
	Summarization Window
}

// CheckpointSnapshot is the discovery high-water mark for one channel at
// plan time.
type CheckpointSnapshot struct {
	LastPublishedAt time.Time
	LastProcessedID string
}

// ResourceLimits are the configured ceilings the run must respect.
type ResourceLimits struct {
	YouTubeQuota    int
	AssemblyAIQuota int
	DailyBudgetUSD  float64
}

// ResourceEstimates project the run's resource usage.
type ResourceEstimates struct {
	QuotaUnits       int
	PlannedVideos    int
	EstimatedCostUSD float64
}

// DailyPlan is a pure projection of configuration and current state; planning
// has no side effects.
type DailyPlan struct {
	RunID           string
	GeneratedAt     time.Time
	Channels        []string
	PerChannelLimit int
	Windows         PlanWindows
	Checkpoints     map[string]CheckpointSnapshot
	Limits          ResourceLimits
	Estimates       ResourceEstimates
	RetryPolicy     RetryPolicy

	// CarryOverVideoIDs are yesterday's budget-exhausted transcriptions,
	// re-enqueued for the new UTC day.
	CarryOverVideoIDs []string

	Warnings []string
}

// RetryPolicy echoes the effective retry configuration into the plan.
type RetryPolicy struct {
	MaxAttempts    int
	BaseDelaySec   int
	QuotaThreshold float64
}

// Utilization warning threshold for planning, below the policy engine's hard
// dispatch threshold.
const planWarningUtilization = 0.8

// PlanDailyRun projects the configuration and current state into a run plan.
func (o *Orchestrator) PlanDailyRun(ctx context.Context, opts PlanOptions) (*DailyPlan, error) {
	now := o.now()

	channels := opts.Channels
	if len(channels) == 0 {
		channels = o.settings.Scraper.Handles
	}
	limit := opts.PerChannelLimit
	if limit <= 0 {
		limit = o.settings.Scraper.DailyLimitPerChannel
	}

	checkpoints := make(map[string]CheckpointSnapshot, len(channels))
	for _, channel := range channels {
		cp, err := o.store.GetCheckpoint(ctx, store.CheckpointKey("youtube_uploads", channel))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return nil, err
		}
		checkpoints[channel] = CheckpointSnapshot{
			LastPublishedAt: cp.LastPublishedAt,
			LastProcessedID: cp.LastProcessedID,
		}
	}

	state, err := o.SnapshotSystemState(ctx)
	if err != nil {
		return nil, err
	}

	carryOver, err := o.budgetCarryOver(ctx, now)
	if err != nil {
		return nil, err
	}

	plannedVideos := len(channels)*limit + len(carryOver)
	quotas := o.settings.Reliability.Quotas
	estimates := ResourceEstimates{
		QuotaUnits:       len(channels) * quotaUnitsPerChannel,
		PlannedVideos:    plannedVideos,
		EstimatedCostUSD: policy.DefaultCostPerVideoUSD * float64(plannedVideos),
	}

	var warnings []string
	for _, service := range []string{policy.ServiceYouTube, policy.ServiceAssemblyAI} {
		if utilization, ok := policy.Utilization(state, service); ok && utilization >= planWarningUtilization {
			warnings = append(warnings, fmt.Sprintf("%s quota at %.0f%% of daily limit", service, utilization*100))
		}
	}
	if quotas.AssemblyAIDailyLimit > 0 && plannedVideos > quotas.AssemblyAIDailyLimit {
		warnings = append(warnings, fmt.Sprintf("planned videos (%d) exceed assemblyai daily limit (%d)", plannedVideos, quotas.AssemblyAIDailyLimit))
	}

	retry := o.settings.Reliability.Retry

	return &DailyPlan{
		RunID:           "run_" + timeutil.JobTimestamp(now),
		GeneratedAt:     now,
		Channels:        channels,
		PerChannelLimit: limit,
		Windows:         planWindows(now),
		Checkpoints:     checkpoints,
		Limits: ResourceLimits{
			YouTubeQuota:    quotas.YouTubeDailyLimit,
			AssemblyAIQuota: quotas.AssemblyAIDailyLimit,
			DailyBudgetUSD:  o.settings.Budgets.TranscriptionDailyUSD,
		},
		Estimates: estimates,
		RetryPolicy: RetryPolicy{
			MaxAttempts:    retry.MaxAttempts,
			BaseDelaySec:   retry.BaseDelaySec,
			QuotaThreshold: retry.QuotaThreshold,
		},
		CarryOverVideoIDs: carryOver,
		Warnings:          warnings,
	}, nil
}

// budgetCarryOver collects the distinct video IDs of yesterday's
// budget-exhausted transcription jobs. Budget exceedance is terminal for the
// day only; the next run re-enqueues them.
func (o *Orchestrator) budgetCarryOver(ctx context.Context, now time.Time) ([]string, error) {
	yesterdayStart := timeutil.UTCDayStart(now).AddDate(0, 0, -1)
	entries, err := o.store.ListBudgetDLQEntriesSince(ctx, yesterdayStart)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var videoIDs []string
	for _, e := range entries {
		ids := e.VideoIds
		if len(ids) == 0 && e.VideoID != nil {
			ids = []string{*e.VideoID}
		}
		for _, id := range ids {
			if seen[id] {
				continue
			}
			seen[id] = true
			videoIDs = append(videoIDs, id)
		}
	}
	return videoIDs, nil
}

// planWindows phases the run: an hour of discovery, then three hours of
// transcription, then two of summarization.
func planWindows(now time.Time) PlanWindows {
	discoveryEnd := now.Add(1 * time.Hour)
	transcriptionEnd := discoveryEnd.Add(3 * time.Hour)
	return PlanWindows{
		Discovery:     Window{Start: now, End: discoveryEnd},
		Transcription: Window{Start: discoveryEnd, End: transcriptionEnd},
		Summarization: Window{Start: transcriptionEnd, End: transcriptionEnd.Add(2 * time.Hour)},
	}
}
