// Package scheduler owns the daily run trigger. Once a day at the configured
// UTC time it plans the run, dispatches discovery, re-enqueues yesterday's
// budget carry-over, advances the backlog, and after the run windows close
// emits the run report.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/autopiloot/autopiloot/ent"
	"github.com/autopiloot/autopiloot/ent/video"
	"github.com/autopiloot/autopiloot/pkg/config"
	"github.com/autopiloot/autopiloot/pkg/orchestrator"
	"github.com/autopiloot/autopiloot/pkg/policy"
	"github.com/autopiloot/autopiloot/pkg/store"
	"github.com/autopiloot/autopiloot/pkg/timeutil"
)

// createdBy attribution for everything this package dispatches.
const createdBy = "scheduler"

// Service runs the daily trigger loop.
type Service struct {
	orch     *orchestrator.Orchestrator
	store    *store.Store
	settings *config.Settings
	logger   *slog.Logger

	// now is swappable for tests.
	now func() time.Time

	cancel context.CancelFunc
	done   chan struct{}
}

// New creates the scheduler service. Call Start to begin the loop.
func New(orch *orchestrator.Orchestrator, st *store.Store, settings *config.Settings) *Service {
	return &Service{
		orch:     orch,
		store:    st,
		settings: settings,
		logger:   slog.Default().With("component", "scheduler"),
		now:      timeutil.NowUTC,
	}
}

// Start launches the trigger loop. No-op when already started.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	go s.run(ctx)

	s.logger.Info("Scheduler started",
		"daily_run_time", s.settings.Scheduler.DailyRunTime,
		"backlog_limit", s.settings.Scheduler.BacklogLimit)
}

// Stop signals the trigger loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("Scheduler stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	for {
		next := NextTrigger(s.now(), s.settings.Scheduler.DailyRunTime)
		s.logger.Info("Next daily run scheduled", "at", next)
		if !s.sleepUntil(ctx, next) {
			return
		}
		s.runDaily(ctx)
	}
}

// NextTrigger returns the next occurrence of the "HH:MM" UTC time of day
// strictly after now. A malformed time falls back to 01:00.
func NextTrigger(now time.Time, timeOfDay string) time.Time {
	parsed, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		parsed = time.Date(0, 1, 1, 1, 0, 0, 0, time.UTC)
	}
	now = now.UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), parsed.Hour(), parsed.Minute(), 0, 0, time.UTC)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// sleepUntil blocks until t or context cancellation; reports whether t was
// reached.
func (s *Service) sleepUntil(ctx context.Context, t time.Time) bool {
	d := t.Sub(s.now())
	if d <= 0 {
		return true
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// runDaily executes one trigger: plan, dispatch, then report once the run
// windows close. Dispatch failures are logged and skipped; one rejected job
// must not stall the rest of the run.
func (s *Service) runDaily(ctx context.Context) {
	started := s.now()

	plan, err := s.orch.PlanDailyRun(ctx, orchestrator.PlanOptions{})
	if err != nil {
		s.logger.Error("Daily planning failed", "error", err)
		return
	}
	s.logger.Info("Daily run planned",
		"run_id", plan.RunID,
		"channels", len(plan.Channels),
		"planned_videos", plan.Estimates.PlannedVideos,
		"carry_over", len(plan.CarryOverVideoIDs),
		"warnings", len(plan.Warnings))
	for _, w := range plan.Warnings {
		s.logger.Warn("Plan warning", "run_id", plan.RunID, "warning", w)
	}

	if len(plan.Channels) > 0 {
		s.dispatch(ctx, plan.RunID, s.orch.DispatchScraper, orchestrator.ChannelScrape{Channels: plan.Channels})
	}
	if s.settings.Scraper.SheetID != "" {
		s.dispatch(ctx, plan.RunID, s.orch.DispatchScraper, orchestrator.SheetBackfill{
			SheetID: s.settings.Scraper.SheetID,
			Range:   s.settings.Scraper.SheetRange,
		})
	}
	if len(plan.CarryOverVideoIDs) > 0 {
		s.dispatch(ctx, plan.RunID, s.orch.DispatchTranscriber, orchestrator.BatchTranscribe{VideoIDs: plan.CarryOverVideoIDs})
	}
	s.advanceBacklog(ctx, plan.RunID)

	if !s.sleepUntil(ctx, plan.Windows.Summarization.End) {
		return
	}
	s.emitRunReport(ctx, plan.RunID, started)
}

// dispatchFunc is one of the orchestrator's agent dispatch methods.
type dispatchFunc func(context.Context, orchestrator.JobInputs, orchestrator.DispatchOptions) (*orchestrator.DispatchResult, error)

func (s *Service) dispatch(ctx context.Context, runID string, fn dispatchFunc, inputs orchestrator.JobInputs) {
	result, err := fn(ctx, inputs, orchestrator.DispatchOptions{CreatedBy: createdBy})
	if err != nil {
		s.logger.Error("Dispatch failed",
			"run_id", runID,
			"job_type", inputs.JobType(),
			"error", err)
		return
	}
	s.logger.Info("Dispatched",
		"run_id", runID,
		"job_type", inputs.JobType(),
		"status", result.Status,
		"job_id", result.JobID,
		"reason", result.Reason)
}

// advanceBacklog moves videos stuck between pipeline phases forward:
// discovered videos into transcription and transcribed videos into
// summarization, oldest first, up to the configured limit per phase.
func (s *Service) advanceBacklog(ctx context.Context, runID string) {
	limit := s.settings.Scheduler.BacklogLimit

	discovered, err := s.store.ListVideosByStatus(ctx, video.StatusDiscovered, limit)
	if err != nil {
		s.logger.Error("Failed to list discovered backlog", "run_id", runID, "error", err)
	} else if len(discovered) > 0 {
		s.dispatch(ctx, runID, s.orch.DispatchTranscriber, orchestrator.BatchTranscribe{VideoIDs: videoIDs(discovered)})
	}

	transcribed, err := s.store.ListVideosByStatus(ctx, video.StatusTranscribed, limit)
	if err != nil {
		s.logger.Error("Failed to list transcribed backlog", "run_id", runID, "error", err)
	} else if len(transcribed) > 0 {
		s.dispatch(ctx, runID, s.orch.DispatchSummarizer, orchestrator.BatchSummarize{VideoIDs: videoIDs(transcribed)})
	}
}

// emitRunReport projects the run window's audit entries into a run summary
// and hands it to the orchestrator for scoring and delivery.
func (s *Service) emitRunReport(ctx context.Context, runID string, started time.Time) {
	completed := s.now()

	counts, err := s.store.CountAuditActionsBetween(ctx, started, completed)
	if err != nil {
		s.logger.Error("Failed to count run outcomes", "run_id", runID, "error", err)
		return
	}
	state, err := s.orch.SnapshotSystemState(ctx)
	if err != nil {
		s.logger.Error("Failed to snapshot system state", "run_id", runID, "error", err)
		return
	}

	quotaState := make(map[string]float64)
	for _, service := range []string{policy.ServiceYouTube, policy.ServiceAssemblyAI} {
		if u, ok := policy.Utilization(state, service); ok {
			quotaState[service] = u
		}
	}

	summary := orchestrator.RunSummary{
		Planned:      counts["job_dispatched"],
		Succeeded:    counts["job_completed"],
		Failed:       counts["job_dlq_routed"] + counts["job_skipped"],
		DLQCount:     counts["job_dlq_routed"],
		QuotaState:   quotaState,
		TotalCostUSD: state.SpentTodayUSD,
	}

	events, err := s.orch.EmitRunEvents(ctx, summary, orchestrator.RunContext{
		RunID:       runID,
		RunType:     "daily",
		Trigger:     "scheduled",
		StartedAt:   started,
		CompletedAt: completed,
	}, alertLevel(summary))
	if err != nil {
		s.logger.Error("Failed to emit run events", "run_id", runID, "error", err)
		return
	}
	s.logger.Info("Daily run reported",
		"run_id", runID,
		"planned", summary.Planned,
		"succeeded", summary.Succeeded,
		"dlq", summary.DLQCount,
		"success_rate", events.SuccessRate,
		"health_score", events.HealthScore)
}

// alertLevel grades the run: any DLQ routing is a warning, a run with no
// successes at all is an error.
func alertLevel(summary orchestrator.RunSummary) orchestrator.AlertLevel {
	if summary.Planned > 0 && summary.Succeeded == 0 {
		return orchestrator.AlertError
	}
	if summary.DLQCount > 0 {
		return orchestrator.AlertWarning
	}
	return orchestrator.AlertInfo
}

func videoIDs(videos []*ent.Video) []string {
	ids := make([]string, len(videos))
	for i, v := range videos {
		ids[i] = v.ID
	}
	return ids
}
