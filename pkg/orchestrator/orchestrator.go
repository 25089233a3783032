// Package orchestrator coordinates the ingestion pipeline: it plans the
// daily run, dispatches agent jobs through the policy engine, routes
// exhausted jobs to the dead-letter queue, and emits run events. Every
// state-affecting operation lands in the audit log through this package's
// single write path.
package orchestrator

import (
	"context"
	"log/slog"
	"time"

	"github.com/autopiloot/autopiloot/pkg/config"
	"github.com/autopiloot/autopiloot/pkg/policy"
	"github.com/autopiloot/autopiloot/pkg/slack"
	"github.com/autopiloot/autopiloot/pkg/store"
	"github.com/autopiloot/autopiloot/pkg/timeutil"
)

// Orchestrator is the dispatch and reliability coordinator.
type Orchestrator struct {
	store    *store.Store
	settings *config.Settings
	engine   *policy.Engine
	notifier *slack.Service
	logger   *slog.Logger

	// now is swappable for tests.
	now func() time.Time
}

// New creates an orchestrator. The notifier may be nil (notifications
// disabled); all Slack delivery is fail-open.
func New(st *store.Store, settings *config.Settings, notifier *slack.Service) *Orchestrator {
	engine := policy.NewEngine(policy.Config{
		MaxAttempts:    settings.Reliability.Retry.MaxAttempts,
		BaseDelaySec:   settings.Reliability.Retry.BaseDelaySec,
		QuotaThreshold: settings.Reliability.Retry.QuotaThreshold,
	})
	return &Orchestrator{
		store:    st,
		settings: settings,
		engine:   engine,
		notifier: notifier,
		logger:   slog.Default().With("component", "orchestrator"),
		now:      timeutil.NowUTC,
	}
}

// Engine exposes the policy engine for the worker runtime, which re-evaluates
// policy before executing each claimed job.
func (o *Orchestrator) Engine() *policy.Engine {
	return o.engine
}

// SnapshotSystemState assembles the policy engine's view of shared state for
// the current UTC day: quota usage projected from the audit log and the cost
// ledger as-of the last commit.
func (o *Orchestrator) SnapshotSystemState(ctx context.Context) (policy.SystemState, error) {
	now := o.now()
	dayStart := timeutil.UTCDayStart(now)

	ytUsed, err := o.store.SumQuotaConsumedBetween(ctx, policy.ServiceYouTube, dayStart, now)
	if err != nil {
		return policy.SystemState{}, err
	}
	aaUsed, err := o.store.SumQuotaConsumedBetween(ctx, policy.ServiceAssemblyAI, dayStart, now)
	if err != nil {
		return policy.SystemState{}, err
	}
	costs, err := o.store.GetDailyCost(ctx, timeutil.DateKey(now))
	if err != nil {
		return policy.SystemState{}, err
	}

	quotas := o.settings.Reliability.Quotas
	return policy.SystemState{
		Now: now,
		QuotaUsed: map[string]int{
			policy.ServiceYouTube:    ytUsed,
			policy.ServiceAssemblyAI: aaUsed,
		},
		QuotaLimit: map[string]int{
			policy.ServiceYouTube:    quotas.YouTubeDailyLimit,
			policy.ServiceAssemblyAI: quotas.AssemblyAIDailyLimit,
		},
		SpentTodayUSD:  costs.TranscriptionUsd,
		DailyBudgetUSD: o.settings.Budgets.TranscriptionDailyUSD,
	}, nil
}

// audit appends an audit entry outside any transaction. Failures are logged,
// not propagated: the recorded operation already happened.
func (o *Orchestrator) audit(ctx context.Context, actor, action string, details map[string]interface{}) {
	if _, err := o.store.AppendAudit(ctx, actor, action, details); err != nil {
		o.logger.Error("Failed to append audit entry",
			"actor", actor,
			"action", action,
			"error", err)
	}
}
