package orchestrator

import (
	"context"
	"time"

	"github.com/autopiloot/autopiloot/pkg/observability"
	"github.com/autopiloot/autopiloot/pkg/slack"
)

// AlertLevel grades a run event for the operational report.
type AlertLevel string

// Alert levels.
const (
	AlertInfo     AlertLevel = "info"
	AlertWarning  AlertLevel = "warning"
	AlertError    AlertLevel = "error"
	AlertCritical AlertLevel = "critical"
)

// RunSummary aggregates the outcome of a pipeline run.
type RunSummary struct {
	Planned      int
	Succeeded    int
	Failed       int
	DLQCount     int
	QuotaState   map[string]float64 // service -> utilization 0..1
	TotalCostUSD float64
}

// RunContext identifies the run being reported.
type RunContext struct {
	RunID       string
	RunType     string // daily, manual, backfill
	Trigger     string // scheduled, api
	StartedAt   time.Time
	CompletedAt time.Time
}

// RunEvents is the derived view EmitRunEvents computed and delivered.
type RunEvents struct {
	SuccessRate float64
	HealthScore float64
	StatusIcon  string
}

// EmitRunEvents derives the run's health score, success rate, and status
// icon, delivers the operational report to the notification sink, and appends
// a run_completed audit entry. Notification delivery is fail-open.
func (o *Orchestrator) EmitRunEvents(ctx context.Context, summary RunSummary, run RunContext, level AlertLevel) (*RunEvents, error) {
	successRate := 1.0
	dlqRate := 0.0
	if summary.Planned > 0 {
		successRate = float64(summary.Succeeded) / float64(summary.Planned)
		dlqRate = float64(summary.DLQCount) / float64(summary.Planned)
	}

	utilizations := make([]float64, 0, len(summary.QuotaState))
	for _, u := range summary.QuotaState {
		utilizations = append(utilizations, u)
	}
	healthScore := observability.HealthScore(successRate, dlqRate, utilizations)

	events := &RunEvents{
		SuccessRate: successRate,
		HealthScore: healthScore,
		StatusIcon:  slack.StatusIcon(string(level), successRate),
	}

	o.notifier.NotifyRunReport(ctx, slack.RunReport{
		RunID:        run.RunID,
		RunType:      run.RunType,
		Trigger:      run.Trigger,
		StartedAt:    run.StartedAt,
		CompletedAt:  run.CompletedAt,
		Planned:      summary.Planned,
		Succeeded:    summary.Succeeded,
		Failed:       summary.Failed,
		DLQCount:     summary.DLQCount,
		SuccessRate:  successRate,
		HealthScore:  healthScore,
		TotalCostUSD: summary.TotalCostUSD,
		QuotaState:   summary.QuotaState,
		AlertLevel:   string(level),
	})

	o.audit(ctx, "orchestrator", "run_completed", map[string]interface{}{
		"run_id":         run.RunID,
		"run_type":       run.RunType,
		"trigger":        run.Trigger,
		"planned":        summary.Planned,
		"succeeded":      summary.Succeeded,
		"failed":         summary.Failed,
		"dlq_count":      summary.DLQCount,
		"success_rate":   successRate,
		"health_score":   healthScore,
		"total_cost_usd": summary.TotalCostUSD,
		"alert_level":    string(level),
	})

	return events, nil
}
