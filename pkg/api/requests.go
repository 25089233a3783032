package api

import (
	"fmt"

	"github.com/autopiloot/autopiloot/pkg/orchestrator"
	"github.com/autopiloot/autopiloot/pkg/policy"
)

// PlanRequest selects the channels and per-channel limit for a planning run.
// Empty fields fall back to configuration.
type PlanRequest struct {
	Channels        []string `json:"channels"`
	PerChannelLimit int      `json:"per_channel_limit"`
}

// OverridesRequest carries optional per-call policy overrides.
type OverridesRequest struct {
	MaxAttempts    *int     `json:"max_attempts"`
	BaseDelaySec   *int     `json:"base_delay_sec"`
	QuotaThreshold *float64 `json:"quota_threshold"`
	BudgetLimitUSD *float64 `json:"budget_limit_usd"`
}

// DispatchJobRequest is the request body for all three dispatch endpoints;
// Type selects the variant and the per-variant fields it reads.
type DispatchJobRequest struct {
	Type string `json:"type" binding:"required"`

	// channel_scrape / sheet_backfill
	Channels []string `json:"channels"`
	SheetID  string   `json:"sheet_id"`
	Range    string   `json:"range"`

	// single_video / batch_transcribe
	VideoID   string   `json:"video_id"`
	VideoIDs  []string `json:"video_ids"`
	BatchSize int      `json:"batch_size"`
	Priority  string   `json:"priority"`

	// single_summary / batch_summarize
	Platforms      []string `json:"platforms"`
	PromptOverride string   `json:"prompt_override"`

	Overrides *OverridesRequest `json:"overrides"`
	CreatedBy string            `json:"created_by"`
}

// jobInputs maps the request onto its tagged input variant. The variant's
// own Validate runs at dispatch; this only selects and fills the shape.
func (r DispatchJobRequest) jobInputs() (orchestrator.JobInputs, error) {
	switch r.Type {
	case "channel_scrape":
		return orchestrator.ChannelScrape{Channels: r.Channels}, nil
	case "sheet_backfill":
		return orchestrator.SheetBackfill{SheetID: r.SheetID, Range: r.Range}, nil
	case "single_video":
		return orchestrator.SingleVideo{VideoID: r.VideoID, Priority: r.Priority}, nil
	case "batch_transcribe":
		return orchestrator.BatchTranscribe{VideoIDs: r.VideoIDs, BatchSize: r.BatchSize}, nil
	case "single_summary":
		return orchestrator.SingleSummary{VideoID: r.VideoID, Platforms: r.Platforms}, nil
	case "batch_summarize":
		return orchestrator.BatchSummarize{VideoIDs: r.VideoIDs, PromptOverride: r.PromptOverride}, nil
	default:
		return nil, fmt.Errorf("unknown job type %q", r.Type)
	}
}

// dispatchOptions maps overrides and attribution.
func (r DispatchJobRequest) dispatchOptions() orchestrator.DispatchOptions {
	opts := orchestrator.DispatchOptions{CreatedBy: r.CreatedBy}
	if opts.CreatedBy == "" {
		opts.CreatedBy = "api"
	}
	if r.Overrides != nil {
		opts.Overrides = policy.Overrides{
			MaxAttempts:    r.Overrides.MaxAttempts,
			BaseDelaySec:   r.Overrides.BaseDelaySec,
			QuotaThreshold: r.Overrides.QuotaThreshold,
			BudgetLimitUSD: r.Overrides.BudgetLimitUSD,
		}
	}
	return opts
}
