// Package policy implements the unified retry/backoff/quota/budget decision
// engine. Evaluate is a pure function over (job context, system state,
// overrides): it performs no I/O and reads no globals, so callers snapshot
// system state first and act on the returned decision.
package policy

import (
	"time"

	"github.com/autopiloot/autopiloot/pkg/timeutil"
)

// Action is the decision kind. Exactly one is returned per evaluation.
type Action string

// Decision actions.
const (
	ActionProceed Action = "proceed"
	ActionRetryIn Action = "retry_in"
	ActionSkip    Action = "skip"
	ActionDLQ     Action = "dlq"
)

// Error types for which retry is prohibited. Budget exceedance is handled by
// the budget gate, not this set.
var terminalErrors = map[string]bool{
	"invalid_video_id":     true,
	"video_too_long":       true,
	"unsupported_format":   true,
	"authorization_failed": true,
}

// IsTerminalError reports whether an error type prohibits retry.
func IsTerminalError(errorType string) bool {
	return terminalErrors[errorType]
}

// Quota service names.
const (
	ServiceYouTube    = "youtube"
	ServiceAssemblyAI = "assemblyai"
)

// DefaultQuotaThreshold is the utilization at which dispatch throttles.
const DefaultQuotaThreshold = 0.9

// DefaultCostPerVideoUSD is the estimated transcription cost when the job
// inputs carry no per-video data.
const DefaultCostPerVideoUSD = 0.5

// ReasonBudgetExceeded is the decision reason for DLQ routing on daily
// transcription budget exhaustion. The worker keys its DLQ error
// classification off this literal.
const ReasonBudgetExceeded = "budget_limit_usd exceeded"

// Decision is the single outcome of an evaluation.
type Decision struct {
	Action   Action
	DelaySec int    // set for retry_in: re-invoke no earlier than now + DelaySec
	Reason   string // set for retry_in, skip, and dlq
}

// JobContext describes the job under evaluation.
type JobContext struct {
	JobID         string
	JobType       string
	RetryCount    int
	LastAttemptAt time.Time // zero when the job has never been attempted
	ErrorType     string    // classification of the last failure, if any

	// EstimatedCostUSD is the job's estimated billable cost; when zero the
	// engine derives it from VideoCount at DefaultCostPerVideoUSD.
	EstimatedCostUSD float64
	VideoCount       int
}

// SystemState is the snapshot of shared state the engine reads. Cost-ledger
// reads are as-of the last commit and are not transactional with dispatch
// decisions; accounting is at-least-once and a brief over-commit is possible
// under concurrent dispatchers.
type SystemState struct {
	Now            time.Time
	QuotaUsed      map[string]int
	QuotaLimit     map[string]int
	SpentTodayUSD  float64
	DailyBudgetUSD float64

	// CheckpointDone indicates the targeted item was already processed per
	// the discovery checkpoint.
	CheckpointDone bool
}

// Overrides are optional per-call policy overrides.
type Overrides struct {
	MaxAttempts    *int
	BaseDelaySec   *int
	QuotaThreshold *float64
	BudgetLimitUSD *float64
}

// DiscoveryJobTypes gate on the YouTube quota; TranscriptionJobTypes gate on
// the AssemblyAI quota and the daily budget.
var (
	discoveryJobTypes     = map[string]bool{"channel_scrape": true, "sheet_backfill": true}
	transcriptionJobTypes = map[string]bool{"single_video": true, "batch_transcribe": true}
)

// IsDiscoveryJobType reports whether a job type performs discovery.
func IsDiscoveryJobType(jobType string) bool { return discoveryJobTypes[jobType] }

// IsTranscriptionJobType reports whether a job type performs transcription.
func IsTranscriptionJobType(jobType string) bool { return transcriptionJobTypes[jobType] }

// Config carries the configured policy defaults into the engine.
type Config struct {
	MaxAttempts    int
	BaseDelaySec   int
	QuotaThreshold float64 // 0 → DefaultQuotaThreshold
}

// Engine evaluates policy decisions with fixed configured defaults.
type Engine struct {
	cfg Config
}

// NewEngine creates a policy engine with the given defaults.
func NewEngine(cfg Config) *Engine {
	if cfg.QuotaThreshold == 0 {
		cfg.QuotaThreshold = DefaultQuotaThreshold
	}
	return &Engine{cfg: cfg}
}

// Evaluate applies the decision ordering:
//
//  1. retry budget and terminal errors → dlq
//  2. quota utilization ≥ threshold → retry_in(seconds until next UTC midnight)
//  3. transcription budget insufficient → dlq (terminal for the day; the
//     planner re-enqueues the next day)
//  4. backoff timing unsatisfied → retry_in(remaining)
//  5. checkpoint indicates already processed → skip
//  6. otherwise → proceed
//
// Cheap terminal checks come first; the budget gate sits behind the quota
// gate so quota-caused failures do not consume budget accounting.
func (e *Engine) Evaluate(job JobContext, state SystemState, overrides Overrides) Decision {
	maxAttempts := e.cfg.MaxAttempts
	if overrides.MaxAttempts != nil {
		maxAttempts = *overrides.MaxAttempts
	}
	baseDelay := e.cfg.BaseDelaySec
	if overrides.BaseDelaySec != nil {
		baseDelay = *overrides.BaseDelaySec
	}
	threshold := e.cfg.QuotaThreshold
	if overrides.QuotaThreshold != nil {
		threshold = *overrides.QuotaThreshold
	}

	// 1. Retry budget and terminal errors.
	if job.RetryCount >= maxAttempts {
		return Decision{Action: ActionDLQ, Reason: "max attempts exceeded"}
	}
	if IsTerminalError(job.ErrorType) {
		return Decision{Action: ActionDLQ, Reason: "terminal error: " + job.ErrorType}
	}

	// 2. Quota.
	if service := quotaService(job.JobType); service != "" {
		if utilization, ok := Utilization(state, service); ok && utilization >= threshold {
			return Decision{
				Action:   ActionRetryIn,
				DelaySec: timeutil.SecondsUntilNextUTCMidnight(state.Now),
				Reason:   "quota threshold exceeded",
			}
		}
	}

	// 3. Budget (transcription dispatch only).
	if IsTranscriptionJobType(job.JobType) {
		budget := state.DailyBudgetUSD
		if overrides.BudgetLimitUSD != nil && *overrides.BudgetLimitUSD < budget {
			budget = *overrides.BudgetLimitUSD
		}
		if estimatedCost(job) > budget-state.SpentTodayUSD {
			return Decision{Action: ActionDLQ, Reason: ReasonBudgetExceeded}
		}
	}

	// 4. Backoff timing.
	if job.RetryCount > 0 && !job.LastAttemptAt.IsZero() {
		required := timeutil.BackoffDelaySec(baseDelay, job.RetryCount)
		elapsed := int(state.Now.Sub(job.LastAttemptAt).Seconds())
		if elapsed < required {
			return Decision{
				Action:   ActionRetryIn,
				DelaySec: required - elapsed,
				Reason:   "backoff unsatisfied",
			}
		}
	}

	// 5. Checkpoint.
	if state.CheckpointDone {
		return Decision{Action: ActionSkip, Reason: "already processed per checkpoint"}
	}

	// 6. All policies satisfied.
	return Decision{Action: ActionProceed}
}

// Utilization computes used/limit for a service. The second return is false
// when no limit is configured.
func Utilization(state SystemState, service string) (float64, bool) {
	limit := state.QuotaLimit[service]
	if limit <= 0 {
		return 0, false
	}
	return float64(state.QuotaUsed[service]) / float64(limit), true
}

// EstimatedCostUSD exposes the engine's cost estimate for a job context so
// dispatchers and DLQ enrichment use the same figure.
func EstimatedCostUSD(job JobContext) float64 {
	return estimatedCost(job)
}

func estimatedCost(job JobContext) float64 {
	if job.EstimatedCostUSD > 0 {
		return job.EstimatedCostUSD
	}
	videos := job.VideoCount
	if videos < 1 {
		videos = 1
	}
	return DefaultCostPerVideoUSD * float64(videos)
}

func quotaService(jobType string) string {
	switch {
	case IsDiscoveryJobType(jobType):
		return ServiceYouTube
	case IsTranscriptionJobType(jobType):
		return ServiceAssemblyAI
	default:
		return ""
	}
}
