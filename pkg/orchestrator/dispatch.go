package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/autopiloot/autopiloot/ent/job"
	"github.com/autopiloot/autopiloot/ent/video"
	"github.com/autopiloot/autopiloot/pkg/policy"
	"github.com/autopiloot/autopiloot/pkg/store"
	"github.com/autopiloot/autopiloot/pkg/timeutil"
)

// InvalidInputsError reports job inputs that fail their per-type schema.
type InvalidInputsError struct {
	JobType job.JobType
	Reason  string
}

func (e *InvalidInputsError) Error() string {
	return fmt.Sprintf("invalid %s inputs: %s", e.JobType, e.Reason)
}

// JobInputs is the tagged-variant interface over per-job-type input schemas.
// Each variant validates its own required fields; derived fields (estimates,
// priorities, defaults) are computed at dispatch.
type JobInputs interface {
	JobType() job.JobType
	Agent() job.Agent
	Validate() error
}

// ChannelScrape discovers recent uploads across a set of channel handles.
type ChannelScrape struct {
	Channels []string
}

func (ChannelScrape) JobType() job.JobType { return job.JobTypeChannelScrape }
func (ChannelScrape) Agent() job.Agent     { return job.AgentScraper }

func (in ChannelScrape) Validate() error {
	if len(in.Channels) == 0 {
		return &InvalidInputsError{JobType: in.JobType(), Reason: "channels must be a non-empty list"}
	}
	for _, c := range in.Channels {
		if c == "" {
			return &InvalidInputsError{JobType: in.JobType(), Reason: "channel handle must be non-empty"}
		}
	}
	return nil
}

// SheetBackfill ingests video links from a spreadsheet range.
type SheetBackfill struct {
	SheetID string
	Range   string // empty → configured default
}

func (SheetBackfill) JobType() job.JobType { return job.JobTypeSheetBackfill }
func (SheetBackfill) Agent() job.Agent     { return job.AgentScraper }

func (in SheetBackfill) Validate() error {
	if in.SheetID == "" {
		return &InvalidInputsError{JobType: in.JobType(), Reason: "sheet_id is required"}
	}
	return nil
}

// SingleVideo transcribes one video.
type SingleVideo struct {
	VideoID  string
	Priority string // empty → medium
}

func (SingleVideo) JobType() job.JobType { return job.JobTypeSingleVideo }
func (SingleVideo) Agent() job.Agent     { return job.AgentTranscriber }

func (in SingleVideo) Validate() error {
	if _, err := timeutil.ExtractVideoID(in.VideoID); err != nil {
		return &InvalidInputsError{JobType: in.JobType(), Reason: "video_id is not a valid video ID"}
	}
	if in.Priority != "" && !validPriority(in.Priority) {
		return &InvalidInputsError{JobType: in.JobType(), Reason: "priority must be high, medium, or low"}
	}
	return nil
}

// BatchTranscribe transcribes a batch of videos.
type BatchTranscribe struct {
	VideoIDs  []string
	BatchSize int // 0 → unbatched
}

func (BatchTranscribe) JobType() job.JobType { return job.JobTypeBatchTranscribe }
func (BatchTranscribe) Agent() job.Agent     { return job.AgentTranscriber }

func (in BatchTranscribe) Validate() error {
	if len(in.VideoIDs) == 0 {
		return &InvalidInputsError{JobType: in.JobType(), Reason: "video_ids must be a non-empty list"}
	}
	if in.BatchSize < 0 {
		return &InvalidInputsError{JobType: in.JobType(), Reason: "batch_size must be non-negative"}
	}
	return nil
}

// SingleSummary summarizes one transcribed video.
type SingleSummary struct {
	VideoID   string
	Platforms []string // subset of {drive, zep, slack}
}

var validPlatforms = map[string]bool{"drive": true, "zep": true, "slack": true}

func (SingleSummary) JobType() job.JobType { return job.JobTypeSingleSummary }
func (SingleSummary) Agent() job.Agent     { return job.AgentSummarizer }

func (in SingleSummary) Validate() error {
	if _, err := timeutil.ExtractVideoID(in.VideoID); err != nil {
		return &InvalidInputsError{JobType: in.JobType(), Reason: "video_id is not a valid video ID"}
	}
	for _, p := range in.Platforms {
		if !validPlatforms[p] {
			return &InvalidInputsError{JobType: in.JobType(), Reason: "platform must be drive, zep, or slack"}
		}
	}
	return nil
}

// BatchSummarize summarizes a batch of transcribed videos.
type BatchSummarize struct {
	VideoIDs       []string
	PromptOverride string
}

func (BatchSummarize) JobType() job.JobType { return job.JobTypeBatchSummarize }
func (BatchSummarize) Agent() job.Agent     { return job.AgentSummarizer }

func (in BatchSummarize) Validate() error {
	if len(in.VideoIDs) == 0 {
		return &InvalidInputsError{JobType: in.JobType(), Reason: "video_ids must be a non-empty list"}
	}
	return nil
}

// DispatchStatus is the outcome kind of a dispatch call.
type DispatchStatus string

// Dispatch outcomes.
const (
	StatusDispatched        DispatchStatus = "dispatched"
	StatusAlreadyDispatched DispatchStatus = "already_dispatched"
	StatusRejected          DispatchStatus = "rejected"
)

// DispatchOptions carry per-call policy overrides and attribution.
type DispatchOptions struct {
	Overrides policy.Overrides
	CreatedBy string
}

// DispatchResult is the outcome of a dispatch call. Rejections carry the
// policy decision that produced them.
type DispatchResult struct {
	Status   DispatchStatus
	JobID    string
	Reason   string
	Decision policy.Decision
}

// DispatchScraper enqueues a discovery job (channel_scrape, sheet_backfill).
func (o *Orchestrator) DispatchScraper(ctx context.Context, inputs JobInputs, opts DispatchOptions) (*DispatchResult, error) {
	return o.dispatchFor(ctx, job.AgentScraper, inputs, opts)
}

// DispatchTranscriber enqueues a transcription job (single_video,
// batch_transcribe).
func (o *Orchestrator) DispatchTranscriber(ctx context.Context, inputs JobInputs, opts DispatchOptions) (*DispatchResult, error) {
	return o.dispatchFor(ctx, job.AgentTranscriber, inputs, opts)
}

// DispatchSummarizer enqueues a summary job (single_summary,
// batch_summarize).
func (o *Orchestrator) DispatchSummarizer(ctx context.Context, inputs JobInputs, opts DispatchOptions) (*DispatchResult, error) {
	return o.dispatchFor(ctx, job.AgentSummarizer, inputs, opts)
}

func (o *Orchestrator) dispatchFor(ctx context.Context, agent job.Agent, inputs JobInputs, opts DispatchOptions) (*DispatchResult, error) {
	if inputs.Agent() != agent {
		return nil, &InvalidInputsError{JobType: inputs.JobType(), Reason: fmt.Sprintf("job type belongs to the %s agent, not %s", inputs.Agent(), agent)}
	}
	return o.Dispatch(ctx, inputs, opts)
}

// Dispatch validates the inputs, gates them through the policy engine with a
// synthetic zero-retry context, composes the idempotent job ID, and writes
// the pending job record. Two dispatches resolving to the same job ID are
// equivalent to one.
func (o *Orchestrator) Dispatch(ctx context.Context, inputs JobInputs, opts DispatchOptions) (*DispatchResult, error) {
	if err := inputs.Validate(); err != nil {
		return nil, err
	}

	spec, err := o.buildJobSpec(ctx, inputs)
	if err != nil {
		return nil, err
	}

	if spec.prereqFailure != "" {
		o.audit(ctx, opts.CreatedBy, "job_dispatch_rejected", map[string]interface{}{
			"job_type": string(inputs.JobType()),
			"reason":   spec.prereqFailure,
		})
		return &DispatchResult{Status: StatusRejected, Reason: spec.prereqFailure}, nil
	}

	state, err := o.SnapshotSystemState(ctx)
	if err != nil {
		return nil, err
	}
	decision := o.engine.Evaluate(policy.JobContext{
		JobType:          string(inputs.JobType()),
		RetryCount:       0,
		EstimatedCostUSD: spec.estimatedCostUSD,
		VideoCount:       len(spec.videoIDs),
	}, state, opts.Overrides)
	if decision.Action != policy.ActionProceed {
		o.audit(ctx, opts.CreatedBy, "job_dispatch_rejected", map[string]interface{}{
			"job_type": string(inputs.JobType()),
			"action":   string(decision.Action),
			"reason":   decision.Reason,
		})
		return &DispatchResult{Status: StatusRejected, Reason: decision.Reason, Decision: decision}, nil
	}

	// At most one active job per (video, agent). Without this check two
	// dispatches in different seconds would mint distinct job IDs for the
	// same video and both insert.
	if spec.videoID != "" {
		active, err := o.store.HasActiveJobForVideo(ctx, inputs.Agent(), spec.videoID)
		if err != nil {
			return nil, err
		}
		if active {
			return &DispatchResult{Status: StatusAlreadyDispatched}, nil
		}
	}

	jobID := string(inputs.JobType()) + "_" + timeutil.JobTimestamp(o.now())
	createdBy := opts.CreatedBy
	if createdBy == "" {
		createdBy = "orchestrator"
	}

	jobInput := store.JobInput{
		JobID:               jobID,
		Agent:               inputs.Agent(),
		JobType:             inputs.JobType(),
		Inputs:              spec.payload,
		PolicyOverrides:     overridesPayload(opts.Overrides),
		Priority:            spec.priority,
		CreatedBy:           createdBy,
		VideoID:             spec.videoID,
		VideoIDs:            spec.videoIDs,
		EstimatedQuotaUsage: spec.estimatedQuota,
		EstimatedCostUSD:    spec.estimatedCostUSD,
	}
	if _, err := o.store.CreateJob(ctx, jobInput); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return &DispatchResult{Status: StatusAlreadyDispatched, JobID: jobID}, nil
		}
		return nil, err
	}

	o.audit(ctx, createdBy, "job_dispatched", map[string]interface{}{
		"job_id":   jobID,
		"job_type": string(inputs.JobType()),
		"agent":    string(inputs.Agent()),
		"priority": string(spec.priority),
	})
	o.logger.Info("Job dispatched",
		"job_id", jobID,
		"job_type", inputs.JobType(),
		"priority", spec.priority)

	return &DispatchResult{Status: StatusDispatched, JobID: jobID}, nil
}

// jobSpec is the derived per-type dispatch data.
type jobSpec struct {
	payload          map[string]interface{}
	priority         job.Priority
	videoID          string
	videoIDs         []string
	estimatedQuota   int
	estimatedCostUSD float64
	prereqFailure    string
}

func (o *Orchestrator) buildJobSpec(ctx context.Context, inputs JobInputs) (*jobSpec, error) {
	switch in := inputs.(type) {
	case ChannelScrape:
		return &jobSpec{
			payload:        map[string]interface{}{"channels": toAnySlice(in.Channels)},
			priority:       job.PriorityHigh,
			estimatedQuota: len(in.Channels) * quotaUnitsPerChannel,
		}, nil

	case SheetBackfill:
		sheetRange := in.Range
		if sheetRange == "" {
			sheetRange = o.settings.Scraper.SheetRange
		}
		return &jobSpec{
			payload:  map[string]interface{}{"sheet_id": in.SheetID, "range": sheetRange},
			priority: job.PriorityMedium,
		}, nil

	case SingleVideo:
		spec := &jobSpec{
			payload:          map[string]interface{}{"video_id": in.VideoID},
			priority:         requestedPriority(in.Priority),
			videoID:          in.VideoID,
			videoIDs:         []string{in.VideoID},
			estimatedCostUSD: policy.DefaultCostPerVideoUSD,
		}
		v, err := o.store.GetVideo(ctx, in.VideoID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		if v != nil {
			spec.payload["estimated_duration_sec"] = v.DurationSec
		}
		return spec, nil

	case BatchTranscribe:
		payload := map[string]interface{}{"video_ids": toAnySlice(in.VideoIDs)}
		if in.BatchSize > 0 {
			payload["batch_size"] = in.BatchSize
		}
		return &jobSpec{
			payload:          payload,
			priority:         job.PriorityLow,
			videoIDs:         in.VideoIDs,
			estimatedCostUSD: policy.DefaultCostPerVideoUSD * float64(len(in.VideoIDs)),
		}, nil

	case SingleSummary:
		if failure, err := o.summaryPrereqFailure(ctx, in.VideoID); err != nil {
			return nil, err
		} else if failure != "" {
			return &jobSpec{prereqFailure: failure}, nil
		}
		payload := map[string]interface{}{
			"video_id":                in.VideoID,
			"estimated_output_tokens": o.settings.LLM.Task("summarizer_generate_short").MaxOutputTokens,
		}
		if len(in.Platforms) > 0 {
			payload["platforms"] = toAnySlice(in.Platforms)
		}
		return &jobSpec{
			payload:  payload,
			priority: job.PriorityMedium,
			videoID:  in.VideoID,
			videoIDs: []string{in.VideoID},
		}, nil

	case BatchSummarize:
		for _, id := range in.VideoIDs {
			if failure, err := o.summaryPrereqFailure(ctx, id); err != nil {
				return nil, err
			} else if failure != "" {
				return &jobSpec{prereqFailure: failure}, nil
			}
		}
		payload := map[string]interface{}{"video_ids": toAnySlice(in.VideoIDs)}
		if in.PromptOverride != "" {
			payload["prompt_override"] = in.PromptOverride
		}
		return &jobSpec{
			payload:  payload,
			priority: job.PriorityLow,
			videoIDs: in.VideoIDs,
		}, nil

	default:
		return nil, &InvalidInputsError{JobType: inputs.JobType(), Reason: "unknown inputs variant"}
	}
}

// summaryPrereqFailure reports why a video cannot be summarized yet: summary
// jobs require the video transcribed.
func (o *Orchestrator) summaryPrereqFailure(ctx context.Context, videoID string) (string, error) {
	v, err := o.store.GetVideo(ctx, videoID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Sprintf("prerequisite not met: video %s not found", videoID), nil
		}
		return "", err
	}
	if v.Status != video.StatusTranscribed {
		return fmt.Sprintf("prerequisite not met: video %s is %s, expected transcribed", videoID, v.Status), nil
	}
	return "", nil
}

func requestedPriority(p string) job.Priority {
	switch p {
	case "high":
		return job.PriorityHigh
	case "low":
		return job.PriorityLow
	default:
		return job.PriorityMedium
	}
}

func validPriority(p string) bool {
	return p == "high" || p == "medium" || p == "low"
}

// overridesPayload serializes the non-nil policy overrides for the job
// record, so workers re-evaluate with the same knobs.
func overridesPayload(ov policy.Overrides) map[string]interface{} {
	payload := map[string]interface{}{}
	if ov.MaxAttempts != nil {
		payload["max_attempts"] = *ov.MaxAttempts
	}
	if ov.BaseDelaySec != nil {
		payload["base_delay_sec"] = *ov.BaseDelaySec
	}
	if ov.QuotaThreshold != nil {
		payload["quota_threshold"] = *ov.QuotaThreshold
	}
	if ov.BudgetLimitUSD != nil {
		payload["budget_limit_usd"] = *ov.BudgetLimitUSD
	}
	if len(payload) == 0 {
		return nil
	}
	return payload
}

// OverridesFromPayload reconstructs policy overrides from a stored job
// record. JSON round-trips all numbers as float64.
func OverridesFromPayload(payload map[string]interface{}) policy.Overrides {
	var ov policy.Overrides
	if v, ok := asFloat(payload["max_attempts"]); ok {
		n := int(v)
		ov.MaxAttempts = &n
	}
	if v, ok := asFloat(payload["base_delay_sec"]); ok {
		n := int(v)
		ov.BaseDelaySec = &n
	}
	if v, ok := asFloat(payload["quota_threshold"]); ok {
		ov.QuotaThreshold = &v
	}
	if v, ok := asFloat(payload["budget_limit_usd"]); ok {
		ov.BudgetLimitUSD = &v
	}
	return ov
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

// toAnySlice widens a string slice for a JSON inputs payload.
func toAnySlice(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
