package observability

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/autopiloot/autopiloot/ent"
	"github.com/autopiloot/autopiloot/pkg/store"
	"github.com/autopiloot/autopiloot/pkg/timeutil"
)

// AuditActionLLMRequest is the audit action LLM callers record per request.
const AuditActionLLMRequest = "llm_request"

// LLMRequest is one recorded LLM call, projected from an audit entry.
type LLMRequest struct {
	Model        string
	Task         string
	PromptID     string
	LatencyMS    float64
	InputTokens  int
	OutputTokens int
	CostUSD      float64
	Success      bool
	At           time.Time
}

// PromptPerformance scores one prompt's recent usage.
type PromptPerformance struct {
	PromptID           string
	Uses               int
	SuccessRate        float64
	AvgOutputTokens    float64
	EffectivenessScore float64
}

// LLMMetricsReport is the projected LLM usage for a window.
type LLMMetricsReport struct {
	WindowHours       int
	TotalRequests     int
	ByModel           map[string]int
	ByTask            map[string]int
	P95LatencyMS      float64
	TotalInputTokens  int
	TotalOutputTokens int
	AvgInputTokens    float64
	AvgOutputTokens   float64
	TotalCostUSD      float64
	CostByModel       map[string]float64
	PromptPerformance []PromptPerformance
	Insights          []string
}

// TelemetrySink receives a redacted subset of LLM metrics. Optional; nil
// disables export.
type TelemetrySink interface {
	ExportLLMMetrics(ctx context.Context, report LLMMetricsReport) error
}

// Insight thresholds for LLM usage.
const (
	highMonthlyCostUSD   = 100.0
	slowP95LatencyMS     = 10000.0
	heavyTokensPerCall   = 8000.0
	modelOveruseShare    = 0.9
	modelOveruseMinCalls = 10
)

// RecordLLMRequest appends an llm_request audit entry. LLM callers record
// each request through this single shape so the collector can project them.
func RecordLLMRequest(ctx context.Context, st *store.Store, actor string, req LLMRequest) error {
	_, err := st.AppendAudit(ctx, actor, AuditActionLLMRequest, map[string]interface{}{
		"model":         req.Model,
		"task":          req.Task,
		"prompt_id":     req.PromptID,
		"latency_ms":    req.LatencyMS,
		"input_tokens":  req.InputTokens,
		"output_tokens": req.OutputTokens,
		"cost_usd":      req.CostUSD,
		"success":       req.Success,
	})
	return err
}

// LLMCollector projects LLM usage metrics from the audit log.
type LLMCollector struct {
	store    *store.Store
	exporter TelemetrySink
	logger   *slog.Logger
	now      func() time.Time
}

// NewLLMCollector creates a collector. The exporter may be nil.
func NewLLMCollector(st *store.Store, exporter TelemetrySink) *LLMCollector {
	return &LLMCollector{
		store:    st,
		exporter: exporter,
		logger:   slog.Default().With("component", "llm-metrics"),
		now:      timeutil.NowUTC,
	}
}

// Collect projects the window's llm_request audit entries into a metrics
// report and exports a copy if a sink is configured. Export is fail-open.
func (c *LLMCollector) Collect(ctx context.Context, windowHours int) (*LLMMetricsReport, error) {
	if windowHours <= 0 {
		windowHours = defaultTrendWindowHours
	}
	now := c.now()
	entries, err := c.store.ListAuditEntriesBetween(ctx, AuditActionLLMRequest,
		now.Add(-time.Duration(windowHours)*time.Hour), now, trendFetchLimit)
	if err != nil {
		return nil, err
	}

	requests := make([]LLMRequest, 0, len(entries))
	for _, e := range entries {
		if req, ok := parseLLMRequest(e); ok {
			requests = append(requests, req)
		}
	}

	report := ComputeLLMMetrics(requests, windowHours)

	if c.exporter != nil {
		if err := c.exporter.ExportLLMMetrics(ctx, *report); err != nil {
			c.logger.Warn("Failed to export LLM metrics", "error", err)
		}
	}
	return report, nil
}

// parseLLMRequest reads one audit entry's details. Malformed entries are
// skipped rather than failing the collection.
func parseLLMRequest(e *ent.AuditLog) (LLMRequest, bool) {
	details := e.Details
	model, ok := details["model"].(string)
	if !ok {
		return LLMRequest{}, false
	}
	req := LLMRequest{Model: model, At: e.CreatedAt}
	req.Task, _ = details["task"].(string)
	req.PromptID, _ = details["prompt_id"].(string)
	req.LatencyMS, _ = details["latency_ms"].(float64)
	req.CostUSD, _ = details["cost_usd"].(float64)
	req.Success, _ = details["success"].(bool)
	if v, ok := details["input_tokens"].(float64); ok {
		req.InputTokens = int(v)
	}
	if v, ok := details["output_tokens"].(float64); ok {
		req.OutputTokens = int(v)
	}
	return req, true
}

// ComputeLLMMetrics is the pure projection: requests in, report out.
func ComputeLLMMetrics(requests []LLMRequest, windowHours int) *LLMMetricsReport {
	report := &LLMMetricsReport{
		WindowHours:   windowHours,
		TotalRequests: len(requests),
		ByModel:       make(map[string]int),
		ByTask:        make(map[string]int),
		CostByModel:   make(map[string]float64),
	}

	latencies := make([]float64, 0, len(requests))
	byPrompt := make(map[string][]LLMRequest)
	for _, req := range requests {
		report.ByModel[req.Model]++
		if req.Task != "" {
			report.ByTask[req.Task]++
		}
		report.TotalInputTokens += req.InputTokens
		report.TotalOutputTokens += req.OutputTokens
		report.TotalCostUSD += req.CostUSD
		report.CostByModel[req.Model] += req.CostUSD
		latencies = append(latencies, req.LatencyMS)
		if req.PromptID != "" {
			byPrompt[req.PromptID] = append(byPrompt[req.PromptID], req)
		}
	}

	if len(requests) > 0 {
		report.AvgInputTokens = float64(report.TotalInputTokens) / float64(len(requests))
		report.AvgOutputTokens = float64(report.TotalOutputTokens) / float64(len(requests))
		report.P95LatencyMS = percentile95(latencies)
	}
	report.PromptPerformance = promptPerformance(byPrompt)
	report.Insights = llmInsights(report)

	return report
}

// percentile95 uses nearest-rank on the sorted latencies.
func percentile95(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	rank := (95*len(sorted) + 99) / 100 // ceil(0.95n)
	if rank < 1 {
		rank = 1
	}
	return sorted[rank-1]
}

// promptPerformance scores each prompt: effectiveness is 70% success rate,
// 30% output-length quality (output volume against a 1000-token yardstick).
func promptPerformance(byPrompt map[string][]LLMRequest) []PromptPerformance {
	perf := make([]PromptPerformance, 0, len(byPrompt))
	for promptID, group := range byPrompt {
		successes := 0
		outputTokens := 0
		for _, req := range group {
			if req.Success {
				successes++
			}
			outputTokens += req.OutputTokens
		}
		successRate := float64(successes) / float64(len(group))
		avgOutput := float64(outputTokens) / float64(len(group))
		lengthQuality := avgOutput / 1000
		if lengthQuality > 1 {
			lengthQuality = 1
		}
		perf = append(perf, PromptPerformance{
			PromptID:           promptID,
			Uses:               len(group),
			SuccessRate:        successRate,
			AvgOutputTokens:    avgOutput,
			EffectivenessScore: 0.7*successRate + 0.3*lengthQuality,
		})
	}
	sort.Slice(perf, func(i, j int) bool {
		if perf[i].Uses != perf[j].Uses {
			return perf[i].Uses > perf[j].Uses
		}
		return perf[i].PromptID < perf[j].PromptID
	})
	return perf
}

func llmInsights(report *LLMMetricsReport) []string {
	var insights []string
	if report.TotalRequests == 0 {
		return insights
	}

	monthlyProjection := report.TotalCostUSD * float64(30*24) / float64(report.WindowHours)
	if monthlyProjection > highMonthlyCostUSD {
		insights = append(insights, fmt.Sprintf("projected monthly LLM cost $%.0f exceeds $%.0f", monthlyProjection, highMonthlyCostUSD))
	}
	if report.P95LatencyMS > slowP95LatencyMS {
		insights = append(insights, fmt.Sprintf("p95 latency %.0fms exceeds %.0fms", report.P95LatencyMS, slowP95LatencyMS))
	}
	if report.AvgInputTokens+report.AvgOutputTokens > heavyTokensPerCall {
		insights = append(insights, fmt.Sprintf("average %.0f tokens per request is heavy", report.AvgInputTokens+report.AvgOutputTokens))
	}
	if report.TotalRequests >= modelOveruseMinCalls {
		for model, count := range report.ByModel {
			if float64(count) >= modelOveruseShare*float64(report.TotalRequests) {
				insights = append(insights, fmt.Sprintf("%s served %d of %d requests; consider routing cheap tasks elsewhere", model, count, report.TotalRequests))
			}
		}
	}
	return insights
}
