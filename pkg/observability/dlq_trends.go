package observability

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/autopiloot/autopiloot/ent"
	"github.com/autopiloot/autopiloot/pkg/slack"
	"github.com/autopiloot/autopiloot/pkg/store"
	"github.com/autopiloot/autopiloot/pkg/timeutil"
)

// TrendConfig parameterizes a DLQ trend analysis.
type TrendConfig struct {
	WindowHours            int     // default 24
	SpikeThreshold         float64 // multiplier over baseline, default 2.0
	IncludeRecommendations bool
}

// Defaults for TrendConfig zero values.
const (
	defaultTrendWindowHours = 24
	defaultSpikeThreshold   = 2.0

	// trendFetchLimit bounds one window's fetch; a day of DLQ entries is
	// orders of magnitude smaller.
	trendFetchLimit = 5000
)

// ErrorTypePattern is one error type's share of the analyzed window.
type ErrorTypePattern struct {
	ErrorType  string
	Count      int
	Percentage float64
	Examples   []string // most recent error messages, up to 3
}

// FailurePatterns breaks the window's failures down by kind.
type FailurePatterns struct {
	TopErrors      []ErrorTypePattern
	ByAgent        map[string]int
	ByJobType      map[string]int
	RetryHistogram map[int]int
}

// HourBucket is one hour of the temporal histogram.
type HourBucket struct {
	Start time.Time
	Count int
}

// Burst is a sliding-window interval whose failure count exceeded the spike
// threshold over baseline.
type Burst struct {
	Start time.Time
	End   time.Time
	Count int
}

// TemporalAnalysis clusters the window's failures in time.
type TemporalAnalysis struct {
	HourlyHistogram   []HourBucket
	PeakHours         []time.Time
	VelocityPerMinute float64 // rate over the most recent hour
	BaselinePerMinute float64 // rate over the prior window
	Bursts            []Burst
}

// TrendAlert is raised when the current failure rate exceeds the baseline by
// the spike threshold.
type TrendAlert struct {
	Severity     string // medium, high
	Message      string
	CurrentRate  float64 // entries per hour
	BaselineRate float64
}

// Recommendation is pattern-driven advice keyed to a dominant error bucket.
type Recommendation struct {
	Category    string
	Priority    string // low, medium, high, critical
	Action      string
	Description string
}

// TrendReport is the full DLQ trend analysis for a window.
type TrendReport struct {
	WindowHours     int
	TotalEntries    int
	EntriesPerHour  float64
	PriorEntries    int
	Trend           string // rising, falling, stable
	Patterns        FailurePatterns
	Temporal        TemporalAnalysis
	Alerts          []TrendAlert
	Recommendations []Recommendation
}

// TrendAnalyzer derives DLQ trend reports from the state store and delivers
// spike alerts to the notification sink.
type TrendAnalyzer struct {
	store    *store.Store
	notifier *slack.Service
	logger   *slog.Logger
	now      func() time.Time
}

// NewTrendAnalyzer creates a trend analyzer. The notifier may be nil.
func NewTrendAnalyzer(st *store.Store, notifier *slack.Service) *TrendAnalyzer {
	return &TrendAnalyzer{
		store:    st,
		notifier: notifier,
		logger:   slog.Default().With("component", "dlq-trends"),
		now:      timeutil.NowUTC,
	}
}

// Analyze fetches the current and prior windows and computes the trend
// report. Raised alerts are also delivered to the notification sink.
func (a *TrendAnalyzer) Analyze(ctx context.Context, cfg TrendConfig) (*TrendReport, error) {
	cfg = withTrendDefaults(cfg)
	now := a.now()
	window := time.Duration(cfg.WindowHours) * time.Hour

	current, err := a.store.ListDLQEntriesBetween(ctx, now.Add(-window), now, store.DLQFilter{}, trendFetchLimit)
	if err != nil {
		return nil, err
	}
	prior, err := a.store.ListDLQEntriesBetween(ctx, now.Add(-2*window), now.Add(-window), store.DLQFilter{}, trendFetchLimit)
	if err != nil {
		return nil, err
	}

	report := ComputeTrendReport(current, prior, now, cfg)

	for _, alert := range report.Alerts {
		a.notifier.NotifyDLQAlert(ctx, slack.DLQAlert{
			Severity:     alert.Severity,
			Message:      alert.Message,
			WindowHours:  cfg.WindowHours,
			CurrentRate:  alert.CurrentRate,
			BaselineRate: alert.BaselineRate,
		})
	}

	return report, nil
}

// ComputeTrendReport is the pure core of the analysis: current and prior
// window entries in, full report out.
func ComputeTrendReport(current, prior []*ent.DLQEntry, now time.Time, cfg TrendConfig) *TrendReport {
	cfg = withTrendDefaults(cfg)
	window := time.Duration(cfg.WindowHours) * time.Hour

	currentRate := float64(len(current)) / float64(cfg.WindowHours)
	baselineRate := float64(len(prior)) / float64(cfg.WindowHours)

	report := &TrendReport{
		WindowHours:    cfg.WindowHours,
		TotalEntries:   len(current),
		EntriesPerHour: currentRate,
		PriorEntries:   len(prior),
		Trend:          trendDirection(len(current), len(prior)),
		Patterns:       failurePatterns(current),
		Temporal:       temporalAnalysis(current, prior, now, window, cfg.SpikeThreshold),
	}

	if baselineRate > 0 && currentRate >= cfg.SpikeThreshold*baselineRate {
		ratio := currentRate / baselineRate
		severity := "medium"
		if ratio >= 2*cfg.SpikeThreshold {
			severity = "high"
		}
		report.Alerts = append(report.Alerts, TrendAlert{
			Severity:     severity,
			Message:      fmt.Sprintf("DLQ failure rate %.1fx baseline over the last %dh", ratio, cfg.WindowHours),
			CurrentRate:  currentRate,
			BaselineRate: baselineRate,
		})
	}

	if cfg.IncludeRecommendations && len(report.Patterns.TopErrors) > 0 {
		report.Recommendations = recommend(report.Patterns.TopErrors[0])
	}

	return report
}

func withTrendDefaults(cfg TrendConfig) TrendConfig {
	if cfg.WindowHours <= 0 {
		cfg.WindowHours = defaultTrendWindowHours
	}
	if cfg.SpikeThreshold <= 0 {
		cfg.SpikeThreshold = defaultSpikeThreshold
	}
	return cfg
}

func trendDirection(current, prior int) string {
	if prior == 0 {
		if current > 0 {
			return "rising"
		}
		return "stable"
	}
	ratio := float64(current) / float64(prior)
	switch {
	case ratio > 1.2:
		return "rising"
	case ratio < 0.8:
		return "falling"
	default:
		return "stable"
	}
}

func failurePatterns(entries []*ent.DLQEntry) FailurePatterns {
	patterns := FailurePatterns{
		ByAgent:        make(map[string]int),
		ByJobType:      make(map[string]int),
		RetryHistogram: make(map[int]int),
	}

	byError := make(map[string][]*ent.DLQEntry)
	for _, e := range entries {
		byError[e.ErrorType] = append(byError[e.ErrorType], e)
		patterns.ByAgent[agentForJobType(string(e.JobType))]++
		patterns.ByJobType[string(e.JobType)]++
		patterns.RetryHistogram[e.RetryCount]++
	}

	for errType, group := range byError {
		// Entries arrive newest first; the examples are the most recent.
		examples := make([]string, 0, 3)
		for _, e := range group {
			if len(examples) == 3 {
				break
			}
			examples = append(examples, e.ErrorMessage)
		}
		patterns.TopErrors = append(patterns.TopErrors, ErrorTypePattern{
			ErrorType:  errType,
			Count:      len(group),
			Percentage: float64(len(group)) / float64(len(entries)) * 100,
			Examples:   examples,
		})
	}
	sort.Slice(patterns.TopErrors, func(i, j int) bool {
		if patterns.TopErrors[i].Count != patterns.TopErrors[j].Count {
			return patterns.TopErrors[i].Count > patterns.TopErrors[j].Count
		}
		return patterns.TopErrors[i].ErrorType < patterns.TopErrors[j].ErrorType
	})
	if len(patterns.TopErrors) > 5 {
		patterns.TopErrors = patterns.TopErrors[:5]
	}

	return patterns
}

// burstBucket is the sliding-window step for burst detection.
const burstBucket = 10 * time.Minute

func temporalAnalysis(current, prior []*ent.DLQEntry, now time.Time, window time.Duration, spikeThreshold float64) TemporalAnalysis {
	windowStart := now.Add(-window)
	hours := int(window / time.Hour)

	histogram := make([]HourBucket, hours)
	for i := range histogram {
		histogram[i].Start = windowStart.Add(time.Duration(i) * time.Hour).Truncate(time.Second)
	}
	recentHour := 0
	for _, e := range current {
		idx := int(e.CreatedAt.Sub(windowStart) / time.Hour)
		if idx >= 0 && idx < hours {
			histogram[idx].Count++
		}
		if now.Sub(e.CreatedAt) <= time.Hour {
			recentHour++
		}
	}

	peakCount := 0
	for _, b := range histogram {
		if b.Count > peakCount {
			peakCount = b.Count
		}
	}
	var peaks []time.Time
	if peakCount > 0 {
		for _, b := range histogram {
			if b.Count == peakCount {
				peaks = append(peaks, b.Start)
			}
		}
	}

	baselinePerMinute := float64(len(prior)) / window.Minutes()

	return TemporalAnalysis{
		HourlyHistogram:   histogram,
		PeakHours:         peaks,
		VelocityPerMinute: float64(recentHour) / 60,
		BaselinePerMinute: baselinePerMinute,
		Bursts:            detectBursts(current, windowStart, now, baselinePerMinute, spikeThreshold),
	}
}

// detectBursts slides a 10-minute bucket over the window and flags buckets
// whose count exceeds spikeThreshold times the baseline expectation. Quiet
// baselines still require at least 3 entries to call a burst.
func detectBursts(entries []*ent.DLQEntry, windowStart, now time.Time, baselinePerMinute, spikeThreshold float64) []Burst {
	buckets := int(now.Sub(windowStart) / burstBucket)
	if buckets == 0 {
		return nil
	}
	counts := make([]int, buckets)
	for _, e := range entries {
		idx := int(e.CreatedAt.Sub(windowStart) / burstBucket)
		if idx >= 0 && idx < buckets {
			counts[idx]++
		}
	}

	expected := baselinePerMinute * burstBucket.Minutes()
	var bursts []Burst
	for i, count := range counts {
		if count < 3 {
			continue
		}
		if float64(count) > spikeThreshold*expected {
			start := windowStart.Add(time.Duration(i) * burstBucket)
			bursts = append(bursts, Burst{Start: start, End: start.Add(burstBucket), Count: count})
		}
	}
	return bursts
}

func recommend(dominant ErrorTypePattern) []Recommendation {
	priority := "medium"
	if dominant.Percentage >= 50 {
		priority = "high"
	}

	switch {
	case strings.Contains(dominant.ErrorType, "timeout"):
		return []Recommendation{{
			Category:    "timeouts",
			Priority:    priority,
			Action:      "increase_client_timeout",
			Description: fmt.Sprintf("%s dominates recent failures (%.0f%%); raise the per-call timeout or reduce payload size", dominant.ErrorType, dominant.Percentage),
		}}
	case dominant.ErrorType == "quota_exceeded":
		return []Recommendation{{
			Category:    "quota",
			Priority:    "high",
			Action:      "raise_quota_or_throttle",
			Description: fmt.Sprintf("quota exhaustion caused %.0f%% of failures; raise the daily limit or lower per-run discovery", dominant.Percentage),
		}}
	case dominant.ErrorType == "connection_error":
		return []Recommendation{{
			Category:    "dependency",
			Priority:    "high",
			Action:      "investigate_dependency",
			Description: fmt.Sprintf("connection errors caused %.0f%% of failures; check the upstream service's health", dominant.Percentage),
		}}
	case dominant.ErrorType == "validation_error":
		return []Recommendation{{
			Category:    "input_validation",
			Priority:    priority,
			Action:      "harden_input_filters",
			Description: fmt.Sprintf("validation errors caused %.0f%% of failures; filter malformed inputs before dispatch", dominant.Percentage),
		}}
	default:
		return []Recommendation{{
			Category:    "triage",
			Priority:    "low",
			Action:      "investigate_dominant_error",
			Description: fmt.Sprintf("%s caused %.0f%% of failures; inspect recent examples in the DLQ", dominant.ErrorType, dominant.Percentage),
		}}
	}
}

// agentForJobType maps a job type to its owning agent.
func agentForJobType(jobType string) string {
	switch jobType {
	case "channel_scrape", "sheet_backfill":
		return "scraper"
	case "single_video", "batch_transcribe":
		return "transcriber"
	case "single_summary", "batch_summarize":
		return "summarizer"
	default:
		return "unknown"
	}
}
