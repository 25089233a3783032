package observability

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/autopiloot/autopiloot/ent/video"
	"github.com/autopiloot/autopiloot/pkg/config"
	"github.com/autopiloot/autopiloot/pkg/policy"
	"github.com/autopiloot/autopiloot/pkg/slack"
	"github.com/autopiloot/autopiloot/pkg/store"
	"github.com/autopiloot/autopiloot/pkg/timeutil"
)

// DailySummaryOptions selects the report date and delivery.
type DailySummaryOptions struct {
	Date    string // yyyy-mm-dd, empty → yesterday UTC
	Deliver bool   // send the presentation payload to the notification sink
}

// VideoMetrics summarize the day's video throughput.
type VideoMetrics struct {
	Discovered     int
	Processed      int // reached at least transcribed
	ProcessingRate float64
	BySource       map[string]int
	ByStatus       map[string]int
}

// JobMetrics summarize the day's job activity, combining the audit log (jobs
// are deleted on success) with DLQ routing counts.
type JobMetrics struct {
	Dispatched int
	Failed     int
	ByAgent    map[string]int
	ByType     map[string]int
}

// CostMetrics project the daily cost ledger.
type CostMetrics struct {
	TotalUSD          float64
	TranscriptionUSD  float64
	LLMUSD            float64
	OtherUSD          float64
	BudgetUtilization float64
	CostPerVideo      float64
}

// ErrorMetrics summarize the day's DLQ entries.
type ErrorMetrics struct {
	Total      int
	ByType     map[string]int
	BySeverity map[string]int
}

// PerformanceMetrics are the derived day-level scores.
type PerformanceMetrics struct {
	ProcessingEfficiency float64 // processed / discovered
	CostEfficiency       float64 // budget headroom remaining, clamped [0,1]
	ReliabilityScore     float64 // 1 - dlq rate
	HealthScore          float64 // 0-100
	HealthStatus         string
}

// DailySummaryReport is the full report object for one UTC day.
type DailySummaryReport struct {
	Date         string
	Videos       VideoMetrics
	Jobs         JobMetrics
	Costs        CostMetrics
	Errors       ErrorMetrics
	Quotas       map[string]float64 // service -> utilization 0..1
	Performance  PerformanceMetrics
	Insights     []string
	Notification slack.DailyReport
}

// Insight thresholds.
const (
	lowProcessingRate     = 0.70
	highBudgetUtilization = 0.80
	highErrorCount        = 10
	dominantErrorShare    = 0.50
)

// Reporter derives the daily summary from the state store.
type Reporter struct {
	store    *store.Store
	settings *config.Settings
	notifier *slack.Service
	logger   *slog.Logger
	now      func() time.Time
}

// NewReporter creates a daily summary reporter. The notifier may be nil.
func NewReporter(st *store.Store, settings *config.Settings, notifier *slack.Service) *Reporter {
	return &Reporter{
		store:    st,
		settings: settings,
		notifier: notifier,
		logger:   slog.Default().With("component", "daily-summary"),
		now:      timeutil.NowUTC,
	}
}

// DailySummary builds the report for the target date and optionally delivers
// the presentation payload.
func (r *Reporter) DailySummary(ctx context.Context, opts DailySummaryOptions) (*DailySummaryReport, error) {
	date := opts.Date
	if date == "" {
		date = timeutil.DateKey(r.now().AddDate(0, 0, -1))
	}
	dayStart, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, &timeutil.ParseError{Input: date, Reason: "not a yyyy-mm-dd date"}
	}
	dayEnd := dayStart.AddDate(0, 0, 1)

	videos, err := r.videoMetrics(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	jobs, errMetrics, err := r.jobAndErrorMetrics(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	costs, err := r.costMetrics(ctx, date, videos.Processed)
	if err != nil {
		return nil, err
	}
	quotas, err := r.quotaMetrics(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	performance := computePerformance(videos, jobs, errMetrics, costs, quotas)
	insights := deriveInsights(videos, errMetrics, costs)

	report := &DailySummaryReport{
		Date:        date,
		Videos:      videos,
		Jobs:        jobs,
		Costs:       costs,
		Errors:      errMetrics,
		Quotas:      quotas,
		Performance: performance,
		Insights:    insights,
	}
	report.Notification = slack.DailyReport{
		Date:              date,
		HealthScore:       performance.HealthScore,
		HealthStatus:      performance.HealthStatus,
		Discovered:        videos.Discovered,
		Processed:         videos.Processed,
		ProcessingRate:    videos.ProcessingRate,
		TotalCostUSD:      costs.TotalUSD,
		BudgetUtilization: costs.BudgetUtilization,
		CostPerVideo:      costs.CostPerVideo,
		ErrorCount:        errMetrics.Total,
		QuotaState:        quotas,
		Insights:          insights,
	}

	if opts.Deliver {
		r.notifier.NotifyDailyReport(ctx, report.Notification)
	}

	return report, nil
}

func (r *Reporter) videoMetrics(ctx context.Context, since, until time.Time) (VideoMetrics, error) {
	metrics := VideoMetrics{
		BySource: make(map[string]int),
		ByStatus: make(map[string]int),
	}

	videos, err := r.store.ListVideosCreatedBetween(ctx, since, until, trendFetchLimit)
	if err != nil {
		return metrics, err
	}
	for _, v := range videos {
		metrics.Discovered++
		metrics.BySource[string(v.Source)]++
		metrics.ByStatus[string(v.Status)]++
		if v.Status == video.StatusTranscribed || v.Status == video.StatusSummarized {
			metrics.Processed++
		}
	}
	if metrics.Discovered > 0 {
		metrics.ProcessingRate = float64(metrics.Processed) / float64(metrics.Discovered)
	}
	return metrics, nil
}

func (r *Reporter) jobAndErrorMetrics(ctx context.Context, since, until time.Time) (JobMetrics, ErrorMetrics, error) {
	jobs := JobMetrics{
		ByAgent: make(map[string]int),
		ByType:  make(map[string]int),
	}
	errMetrics := ErrorMetrics{
		ByType:     make(map[string]int),
		BySeverity: make(map[string]int),
	}

	// Successful jobs are deleted, so totals come from the audit trail.
	actions, err := r.store.CountAuditActionsBetween(ctx, since, until)
	if err != nil {
		return jobs, errMetrics, err
	}
	jobs.Dispatched = actions["job_dispatched"]
	jobs.Failed = actions["job_dlq_routed"]

	entries, err := r.store.ListDLQEntriesBetween(ctx, since, until, store.DLQFilter{}, trendFetchLimit)
	if err != nil {
		return jobs, errMetrics, err
	}
	for _, e := range entries {
		errMetrics.Total++
		errMetrics.ByType[e.ErrorType]++
		errMetrics.BySeverity[string(e.Severity)]++
		jobs.ByAgent[agentForJobType(string(e.JobType))]++
		jobs.ByType[string(e.JobType)]++
	}

	// Still-active jobs round out the per-agent/per-type picture.
	_, byAgent, byType, err := r.store.CountJobsCreatedBetween(ctx, since, until)
	if err != nil {
		return jobs, errMetrics, err
	}
	for agent, n := range byAgent {
		jobs.ByAgent[string(agent)] += n
	}
	for jobType, n := range byType {
		jobs.ByType[string(jobType)] += n
	}

	return jobs, errMetrics, nil
}

func (r *Reporter) costMetrics(ctx context.Context, date string, processed int) (CostMetrics, error) {
	ledger, err := r.store.GetDailyCost(ctx, date)
	if err != nil {
		return CostMetrics{}, err
	}
	metrics := CostMetrics{
		TotalUSD:         ledger.TotalUsd,
		TranscriptionUSD: ledger.TranscriptionUsd,
		LLMUSD:           ledger.LlmUsd,
		OtherUSD:         ledger.OtherUsd,
	}
	if budget := r.settings.Budgets.TranscriptionDailyUSD; budget > 0 {
		metrics.BudgetUtilization = ledger.TotalUsd / budget
	}
	if processed > 0 {
		metrics.CostPerVideo = ledger.TotalUsd / float64(processed)
	}
	return metrics, nil
}

func (r *Reporter) quotaMetrics(ctx context.Context, since, until time.Time) (map[string]float64, error) {
	quotas := make(map[string]float64)
	limits := map[string]int{
		policy.ServiceYouTube:    r.settings.Reliability.Quotas.YouTubeDailyLimit,
		policy.ServiceAssemblyAI: r.settings.Reliability.Quotas.AssemblyAIDailyLimit,
	}
	for service, limit := range limits {
		if limit <= 0 {
			continue
		}
		used, err := r.store.SumQuotaConsumedBetween(ctx, service, since, until)
		if err != nil {
			return nil, err
		}
		quotas[service] = float64(used) / float64(limit)
	}
	return quotas, nil
}

func computePerformance(videos VideoMetrics, jobs JobMetrics, errMetrics ErrorMetrics, costs CostMetrics, quotas map[string]float64) PerformanceMetrics {
	dlqRate := 0.0
	if jobs.Dispatched > 0 {
		dlqRate = float64(jobs.Failed) / float64(jobs.Dispatched)
	}

	costEfficiency := 1 - costs.BudgetUtilization
	if costEfficiency < 0 {
		costEfficiency = 0
	}
	if costEfficiency > 1 {
		costEfficiency = 1
	}

	utilizations := make([]float64, 0, len(quotas))
	for _, u := range quotas {
		utilizations = append(utilizations, u)
	}
	score := HealthScore(videos.ProcessingRate, dlqRate, utilizations)

	return PerformanceMetrics{
		ProcessingEfficiency: videos.ProcessingRate,
		CostEfficiency:       costEfficiency,
		ReliabilityScore:     1 - dlqRate,
		HealthScore:          score,
		HealthStatus:         HealthStatus(score),
	}
}

func deriveInsights(videos VideoMetrics, errMetrics ErrorMetrics, costs CostMetrics) []string {
	var insights []string
	if videos.Discovered > 0 && videos.ProcessingRate < lowProcessingRate {
		insights = append(insights, fmt.Sprintf("processing rate %.0f%% is below the %.0f%% target", videos.ProcessingRate*100, lowProcessingRate*100))
	}
	if costs.BudgetUtilization > highBudgetUtilization {
		insights = append(insights, fmt.Sprintf("budget utilization %.0f%% exceeds the %.0f%% watermark", costs.BudgetUtilization*100, highBudgetUtilization*100))
	}
	if errMetrics.Total > highErrorCount {
		insights = append(insights, fmt.Sprintf("%d failures routed to the DLQ", errMetrics.Total))
	}
	for _, pattern := range topErrorTypes(errMetrics.ByType) {
		if errMetrics.Total > 0 && float64(pattern.Count) >= dominantErrorShare*float64(errMetrics.Total) && pattern.Count > 1 {
			insights = append(insights, fmt.Sprintf("%s dominates failures (%d of %d)", pattern.ErrorType, pattern.Count, errMetrics.Total))
		}
	}
	return insights
}

func topErrorTypes(byType map[string]int) []ErrorTypePattern {
	patterns := make([]ErrorTypePattern, 0, len(byType))
	for errType, count := range byType {
		patterns = append(patterns, ErrorTypePattern{ErrorType: errType, Count: count})
	}
	sort.Slice(patterns, func(i, j int) bool {
		if patterns[i].Count != patterns[j].Count {
			return patterns[i].Count > patterns[j].Count
		}
		return patterns[i].ErrorType < patterns[j].ErrorType
	})
	return patterns
}
