package slack

import (
	"fmt"
	"sort"
	"strings"
	"time"

	goslack "github.com/slack-go/slack"
)

const maxBlockTextLength = 2900

// RunReport carries the fields of a pipeline run notification.
type RunReport struct {
	RunID        string
	RunType      string
	Trigger      string
	StartedAt    time.Time
	CompletedAt  time.Time
	Planned      int
	Succeeded    int
	Failed       int
	DLQCount     int
	SuccessRate  float64 // 0..1
	HealthScore  float64 // 0..100
	TotalCostUSD float64
	QuotaState   map[string]float64 // service -> utilization 0..1
	AlertLevel   string             // info, warning, error, critical
}

// DailyReport carries the fields of a daily summary notification.
type DailyReport struct {
	Date              string
	HealthScore       float64
	HealthStatus      string
	Discovered        int
	Processed         int
	ProcessingRate    float64
	TotalCostUSD      float64
	BudgetUtilization float64
	CostPerVideo      float64
	ErrorCount        int
	QuotaState        map[string]float64
	Insights          []string
}

// DLQAlert carries the fields of a DLQ spike notification.
type DLQAlert struct {
	Severity     string
	Message      string
	WindowHours  int
	CurrentRate  float64 // entries per hour
	BaselineRate float64
}

// StatusIcon maps an alert level and success rate to a report emoji. Alert
// level wins; info falls through to the success rate.
func StatusIcon(alertLevel string, successRate float64) string {
	switch alertLevel {
	case "critical":
		return ":rotating_light:"
	case "error":
		return ":x:"
	case "warning":
		return ":warning:"
	}
	switch {
	case successRate >= 0.95:
		return ":white_check_mark:"
	case successRate >= 0.80:
		return ":warning:"
	default:
		return ":x:"
	}
}

// BuildRunReportMessage creates Block Kit blocks for a run completion report.
func BuildRunReportMessage(r RunReport) []goslack.Block {
	icon := StatusIcon(r.AlertLevel, r.SuccessRate)
	header := fmt.Sprintf("%s *Pipeline run %s* (%s, %s)", icon, r.RunID, r.RunType, r.Trigger)

	body := fmt.Sprintf(
		"*Planned:* %d  *Succeeded:* %d  *Failed:* %d  *DLQ:* %d\n"+
			"*Success rate:* %.1f%%  *Health score:* %.0f/100\n"+
			"*Cost:* $%.2f  *Duration:* %s",
		r.Planned, r.Succeeded, r.Failed, r.DLQCount,
		r.SuccessRate*100, r.HealthScore,
		r.TotalCostUSD, r.CompletedAt.Sub(r.StartedAt).Round(time.Second),
	)
	if line := quotaLine(r.QuotaState); line != "" {
		body += "\n*Quota:* " + line
	}

	return []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, header, false, false),
			nil, nil,
		),
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, truncateForSlack(body), false, false),
			nil, nil,
		),
	}
}

// BuildDailyReportMessage creates Block Kit blocks for the daily summary.
func BuildDailyReportMessage(r DailyReport) []goslack.Block {
	header := fmt.Sprintf(":bar_chart: *Daily summary %s* — %s (%.0f/100)", r.Date, r.HealthStatus, r.HealthScore)

	body := fmt.Sprintf(
		"*Videos:* %d discovered, %d processed (%.1f%%)\n"+
			"*Spend:* $%.2f (%.1f%% of budget, $%.2f/video)\n"+
			"*Errors:* %d",
		r.Discovered, r.Processed, r.ProcessingRate*100,
		r.TotalCostUSD, r.BudgetUtilization*100, r.CostPerVideo,
		r.ErrorCount,
	)
	if line := quotaLine(r.QuotaState); line != "" {
		body += "\n*Quota:* " + line
	}

	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, header, false, false),
			nil, nil,
		),
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, truncateForSlack(body), false, false),
			nil, nil,
		),
	}

	if len(r.Insights) > 0 {
		text := "*Insights:*\n• " + strings.Join(r.Insights, "\n• ")
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, truncateForSlack(text), false, false),
			nil, nil,
		))
	}

	return blocks
}

// BuildDLQAlertMessage creates Block Kit blocks for a DLQ spike alert.
func BuildDLQAlertMessage(a DLQAlert) []goslack.Block {
	icon := ":warning:"
	if a.Severity == "critical" || a.Severity == "high" {
		icon = ":rotating_light:"
	}
	text := fmt.Sprintf(
		"%s *DLQ spike (%s)*\n%s\n*Rate:* %.1f/h over the last %dh (baseline %.1f/h)",
		icon, a.Severity, a.Message, a.CurrentRate, a.WindowHours, a.BaselineRate,
	)
	return []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, truncateForSlack(text), false, false),
			nil, nil,
		),
	}
}

func quotaLine(state map[string]float64) string {
	if len(state) == 0 {
		return ""
	}
	services := make([]string, 0, len(state))
	for svc := range state {
		services = append(services, svc)
	}
	sort.Strings(services)
	parts := make([]string, 0, len(services))
	for _, svc := range services {
		parts = append(parts, fmt.Sprintf("%s %.0f%%", svc, state[svc]*100))
	}
	return strings.Join(parts, ", ")
}

func truncateForSlack(text string) string {
	if len(text) <= maxBlockTextLength {
		return text
	}
	return text[:maxBlockTextLength] + "\n\n_... (truncated)_"
}
