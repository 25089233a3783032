// Package observability derives aggregated operational views from the state
// store: DLQ trend analysis, the daily summary report, and LLM usage metrics
// projected from the audit log.
package observability

// Health score weights. Success dominates; DLQ avoidance and quota fit share
// the remainder.
const (
	successWeight  = 0.70
	dlqWeight      = 0.15
	quotaFitWeight = 0.15
)

// HealthScore computes the overall pipeline health on a 0-100 scale from the
// success rate, the DLQ rate, and the mean quota utilization across services.
func HealthScore(successRate, dlqRate float64, quotaUtilizations []float64) float64 {
	fit := QuotaFit(mean(quotaUtilizations))
	score := (successWeight*successRate + dlqWeight*(1-dlqRate) + quotaFitWeight*fit) * 100
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// QuotaFit scores mean quota utilization. The target band [0.70, 0.80] means
// quota is neither wasted nor at risk and scores 1.0; anything under 0.90
// scores 0.67; near-exhaustion scores 0.
func QuotaFit(meanUtilization float64) float64 {
	switch {
	case meanUtilization >= 0.70 && meanUtilization <= 0.80:
		return 1.0
	case meanUtilization < 0.90:
		return 0.67
	default:
		return 0
	}
}

// HealthStatus maps a health score to its textual status.
func HealthStatus(score float64) string {
	switch {
	case score >= 90:
		return "excellent"
	case score >= 80:
		return "good"
	case score >= 60:
		return "fair"
	case score >= 40:
		return "poor"
	default:
		return "critical"
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
