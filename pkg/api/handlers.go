package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/autopiloot/autopiloot/pkg/database"
	"github.com/autopiloot/autopiloot/pkg/observability"
	"github.com/autopiloot/autopiloot/pkg/orchestrator"
	"github.com/autopiloot/autopiloot/pkg/timeutil"
	"github.com/autopiloot/autopiloot/pkg/version"
	"github.com/gin-gonic/gin"
)

// Health status values.
const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// HealthCheck is one component's health verdict.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// healthHandler handles GET /health. Only the pipeline's own components
// (database, worker pools) are checked; external collaborators are excluded
// so an upstream outage does not restart the service.
func (s *Server) healthHandler(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	if _, err := database.Health(reqCtx, s.db.DB()); err != nil {
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	for _, pool := range s.pools {
		poolHealth := pool.Health()
		name := "workers_" + poolHealth.Agent
		if !poolHealth.IsHealthy {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			msg := healthStatusUnhealthy
			if poolHealth.DBError != "" {
				msg = poolHealth.DBError
			}
			checks[name] = HealthCheck{Status: healthStatusDegraded, Message: msg}
		} else {
			checks[name] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}
	c.JSON(httpStatus, gin.H{"status": status, "version": version.Full(), "checks": checks})
}

// planHandler handles POST /api/v1/plan. The body is optional; an empty one
// plans with the configured channels and limits.
func (s *Server) planHandler(c *gin.Context) {
	var req PlanRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			errorResponse(c, http.StatusBadRequest, err)
			return
		}
	}

	plan, err := s.orch.PlanDailyRun(c.Request.Context(), orchestrator.PlanOptions{
		Channels:        req.Channels,
		PerChannelLimit: req.PerChannelLimit,
	})
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// dispatchFunc is one of the orchestrator's agent dispatch methods.
type dispatchFunc func(*orchestrator.Orchestrator, context.Context, orchestrator.JobInputs, orchestrator.DispatchOptions) (*orchestrator.DispatchResult, error)

// dispatchHandler handles POST /api/v1/jobs/{scrape,transcribe,summarize}.
// Outcome mapping: dispatched → 202, already_dispatched → 200, rejected → 409.
func (s *Server) dispatchHandler(dispatch dispatchFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DispatchJobRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errorResponse(c, http.StatusBadRequest, err)
			return
		}

		inputs, err := req.jobInputs()
		if err != nil {
			errorResponse(c, http.StatusBadRequest, err)
			return
		}

		result, err := dispatch(s.orch, c.Request.Context(), inputs, req.dispatchOptions())
		if err != nil {
			var invalid *orchestrator.InvalidInputsError
			if errors.As(err, &invalid) {
				errorResponse(c, http.StatusBadRequest, err)
				return
			}
			errorResponse(c, http.StatusInternalServerError, err)
			return
		}

		switch result.Status {
		case orchestrator.StatusDispatched:
			c.JSON(http.StatusAccepted, result)
		case orchestrator.StatusAlreadyDispatched:
			c.JSON(http.StatusOK, result)
		default:
			c.JSON(http.StatusConflict, result)
		}
	}
}

// dlqHandler handles GET /api/v1/dlq.
func (s *Server) dlqHandler(c *gin.Context) {
	query := orchestrator.DLQQuery{
		WindowHours:  intQuery(c, "window_hours"),
		JobType:      c.Query("job_type"),
		Severity:     c.Query("severity"),
		VideoID:      c.Query("video_id"),
		Limit:        intQuery(c, "limit"),
		IncludeStats: boolQuery(c, "include_stats"),
	}

	result, err := s.orch.QueryDLQ(c.Request.Context(), query)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// dlqTrendsHandler handles GET /api/v1/dlq/trends.
func (s *Server) dlqTrendsHandler(c *gin.Context) {
	cfg := observability.TrendConfig{
		WindowHours:            intQuery(c, "window_hours"),
		SpikeThreshold:         floatQuery(c, "spike_threshold"),
		IncludeRecommendations: boolQuery(c, "recommendations"),
	}

	report, err := s.trends.Analyze(c.Request.Context(), cfg)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// dailyReportHandler handles GET /api/v1/reports/daily. date defaults to
// yesterday (UTC); deliver=true also posts the Slack payload.
func (s *Server) dailyReportHandler(c *gin.Context) {
	report, err := s.reporter.DailySummary(c.Request.Context(), observability.DailySummaryOptions{
		Date:    c.Query("date"),
		Deliver: boolQuery(c, "deliver"),
	})
	if err != nil {
		var parseErr *timeutil.ParseError
		if errors.As(err, &parseErr) {
			errorResponse(c, http.StatusBadRequest, err)
			return
		}
		errorResponse(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// llmMetricsHandler handles GET /api/v1/metrics/llm.
func (s *Server) llmMetricsHandler(c *gin.Context) {
	report, err := s.llm.Collect(c.Request.Context(), intQuery(c, "window_hours"))
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// intQuery reads an integer query parameter; absent or malformed reads as 0
// so downstream defaults apply.
func intQuery(c *gin.Context, key string) int {
	v, _ := strconv.Atoi(c.Query(key))
	return v
}

func floatQuery(c *gin.Context, key string) float64 {
	v, _ := strconv.ParseFloat(c.Query(key), 64)
	return v
}

func boolQuery(c *gin.Context, key string) bool {
	v, _ := strconv.ParseBool(c.Query(key))
	return v
}
