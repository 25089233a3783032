// Package api is the thin JSON layer over the orchestrator: planning,
// dispatch, DLQ queries, and the operational reports. Not a UI.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/autopiloot/autopiloot/pkg/database"
	"github.com/autopiloot/autopiloot/pkg/observability"
	"github.com/autopiloot/autopiloot/pkg/orchestrator"
	"github.com/autopiloot/autopiloot/pkg/queue"
	"github.com/gin-gonic/gin"
)

// Server wires the HTTP routes to the orchestrator and the observability
// reporters.
type Server struct {
	db       *database.Client
	orch     *orchestrator.Orchestrator
	reporter *observability.Reporter
	trends   *observability.TrendAnalyzer
	llm      *observability.LLMCollector
	pools    []*queue.WorkerPool
	logger   *slog.Logger

	router *gin.Engine
	http   *http.Server
}

// NewServer creates the API server and registers all routes. pools may be
// empty (health then reports no worker pools).
func NewServer(db *database.Client, orch *orchestrator.Orchestrator, reporter *observability.Reporter, trends *observability.TrendAnalyzer, llm *observability.LLMCollector, pools []*queue.WorkerPool) *Server {
	s := &Server{
		db:       db,
		orch:     orch,
		reporter: reporter,
		trends:   trends,
		llm:      llm,
		pools:    pools,
		logger:   slog.Default().With("component", "api"),
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(s.logger))

	router.GET("/health", s.healthHandler)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/plan", s.planHandler)
		v1.POST("/jobs/scrape", s.dispatchHandler((*orchestrator.Orchestrator).DispatchScraper))
		v1.POST("/jobs/transcribe", s.dispatchHandler((*orchestrator.Orchestrator).DispatchTranscriber))
		v1.POST("/jobs/summarize", s.dispatchHandler((*orchestrator.Orchestrator).DispatchSummarizer))
		v1.GET("/dlq", s.dlqHandler)
		v1.GET("/dlq/trends", s.dlqTrendsHandler)
		v1.GET("/reports/daily", s.dailyReportHandler)
		v1.GET("/metrics/llm", s.llmMetricsHandler)
	}

	s.router = router
	return s
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start begins serving on addr. Blocks until the listener fails or Shutdown
// is called.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("API server listening", "addr", addr)
	err := s.http.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// requestLogger logs one line per request in the structured format used
// everywhere else.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("Request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	}
}
