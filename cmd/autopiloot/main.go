// Autopiloot server: HTTP API, per-agent worker pools, and the daily run
// scheduler over a shared PostgreSQL state store.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/autopiloot/autopiloot/ent/job"
	"github.com/autopiloot/autopiloot/pkg/agents"
	"github.com/autopiloot/autopiloot/pkg/api"
	"github.com/autopiloot/autopiloot/pkg/clients"
	"github.com/autopiloot/autopiloot/pkg/config"
	"github.com/autopiloot/autopiloot/pkg/database"
	"github.com/autopiloot/autopiloot/pkg/observability"
	"github.com/autopiloot/autopiloot/pkg/orchestrator"
	"github.com/autopiloot/autopiloot/pkg/queue"
	"github.com/autopiloot/autopiloot/pkg/scheduler"
	"github.com/autopiloot/autopiloot/pkg/slack"
	"github.com/autopiloot/autopiloot/pkg/store"
	"github.com/autopiloot/autopiloot/pkg/version"
	"github.com/joho/godotenv"
)

// gracefulShutdownTimeout bounds the wait for in-flight jobs on shutdown;
// anything still running afterwards is orphan-recovered on the next start.
const gracefulShutdownTimeout = 30 * time.Second

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env")
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting Autopiloot", "version", version.Full(), "http_port", httpPort, "pod_id", podID)

	ctx := context.Background()

	settings, err := config.Load()
	if err != nil {
		slog.Error("Failed to load settings", "error", err)
		os.Exit(1)
	}

	creds, err := config.ResolveCredentials()
	if err != nil {
		slog.Error("Failed to resolve credentials", "error", err)
		os.Exit(1)
	}

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// Re-queue jobs this pod abandoned in a previous life.
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
	}

	st := store.New(dbClient.Client)
	notifier := slack.NewService(slack.ServiceConfig{
		Token:   creds.SlackBotToken,
		Channel: settings.Notifications.Slack.Channel,
	})
	if notifier == nil {
		slog.Info("Slack notifications disabled")
	}
	orch := orchestrator.New(st, settings, notifier)

	// Collaborator clients. Transcription is optional; without it only the
	// scraper pool runs and transcription jobs wait in the queue.
	youtube := clients.NewYouTube(creds.YouTubeAPIKey)
	sheets := clients.NewSheets(creds.YouTubeAPIKey)
	openai := clients.NewOpenAI(creds.OpenAIAPIKey, settings.LLM.Task("summarizer_generate_short"))

	var assemblyai *clients.AssemblyAI
	if creds.AssemblyAIAPIKey != "" {
		assemblyai = clients.NewAssemblyAI(creds.AssemblyAIAPIKey)
	}
	var zep *clients.Zep
	if creds.ZepAPIKey != "" {
		zep = clients.NewZep(creds.ZepAPIKey, settings.RAG.OpenSearch.Index)
	}

	pools := []*queue.WorkerPool{
		queue.NewWorkerPool(podID, job.AgentScraper, st, orch, &settings.Queue,
			agents.NewScraper(st, settings, youtube, sheets)),
	}
	if assemblyai != nil {
		var index agents.VectorIndex
		if zep != nil {
			index = zep
		}
		pools = append(pools,
			queue.NewWorkerPool(podID, job.AgentTranscriber, st, orch, &settings.Queue,
				agents.NewTranscriber(st, settings, assemblyai)),
			queue.NewWorkerPool(podID, job.AgentSummarizer, st, orch, &settings.Queue,
				agents.NewSummarizer(st, settings, openai, assemblyai, index)),
		)
	} else {
		slog.Warn("ASSEMBLYAI_API_KEY not set; transcriber and summarizer pools disabled")
	}

	for _, pool := range pools {
		if err := pool.Start(ctx); err != nil {
			slog.Error("Failed to start worker pool", "error", err)
			os.Exit(1)
		}
	}

	var sched *scheduler.Service
	if settings.Scheduler.Enabled {
		sched = scheduler.New(orch, st, settings)
		sched.Start(ctx)
	}

	reporter := observability.NewReporter(st, settings, notifier)
	trends := observability.NewTrendAnalyzer(st, notifier)
	llmCollector := observability.NewLLMCollector(st, nil)

	httpServer := api.NewServer(dbClient, orch, reporter, trends, llmCollector, pools)

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(":" + httpPort); err != nil {
			errCh <- err
		}
	}()

	slog.Info("Autopiloot started",
		"pod_id", podID,
		"pools", len(pools),
		"workers_per_agent", settings.Queue.WorkersPerAgent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	if sched != nil {
		sched.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, gracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		for _, pool := range pools {
			pool.Stop()
		}
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pools stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded; incomplete jobs will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
