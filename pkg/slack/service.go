package slack

import (
	"context"
	"log/slog"
	"time"
)

// ServiceConfig holds the parameters needed to construct a Service.
type ServiceConfig struct {
	Token   string
	Channel string
}

// Service handles Slack notification delivery for operational reports.
// Nil-safe: all methods are no-ops when service is nil.
type Service struct {
	client *Client
	logger *slog.Logger
}

// NewService creates a new Slack notification service.
// Returns nil if Token or Channel is empty.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return &Service{
		client: NewClient(cfg.Token, cfg.Channel),
		logger: slog.Default().With("component", "slack-service"),
	}
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client) *Service {
	return &Service{
		client: client,
		logger: slog.Default().With("component", "slack-service"),
	}
}

// NotifyRunReport sends a pipeline run completion report.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyRunReport(ctx context.Context, report RunReport) {
	if s == nil {
		return
	}
	blocks := BuildRunReportMessage(report)
	if err := s.client.PostMessage(ctx, blocks, 10*time.Second); err != nil {
		s.logger.Error("Failed to send run report",
			"run_id", report.RunID,
			"error", err)
	}
}

// NotifyDailyReport sends the daily summary report.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyDailyReport(ctx context.Context, report DailyReport) {
	if s == nil {
		return
	}
	blocks := BuildDailyReportMessage(report)
	if err := s.client.PostMessage(ctx, blocks, 10*time.Second); err != nil {
		s.logger.Error("Failed to send daily report",
			"date", report.Date,
			"error", err)
	}
}

// NotifyDLQAlert sends a DLQ spike alert.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyDLQAlert(ctx context.Context, alert DLQAlert) {
	if s == nil {
		return
	}
	blocks := BuildDLQAlertMessage(alert)
	if err := s.client.PostMessage(ctx, blocks, 5*time.Second); err != nil {
		s.logger.Error("Failed to send DLQ alert",
			"severity", alert.Severity,
			"error", err)
	}
}
