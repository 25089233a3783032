package config

import (
	"errors"
	"fmt"
	"time"
)

// Validate checks the settings tree for values that would break the policy
// engine or the dispatchers. Called by the loader after merging defaults.
func (s *Settings) Validate() error {
	var errs []error

	if s.Scraper.DailyLimitPerChannel <= 0 {
		errs = append(errs, &ValidationError{Field: "scraper.daily_limit_per_channel", Err: errors.New("must be positive")})
	}
	if s.Reliability.Quotas.YouTubeDailyLimit <= 0 {
		errs = append(errs, &ValidationError{Field: "reliability.quotas.youtube_daily_limit", Err: errors.New("must be positive")})
	}
	if s.Reliability.Quotas.AssemblyAIDailyLimit <= 0 {
		errs = append(errs, &ValidationError{Field: "reliability.quotas.assemblyai_daily_limit", Err: errors.New("must be positive")})
	}
	if s.Reliability.Retry.MaxAttempts < 1 {
		errs = append(errs, &ValidationError{Field: "reliability.retry.max_attempts", Err: errors.New("must be at least 1")})
	}
	if s.Reliability.Retry.BaseDelaySec <= 0 {
		errs = append(errs, &ValidationError{Field: "reliability.retry.base_delay_sec", Err: errors.New("must be positive")})
	}
	if s.Reliability.Retry.QuotaThreshold <= 0 || s.Reliability.Retry.QuotaThreshold > 1 {
		errs = append(errs, &ValidationError{Field: "reliability.retry.quota_threshold", Err: errors.New("must be in (0, 1]")})
	}
	if s.Budgets.TranscriptionDailyUSD <= 0 {
		errs = append(errs, &ValidationError{Field: "budgets.transcription_daily_usd", Err: errors.New("must be positive")})
	}
	if s.Idempotency.MaxVideoDurationSec <= 0 {
		errs = append(errs, &ValidationError{Field: "idempotency.max_video_duration_sec", Err: errors.New("must be positive")})
	}
	if s.Notifications.Slack.Enabled && s.Notifications.Slack.Channel == "" {
		errs = append(errs, &MissingConfigurationError{Path: "notifications.slack.channel"})
	}
	if s.Queue.WorkersPerAgent <= 0 {
		errs = append(errs, &ValidationError{Field: "queue.workers_per_agent", Err: errors.New("must be positive")})
	}
	if s.Queue.JobTimeout <= 0 {
		errs = append(errs, &ValidationError{Field: "queue.job_timeout", Err: errors.New("must be positive")})
	}
	if _, err := time.Parse("15:04", s.Scheduler.DailyRunTime); err != nil {
		errs = append(errs, &ValidationError{Field: "scheduler.daily_run_time", Err: errors.New("must be HH:MM")})
	}
	if s.Scheduler.BacklogLimit <= 0 {
		errs = append(errs, &ValidationError{Field: "scheduler.backlog_limit", Err: errors.New("must be positive")})
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrValidationFailed, errors.Join(errs...))
	}
	return nil
}
