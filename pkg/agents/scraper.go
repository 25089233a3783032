package agents

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/autopiloot/autopiloot/ent"
	"github.com/autopiloot/autopiloot/ent/job"
	"github.com/autopiloot/autopiloot/ent/video"
	"github.com/autopiloot/autopiloot/pkg/config"
	"github.com/autopiloot/autopiloot/pkg/policy"
	"github.com/autopiloot/autopiloot/pkg/queue"
	"github.com/autopiloot/autopiloot/pkg/store"
	"github.com/autopiloot/autopiloot/pkg/timeutil"
)

// youtubeUnitsPerChannelScan is the quota charge for one channel uploads
// listing (search-equivalent pricing).
const youtubeUnitsPerChannelScan = 100

// checkpointService is the checkpoint namespace for channel discovery.
const checkpointService = "youtube_uploads"

// Scraper executes channel_scrape and sheet_backfill jobs: it discovers
// videos, upserts their records, and advances the discovery checkpoint after
// each successful ingest step so progress survives restarts and quota
// exhaustion.
type Scraper struct {
	store    *store.Store
	settings *config.Settings
	channels ChannelSource
	sheets   SheetSource
	logger   *slog.Logger
}

// NewScraper creates the scraper executor. sheets may be nil when no backfill
// spreadsheet is configured.
func NewScraper(st *store.Store, settings *config.Settings, channels ChannelSource, sheets SheetSource) *Scraper {
	return &Scraper{
		store:    st,
		settings: settings,
		channels: channels,
		sheets:   sheets,
		logger:   slog.Default().With("component", "scraper"),
	}
}

// Execute dispatches on the job type.
func (s *Scraper) Execute(ctx context.Context, j *ent.Job) error {
	switch j.JobType {
	case job.JobTypeChannelScrape:
		return s.executeChannelScrape(ctx, j)
	case job.JobTypeSheetBackfill:
		return s.executeSheetBackfill(ctx, j)
	default:
		return queue.NewJobError("invalid_configuration", fmt.Errorf("scraper cannot execute %s jobs", j.JobType))
	}
}

func (s *Scraper) executeChannelScrape(ctx context.Context, j *ent.Job) error {
	channels := stringsFromInputs(j.Inputs, "channels")
	if len(channels) == 0 {
		channels = s.settings.Scraper.Handles
	}
	limit := s.settings.Scraper.DailyLimitPerChannel

	discovered := 0
	for _, handle := range channels {
		n, err := s.scrapeChannel(ctx, handle, limit)
		discovered += n
		if err != nil {
			return fmt.Errorf("scraping channel %s: %w", handle, err)
		}
	}

	s.audit(ctx, "discovery_completed", map[string]interface{}{
		"job_id":     j.ID,
		"mode":       "channel_scrape",
		"channels":   len(channels),
		"discovered": discovered,
	})
	return nil
}

// scrapeChannel ingests one channel incrementally from its checkpoint.
// Returns the number of videos upserted even when a later step fails, so the
// caller can report partial progress.
func (s *Scraper) scrapeChannel(ctx context.Context, handle string, limit int) (int, error) {
	channelID, err := s.resolveHandle(ctx, handle)
	if err != nil {
		return 0, err
	}

	key := store.CheckpointKey(checkpointService, channelID)
	var since time.Time
	lastProcessed := ""
	cp, err := s.store.GetCheckpoint(ctx, key)
	switch {
	case err == nil:
		since = cp.LastPublishedAt
		lastProcessed = cp.LastProcessedID
	case errors.Is(err, store.ErrNotFound):
		// First scrape of this channel starts from the beginning of time.
	default:
		return 0, err
	}

	now := timeutil.NowUTC()
	callCtx, cancel := context.WithTimeout(ctx, s.settings.Queue.APITimeout)
	uploads, err := s.channels.ListUploads(callCtx, channelID, since, now, limit)
	cancel()
	s.recordQuota(ctx, youtubeUnitsPerChannelScan)
	if err != nil {
		return 0, fmt.Errorf("listing uploads for %s: %w", channelID, err)
	}

	discovered := 0
	for _, item := range uploads {
		// The since bound is inclusive on some sources; the checkpointed
		// last_processed_id breaks the tie.
		if item.VideoID == lastProcessed {
			continue
		}
		if _, err := s.store.UpsertVideo(ctx, store.VideoInput{
			VideoID:     item.VideoID,
			URL:         timeutil.CanonicalURL(item.VideoID),
			Title:       item.Title,
			PublishedAt: item.PublishedAt,
			ChannelID:   channelID,
			DurationSec: item.DurationSec,
			Source:      video.SourceScrape,
		}); err != nil {
			return discovered, err
		}
		discovered++

		if err := s.store.UpsertCheckpoint(ctx, key, item.PublishedAt, item.VideoID); err != nil {
			return discovered, err
		}
	}

	s.logger.Info("Channel scraped",
		"handle", handle,
		"channel_id", channelID,
		"discovered", discovered)
	return discovered, nil
}

func (s *Scraper) resolveHandle(ctx context.Context, handle string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.settings.Queue.APITimeout)
	defer cancel()
	channelID, err := s.channels.ResolveHandle(callCtx, handle)
	if err != nil {
		return "", fmt.Errorf("resolving handle %s: %w", handle, err)
	}
	return channelID, nil
}

func (s *Scraper) executeSheetBackfill(ctx context.Context, j *ent.Job) error {
	if s.sheets == nil {
		return queue.NewJobError("invalid_configuration", errors.New("no sheet source configured"))
	}

	sheetID := stringFromInputs(j.Inputs, "sheet_id")
	if sheetID == "" {
		sheetID = s.settings.Scraper.SheetID
	}
	cellRange := stringFromInputs(j.Inputs, "range")
	if cellRange == "" {
		cellRange = s.settings.Scraper.SheetRange
	}

	callCtx, cancel := context.WithTimeout(ctx, s.settings.Queue.APITimeout)
	urls, err := s.sheets.ListVideoURLs(callCtx, sheetID, cellRange)
	cancel()
	if err != nil {
		return fmt.Errorf("reading sheet %s: %w", sheetID, err)
	}

	discovered := 0
	skipped := 0
	for _, raw := range urls {
		videoID, err := timeutil.ExtractVideoID(raw)
		if err != nil {
			skipped++
			s.logger.Warn("Skipping sheet row without a recognizable video link", "value", raw)
			continue
		}
		// Sheet rows carry only the link; metadata stays zero until a later
		// scrape refreshes it.
		if _, err := s.store.UpsertVideo(ctx, store.VideoInput{
			VideoID:     videoID,
			URL:         timeutil.CanonicalURL(videoID),
			PublishedAt: timeutil.NowUTC(),
			Source:      video.SourceSheet,
		}); err != nil {
			return err
		}
		discovered++
	}

	s.audit(ctx, "discovery_completed", map[string]interface{}{
		"job_id":     j.ID,
		"mode":       "sheet_backfill",
		"sheet_id":   sheetID,
		"discovered": discovered,
		"skipped":    skipped,
	})
	return nil
}

// recordQuota projects YouTube quota consumption into the audit log.
// Best-effort: a lost record under-counts, which the threshold margin absorbs.
func (s *Scraper) recordQuota(ctx context.Context, units int) {
	if err := s.store.RecordQuotaUsage(ctx, "scraper", policy.ServiceYouTube, units); err != nil {
		s.logger.Warn("Failed to record quota usage", "error", err)
	}
}

func (s *Scraper) audit(ctx context.Context, action string, details map[string]interface{}) {
	if _, err := s.store.AppendAudit(ctx, "scraper", action, details); err != nil {
		s.logger.Error("Failed to append audit entry", "action", action, "error", err)
	}
}

// stringsFromInputs reads a string slice out of a JSON-round-tripped inputs
// payload.
func stringsFromInputs(inputs map[string]interface{}, key string) []string {
	switch v := inputs[key].(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func stringFromInputs(inputs map[string]interface{}, key string) string {
	s, _ := inputs[key].(string)
	return s
}
