package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/autopiloot/autopiloot/pkg/agents"
	"github.com/autopiloot/autopiloot/pkg/timeutil"
)

const youtubeBaseURL = "https://www.googleapis.com/youtube/v3"

// searchPageSize is the YouTube Data API maximum for search.list.
const searchPageSize = 50

// YouTube implements agents.ChannelSource against the YouTube Data API v3
// with API-key auth.
type YouTube struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewYouTube creates the client. Deadlines come from the caller's context.
func NewYouTube(apiKey string) *YouTube {
	return &YouTube{apiKey: apiKey, baseURL: youtubeBaseURL, http: &http.Client{}}
}

// NewYouTubeWithBaseURL points the client at a test server.
func NewYouTubeWithBaseURL(apiKey, baseURL string) *YouTube {
	return &YouTube{apiKey: apiKey, baseURL: baseURL, http: &http.Client{}}
}

// ResolveHandle resolves a channel handle ("@name") to its channel ID.
func (y *YouTube) ResolveHandle(ctx context.Context, handle string) (string, error) {
	q := url.Values{}
	q.Set("part", "id")
	q.Set("forHandle", handle)
	q.Set("key", y.apiKey)

	var resp struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
	}
	if err := getJSON(ctx, y.http, y.baseURL+"/channels?"+q.Encode(), nil, &resp); err != nil {
		return "", err
	}
	if len(resp.Items) == 0 {
		return "", fmt.Errorf("no channel found for handle %s", handle)
	}
	return resp.Items[0].ID, nil
}

// ListUploads lists a channel's uploads published in [since, until), oldest
// first, up to limit. Two calls per page: search.list for the window and
// videos.list for durations.
func (y *YouTube) ListUploads(ctx context.Context, channelID string, since, until time.Time, limit int) ([]agents.UploadItem, error) {
	if limit <= 0 {
		limit = searchPageSize
	}
	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("channelId", channelID)
	q.Set("type", "video")
	q.Set("order", "date")
	q.Set("maxResults", strconv.Itoa(min(limit, searchPageSize)))
	q.Set("key", y.apiKey)
	if !since.IsZero() {
		q.Set("publishedAfter", since.UTC().Format(time.RFC3339))
	}
	if !until.IsZero() {
		q.Set("publishedBefore", until.UTC().Format(time.RFC3339))
	}

	var search struct {
		Items []struct {
			ID struct {
				VideoID string `json:"videoId"`
			} `json:"id"`
			Snippet struct {
				Title       string    `json:"title"`
				PublishedAt time.Time `json:"publishedAt"`
			} `json:"snippet"`
		} `json:"items"`
	}
	if err := getJSON(ctx, y.http, y.baseURL+"/search?"+q.Encode(), nil, &search); err != nil {
		return nil, err
	}
	if len(search.Items) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(search.Items))
	items := make([]agents.UploadItem, 0, len(search.Items))
	for _, it := range search.Items {
		if it.ID.VideoID == "" {
			continue
		}
		ids = append(ids, it.ID.VideoID)
		items = append(items, agents.UploadItem{
			VideoID:     it.ID.VideoID,
			Title:       it.Snippet.Title,
			PublishedAt: it.Snippet.PublishedAt.UTC(),
		})
	}

	durations, err := y.videoDurations(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].DurationSec = durations[items[i].VideoID]
	}

	// search.list returns newest first; callers advance their checkpoint per
	// item and need oldest first.
	sort.Slice(items, func(i, j int) bool {
		return items[i].PublishedAt.Before(items[j].PublishedAt)
	})
	return items, nil
}

// videoDurations fetches contentDetails for a batch of video IDs.
func (y *YouTube) videoDurations(ctx context.Context, ids []string) (map[string]int, error) {
	q := url.Values{}
	q.Set("part", "contentDetails")
	q.Set("id", strings.Join(ids, ","))
	q.Set("key", y.apiKey)

	var resp struct {
		Items []struct {
			ID             string `json:"id"`
			ContentDetails struct {
				Duration string `json:"duration"`
			} `json:"contentDetails"`
		} `json:"items"`
	}
	if err := getJSON(ctx, y.http, y.baseURL+"/videos?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}

	durations := make(map[string]int, len(resp.Items))
	for _, it := range resp.Items {
		// Unparseable durations read as zero; policy treats zero as unknown.
		sec, _ := timeutil.ParseISODuration(it.ContentDetails.Duration)
		durations[it.ID] = sec
	}
	return durations, nil
}
