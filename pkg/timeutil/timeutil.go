// Package timeutil provides the pure time, ID, and naming utilities shared by
// the orchestration core: UTC-normalized timestamps, ISO-8601-Z formatting,
// video-ID extraction, deterministic artifact filenames, idempotency keys,
// exponential backoff, and ISO-8601 duration parsing.
//
// All functions are total and pure. Failure is confined to parsing: invalid
// inputs yield a *ParseError carrying the offending input.
package timeutil

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ISO8601Z is the canonical timestamp layout: UTC with trailing Z, second
// precision.
const ISO8601Z = "2006-01-02T15:04:05Z"

// MaxBackoffSec caps exponential backoff at 24 hours.
const MaxBackoffSec = 86400

// ParseError reports a parse failure along with the offending input.
type ParseError struct {
	Input  string
	Reason string
}

// Error returns the formatted error message.
func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}

// NowUTC returns the current instant normalized to UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FormatISO8601Z formats an instant as UTC ISO-8601 with trailing Z.
func FormatISO8601Z(t time.Time) string {
	return t.UTC().Format(ISO8601Z)
}

// ParseISO8601Z parses a UTC ISO-8601 timestamp. Fractional seconds are
// accepted and truncated to second precision, so parse∘format is the
// identity at second precision.
func ParseISO8601Z(s string) (time.Time, error) {
	for _, layout := range []string{ISO8601Z, time.RFC3339, time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Truncate(time.Second), nil
		}
	}
	return time.Time{}, &ParseError{Input: s, Reason: "not an ISO-8601 UTC timestamp"}
}

// FilenameDate formats an instant as a filename-safe UTC date (yyyy-mm-dd).
func FilenameDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DateKey is the daily cost ledger key for an instant: the UTC date.
func DateKey(t time.Time) string {
	return FilenameDate(t)
}

// JobTimestamp formats an instant as the yyyymmdd_hhmmss suffix of job and
// DLQ identifiers. Second precision makes repeated dispatch within the same
// second collapse onto one job ID.
func JobTimestamp(t time.Time) string {
	return t.UTC().Format("20060102_150405")
}

// UTCDayStart returns midnight UTC of the instant's day.
func UTCDayStart(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ExtractVideoID extracts the canonical 11-character YouTube video ID from
// the URL shapes the pipeline encounters: full watch URLs, youtu.be short
// URLs, embed URLs, shorts URLs, and bare IDs.
func ExtractVideoID(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", &ParseError{Input: raw, Reason: "empty input"}
	}

	if videoIDPattern.MatchString(s) {
		return s, nil
	}

	// Strip scheme and host prefixes down to the identifying segment.
	candidate := s
	for _, prefix := range []string{"https://", "http://"} {
		candidate = strings.TrimPrefix(candidate, prefix)
	}
	candidate = strings.TrimPrefix(candidate, "www.")
	candidate = strings.TrimPrefix(candidate, "m.")

	var id string
	switch {
	case strings.HasPrefix(candidate, "youtube.com/watch"):
		id = queryParam(candidate, "v")
	case strings.HasPrefix(candidate, "youtu.be/"):
		id = pathSegment(candidate, "youtu.be/")
	case strings.HasPrefix(candidate, "youtube.com/embed/"):
		id = pathSegment(candidate, "youtube.com/embed/")
	case strings.HasPrefix(candidate, "youtube.com/shorts/"):
		id = pathSegment(candidate, "youtube.com/shorts/")
	}

	if !videoIDPattern.MatchString(id) {
		return "", &ParseError{Input: raw, Reason: "no 11-character video ID found"}
	}
	return id, nil
}

// queryParam extracts a query parameter value from a raw URL fragment.
func queryParam(raw, key string) string {
	_, query, ok := strings.Cut(raw, "?")
	if !ok {
		return ""
	}
	for _, pair := range strings.Split(query, "&") {
		k, v, _ := strings.Cut(pair, "=")
		if k == key {
			return v
		}
	}
	return ""
}

// pathSegment extracts the first path segment following the given prefix.
func pathSegment(raw, prefix string) string {
	rest := strings.TrimPrefix(raw, prefix)
	if i := strings.IndexAny(rest, "?&#/"); i >= 0 {
		rest = rest[:i]
	}
	return rest
}

// CanonicalURL returns the canonical watch URL for a video ID.
func CanonicalURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

// artifactExt maps artifact types to their fixed file extensions.
var artifactExt = map[string]string{
	"transcript_txt":  "txt",
	"transcript_json": "json",
	"summary_md":      "md",
	"summary_json":    "json",
}

// ArtifactFilename composes the deterministic Drive-style filename
// {video_id}_{yyyy-mm-dd}_{type}.{ext}. The extension is fixed per artifact
// type; unknown types yield a ParseError.
func ArtifactFilename(videoID string, date time.Time, artifactType string) (string, error) {
	ext, ok := artifactExt[artifactType]
	if !ok {
		return "", &ParseError{Input: artifactType, Reason: "unknown artifact type"}
	}
	return fmt.Sprintf("%s_%s_%s.%s", videoID, FilenameDate(date), artifactType, ext), nil
}

// IdempotencyKey composes the key that collapses duplicate work for a
// (video, operation) pair: "{video_id}:{operation}".
func IdempotencyKey(videoID, operation string) string {
	return videoID + ":" + operation
}

// BackoffDelaySec computes the exponential backoff delay in seconds for the
// given attempt: base·2^attempt, capped at 24 hours.
func BackoffDelaySec(baseSec, attempt int) int {
	if baseSec <= 0 {
		return 0
	}
	if attempt < 0 {
		attempt = 0
	}
	// Guard the shift: past 2^31 the cap always wins.
	if attempt > 31 {
		return MaxBackoffSec
	}
	delay := int64(baseSec) << uint(attempt)
	if delay > MaxBackoffSec {
		return MaxBackoffSec
	}
	return int(delay)
}

// BackoffDelayJitterSec computes the backoff delay with ±10% symmetric
// jitter applied. The result always lies within [0.9·d, 1.1·d] of the
// unjittered delay d.
func BackoffDelayJitterSec(baseSec, attempt int) int {
	delay := BackoffDelaySec(baseSec, attempt)
	if delay == 0 {
		return 0
	}
	jitter := float64(delay) * 0.1
	offset := (rand.Float64()*2 - 1) * jitter
	return int(float64(delay) + offset)
}

// SecondsUntilNextUTCMidnight returns the number of seconds from the given
// instant until the next UTC midnight. Used for quota-reset delays.
func SecondsUntilNextUTCMidnight(now time.Time) int {
	now = now.UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return int(midnight.Sub(now).Seconds())
}

var isoDurationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// ParseISODuration parses an ISO-8601 duration of the PT#H#M#S form and
// returns the total number of seconds. At least one component must be
// present.
func ParseISODuration(s string) (int, error) {
	m := isoDurationPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil || (m[1] == "" && m[2] == "" && m[3] == "") {
		return 0, &ParseError{Input: s, Reason: "not an ISO-8601 PT duration"}
	}
	total := 0
	for i, unit := range []int{3600, 60, 1} {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return 0, &ParseError{Input: s, Reason: "duration component overflow"}
		}
		total += n * unit
	}
	return total, nil
}
