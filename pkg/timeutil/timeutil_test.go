package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestISO8601ZRoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

	formatted := FormatISO8601Z(now)
	assert.Equal(t, "2026-03-14T15:09:26Z", formatted)

	parsed, err := ParseISO8601Z(formatted)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(now))
}

func TestParseISO8601Z(t *testing.T) {
	t.Run("truncates fractional seconds", func(t *testing.T) {
		parsed, err := ParseISO8601Z("2026-03-14T15:09:26.123456Z")
		require.NoError(t, err)
		assert.Equal(t, "2026-03-14T15:09:26Z", FormatISO8601Z(parsed))
	})

	t.Run("normalizes offsets to UTC", func(t *testing.T) {
		parsed, err := ParseISO8601Z("2026-03-14T17:09:26+02:00")
		require.NoError(t, err)
		assert.Equal(t, "2026-03-14T15:09:26Z", FormatISO8601Z(parsed))
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := ParseISO8601Z("not a timestamp")
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "not a timestamp", parseErr.Input)
	})
}

func TestExtractVideoID(t *testing.T) {
	const id = "dQw4w9WgXcQ"

	cases := map[string]string{
		"bare ID":           id,
		"watch URL":         "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"watch with params": "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s",
		"short URL":         "https://youtu.be/dQw4w9WgXcQ",
		"short with query":  "https://youtu.be/dQw4w9WgXcQ?si=abc",
		"embed URL":         "https://www.youtube.com/embed/dQw4w9WgXcQ",
		"shorts URL":        "https://www.youtube.com/shorts/dQw4w9WgXcQ",
		"mobile host":       "https://m.youtube.com/watch?v=dQw4w9WgXcQ",
		"no scheme":         "youtube.com/watch?v=dQw4w9WgXcQ",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := ExtractVideoID(input)
			require.NoError(t, err)
			assert.Equal(t, id, got)
		})
	}

	t.Run("idempotent through canonical URL", func(t *testing.T) {
		got, err := ExtractVideoID("https://youtu.be/dQw4w9WgXcQ")
		require.NoError(t, err)
		again, err := ExtractVideoID(CanonicalURL(got))
		require.NoError(t, err)
		assert.Equal(t, got, again)
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		for _, input := range []string{"", "https://example.com/watch?v=abc", "tooshort", "https://www.youtube.com/watch?list=PL123"} {
			_, err := ExtractVideoID(input)
			assert.Error(t, err, "input %q", input)
		}
	})
}

func TestArtifactFilename(t *testing.T) {
	date := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)

	name, err := ArtifactFilename("dQw4w9WgXcQ", date, "transcript_txt")
	require.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ_2026-01-02_transcript_txt.txt", name)

	name, err = ArtifactFilename("dQw4w9WgXcQ", date, "summary_md")
	require.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ_2026-01-02_summary_md.md", name)

	_, err = ArtifactFilename("dQw4w9WgXcQ", date, "thumbnail_png")
	assert.Error(t, err)
}

func TestIdempotencyKey(t *testing.T) {
	assert.Equal(t, "dQw4w9WgXcQ:single_video", IdempotencyKey("dQw4w9WgXcQ", "single_video"))
}

func TestBackoffDelaySec(t *testing.T) {
	assert.Equal(t, 60, BackoffDelaySec(60, 0))
	assert.Equal(t, 120, BackoffDelaySec(60, 1))
	assert.Equal(t, 240, BackoffDelaySec(60, 2))
	assert.Equal(t, MaxBackoffSec, BackoffDelaySec(60, 20))
	assert.Equal(t, MaxBackoffSec, BackoffDelaySec(60, 64))
	assert.Equal(t, 0, BackoffDelaySec(0, 3))
}

func TestBackoffDelayJitterSec(t *testing.T) {
	// Jittered delay lies within ±10% of the unjittered value.
	for attempt := 0; attempt < 8; attempt++ {
		base := BackoffDelaySec(60, attempt)
		for i := 0; i < 100; i++ {
			got := BackoffDelayJitterSec(60, attempt)
			assert.GreaterOrEqual(t, float64(got), 0.9*float64(base)-1)
			assert.LessOrEqual(t, float64(got), 1.1*float64(base)+1)
		}
	}
}

func TestSecondsUntilNextUTCMidnight(t *testing.T) {
	now := time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, 60, SecondsUntilNextUTCMidnight(now))

	now = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 86400, SecondsUntilNextUTCMidnight(now))
}

func TestParseISODuration(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"PT1H30M45S", 5445},
		{"PT4M13S", 253},
		{"PT2H", 7200},
		{"PT45S", 45},
		{"PT0S", 0},
	}
	for _, tc := range cases {
		got, err := ParseISODuration(tc.input)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.want, got, tc.input)
	}

	for _, input := range []string{"", "PT", "1H30M", "P1DT2H", "PTxS"} {
		_, err := ParseISODuration(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestJobTimestamp(t *testing.T) {
	ts := time.Date(2025, 1, 15, 14, 3, 7, 0, time.UTC)
	assert.Equal(t, "20250115_140307", JobTimestamp(ts))

	// Non-UTC inputs normalize before formatting.
	est := time.FixedZone("EST", -5*3600)
	assert.Equal(t, "20250115_140307", JobTimestamp(ts.In(est)))
}

func TestUTCDayStart(t *testing.T) {
	ts := time.Date(2025, 1, 15, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), UTCDayStart(ts))
}
