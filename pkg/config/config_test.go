package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validSettings = `
scraper:
  handles: ["@AlexHormozi"]
  daily_limit_per_channel: 5
reliability:
  quotas:
    youtube_daily_limit: 10000
    assemblyai_daily_limit: 50
  retry:
    max_attempts: 4
    base_delay_sec: 30
budgets:
  transcription_daily_usd: 7.5
llm:
  default:
    model: gpt-4.1
    temperature: 0.3
    max_output_tokens: 1200
  tasks:
    summarizer_generate_short:
      prompt_id: coach_v2
      prompt_version: "3"
notifications:
  slack:
    enabled: true
    channel: ops-autopiloot
`

func TestLoadFile(t *testing.T) {
	t.Run("merges user settings over defaults", func(t *testing.T) {
		settings, err := LoadFile(writeSettings(t, validSettings))
		require.NoError(t, err)

		assert.Equal(t, []string{"@AlexHormozi"}, settings.Scraper.Handles)
		assert.Equal(t, 5, settings.Scraper.DailyLimitPerChannel)
		assert.Equal(t, 4, settings.Reliability.Retry.MaxAttempts)
		assert.Equal(t, 30, settings.Reliability.Retry.BaseDelaySec)
		assert.Equal(t, 7.5, settings.Budgets.TranscriptionDailyUSD)

		// Defaults survive where the file is silent.
		assert.Equal(t, 0.9, settings.Reliability.Retry.QuotaThreshold)
		assert.Equal(t, 4200, settings.Idempotency.MaxVideoDurationSec)
		assert.Equal(t, "Sheet1!A:D", settings.Scraper.SheetRange)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		_, err := LoadFile(writeSettings(t, "reliability:\n  retry:\n    max_attempts: 0\n"))
		require.ErrorIs(t, err, ErrValidationFailed)
	})

	t.Run("explicit zero is rejected, not defaulted", func(t *testing.T) {
		// Zero values do not survive the defaults merge on their own; the
		// loader must still surface them to validation.
		_, err := LoadFile(writeSettings(t, "budgets:\n  transcription_daily_usd: 0\n"))
		require.ErrorIs(t, err, ErrValidationFailed)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		_, err := LoadFile(writeSettings(t, "scraper: [unclosed"))
		require.ErrorIs(t, err, ErrInvalidYAML)
	})

	t.Run("slack enabled requires channel", func(t *testing.T) {
		_, err := LoadFile(writeSettings(t, "notifications:\n  slack:\n    enabled: true\n"))
		require.Error(t, err)
		var missing *MissingConfigurationError
		assert.ErrorAs(t, err, &missing)
	})
}

func TestLLMTaskFallback(t *testing.T) {
	settings, err := LoadFile(writeSettings(t, validSettings))
	require.NoError(t, err)

	task := settings.LLM.Task("summarizer_generate_short")
	assert.Equal(t, "coach_v2", task.PromptID)
	assert.Equal(t, "gpt-4.1", task.Model, "model falls back to default")
	assert.Equal(t, 1200, task.MaxOutputTokens)

	unknown := settings.LLM.Task("nonexistent_task")
	assert.Equal(t, settings.LLM.Default, unknown)
}

func TestDotPathLookup(t *testing.T) {
	settings, err := LoadFile(writeSettings(t, validSettings))
	require.NoError(t, err)

	prompt, err := settings.GetString("llm.tasks.summarizer_generate_short.prompt_id")
	require.NoError(t, err)
	assert.Equal(t, "coach_v2", prompt)

	limit, err := settings.GetInt("scraper.daily_limit_per_channel")
	require.NoError(t, err)
	assert.Equal(t, 5, limit)

	budget, err := settings.GetFloat("budgets.transcription_daily_usd")
	require.NoError(t, err)
	assert.Equal(t, 7.5, budget)

	_, err = settings.GetString("scraper.nonexistent")
	var missing *MissingConfigurationError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "scraper.nonexistent", missing.Path)

	assert.Equal(t, "fallback", settings.GetStringDefault("scraper.nonexistent", "fallback"))
	assert.Equal(t, 42, settings.GetIntDefault("no.such.path", 42))
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("AUTOPILOOT_TEST_CHANNEL", "ops-test")

	out := ExpandEnv([]byte("channel: {{.AUTOPILOOT_TEST_CHANNEL}}"))
	assert.Equal(t, "channel: ops-test", string(out))

	t.Run("missing variables expand to empty", func(t *testing.T) {
		out := ExpandEnv([]byte("key: {{.AUTOPILOOT_UNSET_VAR_XYZ}}"))
		assert.Equal(t, "key: ", string(out))
	})

	t.Run("literal dollar signs pass through", func(t *testing.T) {
		in := []byte(`pattern: "^secret.*$"`)
		assert.Equal(t, in, ExpandEnv(in))
	})
}

func TestLoadCaching(t *testing.T) {
	ResetCache()
	t.Cleanup(ResetCache)

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validSettings), 0o644))

	orig := SearchPath
	SearchPath = []string{path}
	t.Cleanup(func() { SearchPath = orig })

	first, err := Load()
	require.NoError(t, err)

	// Mutating the file does not affect the cached document.
	require.NoError(t, os.WriteFile(path, []byte("scraper:\n  daily_limit_per_channel: 99\n"), 0o644))
	second, err := Load()
	require.NoError(t, err)
	assert.Same(t, first, second)
}
