package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"text/template"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// SearchPath is the fixed list of locations probed for the settings document,
// first existing wins.
var SearchPath = []string{
	"settings.yaml",
	"config/settings.yaml",
	"/etc/autopiloot/settings.yaml",
}

var (
	cacheMu sync.Mutex
	cached  *Settings
)

// Load resolves, parses, validates, and caches the settings document for the
// process lifetime. Subsequent calls return the cached document; a process
// restart reloads.
func Load() (*Settings, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if cached != nil {
		return cached, nil
	}

	path, err := resolvePath()
	if err != nil {
		return nil, err
	}

	settings, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	cached = settings
	return cached, nil
}

// ResetCache clears the process-level settings cache. Test hook.
func ResetCache() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	cached = nil
}

// LoadFile parses and validates a settings document from an explicit path,
// bypassing the cache. Environment variables referenced as {{.VAR_NAME}} are
// expanded before parsing.
func LoadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	data = ExpandEnv(data)

	user := &Settings{}
	if err := yaml.Unmarshal(data, user); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidYAML, path, err)
	}

	settings := defaultSettings()
	if err := mergo.Merge(settings, user, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("merging settings: %w", err)
	}

	// Keep the raw document for dot-path debug lookups.
	raw := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &raw); err == nil {
		settings.raw = raw
		applyExplicitValues(settings, raw)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	slog.Info("Settings loaded", "path", path)
	return settings, nil
}

// applyExplicitValues re-applies validated numeric knobs that are explicitly
// present in the raw document. mergo skips zero-valued source fields, so
// without this an explicit `max_attempts: 0` would silently fall back to the
// default and never reach Validate.
func applyExplicitValues(s *Settings, raw map[string]interface{}) {
	setInt := func(path string, dst *int) {
		if v, ok := lookupPath(raw, path); ok {
			if n, ok := rawInt(v); ok {
				*dst = n
			}
		}
	}
	setFloat := func(path string, dst *float64) {
		if v, ok := lookupPath(raw, path); ok {
			if f, ok := rawFloat(v); ok {
				*dst = f
			}
		}
	}

	setInt("scraper.daily_limit_per_channel", &s.Scraper.DailyLimitPerChannel)
	setInt("reliability.quotas.youtube_daily_limit", &s.Reliability.Quotas.YouTubeDailyLimit)
	setInt("reliability.quotas.assemblyai_daily_limit", &s.Reliability.Quotas.AssemblyAIDailyLimit)
	setInt("reliability.retry.max_attempts", &s.Reliability.Retry.MaxAttempts)
	setInt("reliability.retry.base_delay_sec", &s.Reliability.Retry.BaseDelaySec)
	setFloat("reliability.retry.quota_threshold", &s.Reliability.Retry.QuotaThreshold)
	setFloat("budgets.transcription_daily_usd", &s.Budgets.TranscriptionDailyUSD)
	setInt("idempotency.max_video_duration_sec", &s.Idempotency.MaxVideoDurationSec)
	setInt("queue.workers_per_agent", &s.Queue.WorkersPerAgent)
	setInt("scheduler.backlog_limit", &s.Scheduler.BacklogLimit)
}

func rawInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

func rawFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// resolvePath returns the first existing settings file on the search path.
func resolvePath() (string, error) {
	for _, candidate := range SearchPath {
		if FileExists(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: searched %v", ErrConfigNotFound, SearchPath)
}

// FileExists reports whether path exists and is a regular file. Used for
// credential path checks as well as search-path resolution.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ExpandEnv expands environment variables in YAML content using Go templates
// with {{.VAR_NAME}} syntax, avoiding collision with literal $ in values.
// Missing variables expand to empty string; validation catches required
// fields that end up empty. Malformed templates pass through unchanged.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("settings").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	envMap := make(map[string]string)
	for _, env := range os.Environ() {
		if idx := bytes.IndexByte([]byte(env), '='); idx > 0 {
			envMap[env[:idx]] = env[idx+1:]
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, envMap); err != nil {
		return data
	}
	return buf.Bytes()
}
