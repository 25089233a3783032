package config

import (
	"fmt"
	"strings"
)

// Dot-path lookups over the raw settings document. These exist for debug and
// telemetry surfaces only; runtime code reads the typed Settings tree.

// GetString returns the string at a dot-path (e.g.
// "llm.tasks.summarizer_generate_short.prompt_id"), failing with
// MissingConfigurationError if the path is unset or empty.
func (s *Settings) GetString(path string) (string, error) {
	v, ok := s.lookup(path)
	if !ok {
		return "", &MissingConfigurationError{Path: path}
	}
	str, ok := v.(string)
	if !ok || str == "" {
		return "", &MissingConfigurationError{Path: path}
	}
	return str, nil
}

// GetStringDefault returns the string at a dot-path, or the default when the
// path is unset or empty.
func (s *Settings) GetStringDefault(path, def string) string {
	str, err := s.GetString(path)
	if err != nil {
		return def
	}
	return str
}

// GetInt returns the integer at a dot-path, failing with
// MissingConfigurationError if the path is unset or not numeric.
func (s *Settings) GetInt(path string) (int, error) {
	v, ok := s.lookup(path)
	if !ok {
		return 0, &MissingConfigurationError{Path: path}
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("value at %q is %T, not an integer", path, v)
	}
}

// GetIntDefault returns the integer at a dot-path, or the default.
func (s *Settings) GetIntDefault(path string, def int) int {
	n, err := s.GetInt(path)
	if err != nil {
		return def
	}
	return n
}

// GetFloat returns the float at a dot-path, failing with
// MissingConfigurationError if the path is unset or not numeric.
func (s *Settings) GetFloat(path string) (float64, error) {
	v, ok := s.lookup(path)
	if !ok {
		return 0, &MissingConfigurationError{Path: path}
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("value at %q is %T, not a number", path, v)
	}
}

// lookup walks the raw document along a dot-path.
func (s *Settings) lookup(path string) (interface{}, bool) {
	return lookupPath(s.raw, path)
}

// lookupPath walks a raw document along a dot-path.
func lookupPath(raw map[string]interface{}, path string) (interface{}, bool) {
	if raw == nil {
		return nil, false
	}
	var cur interface{} = raw
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}
		cur, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
