package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuotaFit(t *testing.T) {
	tests := []struct {
		name string
		mean float64
		want float64
	}{
		{"target band lower edge", 0.70, 1.0},
		{"target band upper edge", 0.80, 1.0},
		{"target band middle", 0.75, 1.0},
		{"under-utilized", 0.30, 0.67},
		{"just above band", 0.85, 0.67},
		{"just below exhaustion", 0.89, 0.67},
		{"near exhaustion", 0.90, 0},
		{"exhausted", 1.0, 0},
		{"idle", 0, 0.67},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, QuotaFit(tt.mean), 1e-9)
		})
	}
}

func TestHealthScore(t *testing.T) {
	t.Run("perfect run in quota band", func(t *testing.T) {
		// 0.70·1 + 0.15·1 + 0.15·1 = 1.0 → 100
		assert.InDelta(t, 100.0, HealthScore(1.0, 0, []float64{0.75}), 1e-9)
	})

	t.Run("perfect run off quota band", func(t *testing.T) {
		// 0.70 + 0.15 + 0.15·0.67 = 0.9505 → 95.05
		assert.InDelta(t, 95.05, HealthScore(1.0, 0, []float64{0.30}), 1e-9)
	})

	t.Run("degraded run", func(t *testing.T) {
		// 0.70·0.5 + 0.15·0.8 + 0.15·0 = 0.47 → 47
		assert.InDelta(t, 47.0, HealthScore(0.5, 0.2, []float64{0.95}), 1e-9)
	})

	t.Run("total failure clamps at zero", func(t *testing.T) {
		assert.InDelta(t, 0.0, HealthScore(0, 1.0, []float64{1.0}), 1e-9)
	})

	t.Run("no quota services scores as under-utilized", func(t *testing.T) {
		assert.InDelta(t, 95.05, HealthScore(1.0, 0, nil), 1e-9)
	})
}

func TestHealthStatus(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{95, "excellent"},
		{90, "excellent"},
		{89.9, "good"},
		{80, "good"},
		{79.9, "fair"},
		{60, "fair"},
		{59.9, "poor"},
		{40, "poor"},
		{39.9, "critical"},
		{0, "critical"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HealthStatus(tt.score), "score %.1f", tt.score)
	}
}
