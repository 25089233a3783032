package slack

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestService_NilReceiver(t *testing.T) {
	var s *Service

	t.Run("NotifyRunReport is no-op", func(_ *testing.T) {
		// Should not panic
		s.NotifyRunReport(context.Background(), RunReport{RunID: "run_1"})
	})

	t.Run("NotifyDailyReport is no-op", func(_ *testing.T) {
		s.NotifyDailyReport(context.Background(), DailyReport{Date: "2025-01-15"})
	})

	t.Run("NotifyDLQAlert is no-op", func(_ *testing.T) {
		s.NotifyDLQAlert(context.Background(), DLQAlert{Severity: "high"})
	})
}

func TestNewService(t *testing.T) {
	t.Run("returns nil when token empty", func(t *testing.T) {
		svc := NewService(ServiceConfig{Token: "", Channel: "ops-autopiloot"})
		assert.Nil(t, svc)
	})

	t.Run("returns nil when channel empty", func(t *testing.T) {
		svc := NewService(ServiceConfig{Token: "xoxb-test", Channel: ""})
		assert.Nil(t, svc)
	})

	t.Run("returns service when configured", func(t *testing.T) {
		svc := NewService(ServiceConfig{Token: "xoxb-test", Channel: "ops-autopiloot"})
		assert.NotNil(t, svc)
	})
}
