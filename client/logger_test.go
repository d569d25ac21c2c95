package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSanitizeFields(t *testing.T) {
	fields := map[string]any{
		"host":     "dc1.example.com",
		"password": "hunter2",
		"Secret":   "also-hidden",
		"username": "svc-bind",
	}

	sanitized := SanitizeFields(fields)

	assert.Equal(t, "dc1.example.com", sanitized["host"])
	assert.Equal(t, "svc-bind", sanitized["username"])
	assert.Equal(t, "[REDACTED]", sanitized["password"])
	assert.Equal(t, "[REDACTED]", sanitized["Secret"])

	// Input map is left untouched.
	assert.Equal(t, "hunter2", fields["password"])
}

func TestZapLogger_Redaction(t *testing.T) {
	core, observed := observer.New(zap.DebugLevel)
	log := NewZapLogger(zap.New(core))

	log.Info("bind attempt", map[string]any{
		"username": "svc-bind",
		"password": "hunter2",
	})

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "bind attempt", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "svc-bind", fields["username"])
	assert.Equal(t, "[REDACTED]", fields["password"])
}

func TestNopLogger(t *testing.T) {
	// Must tolerate nil field maps.
	var log NopLogger
	log.Debug("msg", nil)
	log.Info("msg", nil)
	log.Warn("msg", nil)
	log.Error("msg", nil)
}
