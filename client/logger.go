package client

import (
	"strings"

	"go.uber.org/zap"
)

// Logger interface for connection operations.
type Logger interface {
	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

// ZapLogger adapts a zap logger for use in the client package.
type ZapLogger struct {
	log *zap.Logger
}

// NewZapLogger creates a Logger backed by the given zap logger.
func NewZapLogger(log *zap.Logger) *ZapLogger {
	return &ZapLogger{log: log}
}

func (l *ZapLogger) Debug(msg string, fields map[string]any) {
	l.log.Debug(msg, zapFields(fields)...)
}

func (l *ZapLogger) Info(msg string, fields map[string]any) {
	l.log.Info(msg, zapFields(fields)...)
}

func (l *ZapLogger) Warn(msg string, fields map[string]any) {
	l.log.Warn(msg, zapFields(fields)...)
}

func (l *ZapLogger) Error(msg string, fields map[string]any) {
	l.log.Error(msg, zapFields(fields)...)
}

func zapFields(fields map[string]any) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for k, v := range SanitizeFields(fields) {
		out = append(out, zap.Any(k, v))
	}
	return out
}

// NopLogger discards all log output. It is the default logger.
type NopLogger struct{}

func (NopLogger) Debug(string, map[string]any) {}
func (NopLogger) Info(string, map[string]any)  {}
func (NopLogger) Warn(string, map[string]any)  {}
func (NopLogger) Error(string, map[string]any) {}

// SanitizeFields removes sensitive information from log fields.
func SanitizeFields(fields map[string]any) map[string]any {
	sensitiveKeys := map[string]bool{
		"password":    true,
		"passwd":      true,
		"secret":      true,
		"token":       true,
		"credential":  true,
		"credentials": true,
	}

	sanitized := make(map[string]any, len(fields))
	for k, v := range fields {
		if sensitiveKeys[strings.ToLower(k)] {
			sanitized[k] = "[REDACTED]"
			continue
		}
		sanitized[k] = v
	}

	return sanitized
}
