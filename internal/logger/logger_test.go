package logger_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/studybananas/internal/logger"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithLevel(logger.WARN),
		logger.WithColors(false),
	)

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error %d", 42)

	out := buf.String()
	assert.NotContains(t, out, "debug message")
	assert.NotContains(t, out, "info message")
	assert.Contains(t, out, "WARN  ")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error 42")
}

func TestLogger_PrefixAndSortedFields(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithLevel(logger.DEBUG),
		logger.WithColors(false),
		logger.WithClock(fixedClock),
	)

	log.WithPrefix("router").
		WithFields(map[string]any{"zeta": 1, "alpha": "a"}).
		WithField("mid", true).
		Info("parsed")

	out := buf.String()
	assert.Contains(t, out, "2024-03-01 09:30:00.000 INFO  [router] [logger_test.go:")
	assert.Contains(t, out, "parsed alpha=a mid=true zeta=1\n")
}

func TestLogger_WithFieldDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := logger.New(logger.WithOutput(&buf), logger.WithColors(false))
	_ = parent.WithField("child", 1)

	parent.Info("plain")
	assert.NotContains(t, buf.String(), "child=1")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logger.Level
	}{
		{in: "debug", want: logger.DEBUG},
		{in: "INFO", want: logger.INFO},
		{in: "warning", want: logger.WARN},
		{in: "ERROR", want: logger.ERROR},
		{in: "nonsense", want: logger.INFO},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.ParseLevel(tt.in))
		})
	}
}

func TestContext_RoundTrip(t *testing.T) {
	l := logger.Discard()
	ctx := logger.NewContext(context.Background(), l)

	assert.Same(t, l, logger.FromContext(ctx))
	assert.Same(t, logger.Default(), logger.FromContext(context.Background()))
}
