package observe

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	buf := &bytes.Buffer{}
	obs := New(buf, true)

	if obs == nil {
		t.Fatal("expected non-nil Observer")
	}
	if obs.log == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestNewJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	obs := NewJSON(buf, true)

	if obs == nil {
		t.Fatal("expected non-nil Observer")
	}
	if obs.log == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestObserver_Log(t *testing.T) {
	buf := &bytes.Buffer{}
	obs := New(buf, true)

	logger := obs.Log()
	if logger == nil {
		t.Fatal("expected non-nil logger from Log()")
	}

	// Log a message and verify it appears in the buffer
	logger.Info().Msg("test message")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("expected output to contain 'test message', got %q", output)
	}
}

func TestObserver_StartSpan(t *testing.T) {
	buf := &bytes.Buffer{}
	obs := New(buf, true)

	ctx := context.Background()
	spanCtx, span := obs.StartSpan(ctx, "test-span")

	if spanCtx == nil {
		t.Fatal("expected non-nil context from StartSpan")
	}
	if span == nil {
		t.Fatal("expected non-nil span from StartSpan")
	}

	// End the span (cleanup)
	span.End()
}

func TestObserver_Close(t *testing.T) {
	buf := &bytes.Buffer{}
	obs := New(buf, true)

	err := obs.Close()
	if err != nil {
		t.Errorf("expected nil error from Close, got %v", err)
	}
}

func TestObserver_LogLevels(t *testing.T) {
	testCases := []struct {
		name  string
		level string
	}{
		{"debug", "debug"},
		{"info", "info"},
		{"warn", "warn"},
		{"error", "error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			obs := New(buf, true)
			logger := obs.Log()

			switch tc.level {
			case "debug":
				logger.Debug().Msg("test")
			case "info":
				logger.Info().Msg("test")
			case "warn":
				logger.Warn().Msg("test")
			case "error":
				logger.Error().Msg("test")
			}

			// Verify something was logged
			output := buf.String()
			if !strings.Contains(output, "test") {
				t.Errorf("expected output to contain 'test', got %q", output)
			}
		})
	}
}

func TestObserver_LogWithFields(t *testing.T) {
	buf := &bytes.Buffer{}
	obs := New(buf, true)

	obs.Log().Info().
		Str("session", "sess-123").
		Int("findings", 5).
		Msg("search complete")

	output := buf.String()
	if !strings.Contains(output, "search complete") {
		t.Errorf("expected output to contain 'search complete', got %q", output)
	}
}

func TestObserver_Component(t *testing.T) {
	buf := &bytes.Buffer{}
	obs := New(buf, true)

	obs.Component("bot").Info().Msg("routed")

	output := buf.String()
	if !strings.Contains(output, "bot") {
		t.Errorf("expected component field in output, got %q", output)
	}
	if !strings.Contains(output, "routed") {
		t.Errorf("expected message in output, got %q", output)
	}
}

func TestObserver_VerboseLowersThreshold(t *testing.T) {
	quiet := &bytes.Buffer{}
	New(quiet, false).Log().Debug().Msg("hidden")
	if strings.Contains(quiet.String(), "hidden") {
		t.Errorf("debug must be filtered when not verbose, got %q", quiet.String())
	}

	loud := &bytes.Buffer{}
	New(loud, true).Log().Debug().Msg("visible")
	if !strings.Contains(loud.String(), "visible") {
		t.Errorf("debug must pass when verbose, got %q", loud.String())
	}
}

func TestNewSilent(t *testing.T) {
	obs := NewSilent()
	obs.Log().Error().Msg("dropped")
	if err := obs.Close(); err != nil {
		t.Errorf("expected nil error from Close, got %v", err)
	}
}
