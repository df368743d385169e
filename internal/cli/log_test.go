package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	logger.Info("test message")
	if buf.Len() == 0 {
		t.Error("logger should have written output")
	}
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.DebugLevel)

	prog := newProgress(logger)
	time.Sleep(10 * time.Millisecond)
	prog.done("test completed")
	prog.debug("loaded", "count", 3)

	out := buf.String()
	if !strings.Contains(out, "test completed") {
		t.Error("progress.done() output should contain message")
	}
	if !strings.Contains(out, "count=3") || !strings.Contains(out, "took=") {
		t.Errorf("progress.debug() output missing fields: %s", out)
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Error("loggerFromContext should return default logger when none set")
	}

	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), custom)
	if loggerFromContext(ctx) != custom {
		t.Error("loggerFromContext should return the attached logger")
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	h := logHooks{newLogger(&buf, log.DebugLevel)}
	ctx := context.Background()

	h.OnRenderStart(ctx, "svg", 4)
	h.OnRenderComplete(ctx, "svg", time.Second, nil)
	h.OnRenderComplete(ctx, "svg", time.Second, errors.New("boom"))
	h.OnCacheHit(ctx, "render")
	h.OnCacheMiss(ctx, "render")
	h.OnCacheSet(ctx, "render", 10)

	for _, want := range []string{"rendering graph", "rendered graph", "render failed", "cache hit", "cache miss", "cache set"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("hook output missing %q", want)
		}
	}
}
