package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLoggerWrites(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)
	if logger == nil {
		t.Fatal("newLogger() returned nil")
	}

	logger.Info("resolved anchors")

	out := buf.String()
	if !strings.Contains(out, "resolved anchors") {
		t.Errorf("log output %q does not contain the message", out)
	}
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info passes at info", log.InfoLevel, func(l *log.Logger) { l.Info("m") }, true},
		{"debug filtered at info", log.InfoLevel, func(l *log.Logger) { l.Debug("m") }, false},
		{"debug passes at debug", log.DebugLevel, func(l *log.Logger) { l.Debug("m") }, true},
		{"error passes at info", log.InfoLevel, func(l *log.Logger) { l.Error("m") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))

			if gotLog := buf.Len() > 0; gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	prog := newProgress(logger)
	time.Sleep(5 * time.Millisecond)
	prog.done("Resolved 3 anchors")

	out := buf.String()
	if !strings.Contains(out, "Resolved 3 anchors") {
		t.Errorf("done() output %q does not contain the message", out)
	}
	// The elapsed duration is appended in parentheses.
	if !strings.Contains(out, "(") || !strings.Contains(out, ")") {
		t.Errorf("done() output %q does not contain an elapsed duration", out)
	}
}
