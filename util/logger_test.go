package util

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		log       func(*Logger)
		want      string // empty means no output expected
	}{
		{"info at normal", 1, func(l *Logger) { l.Info("hello") }, "[INF] hello"},
		{"info at quiet", 0, func(l *Logger) { l.Info("hello") }, ""},
		{"warn at normal", 1, func(l *Logger) { l.Warn("careful") }, "[WRN] careful"},
		{"verbose at normal", 1, func(l *Logger) { l.Verbose("detail") }, ""},
		{"verbose at verbose", 2, func(l *Logger) { l.Verbose("detail") }, "[VRB] detail"},
		{"debug at verbose", 2, func(l *Logger) { l.Debug("trace") }, ""},
		{"error at quiet", 0, func(l *Logger) { l.Error("boom") }, "[ERR] boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewLogger(tt.verbosity)
			l.SetOutput(&buf)
			tt.log(l)

			got := buf.String()
			if tt.want == "" {
				if got != "" {
					t.Errorf("expected no output, got %q", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("got %q, want substring %q", got, tt.want)
			}
		})
	}
}

func TestLogger_Formatting(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(2)
	l.SetOutput(&buf)
	l.Verbose("trying %s (%d of %d)", "10.0.0.1:80", 1, 3)

	want := "[VRB] trying 10.0.0.1:80 (1 of 3)\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLogger_DebugTimestamps(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(3)
	l.SetOutput(&buf)
	l.Debug("tick")

	// Timestamped form: "15:04:05.000 [DBG] tick"
	got := buf.String()
	if !strings.Contains(got, "[DBG] tick") {
		t.Errorf("got %q, want debug line", got)
	}
	if strings.HasPrefix(got, "[DBG]") {
		t.Errorf("debug output should carry a timestamp prefix, got %q", got)
	}
}
