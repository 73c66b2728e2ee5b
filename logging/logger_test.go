package logging

import (
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func makeEntry(level logrus.Level, msg string, fields logrus.Fields) *logrus.Entry {
	logger := logrus.New()
	entry := logrus.NewEntry(logger).WithFields(fields)
	entry.Level = level
	entry.Message = msg
	entry.Time = time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	return entry
}

func TestTextFormatterDefault(t *testing.T) {
	f := &TextFormatter{}
	out, err := f.Format(makeEntry(logrus.InfoLevel, "dock opened", logrus.Fields{
		"component": "sidebar",
		"position":  "left",
	}))
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}

	s := string(out)
	if !strings.Contains(s, "2026-03-14 10:30:00") {
		t.Errorf("Expected timestamp in output, got %q", s)
	}
	if !strings.Contains(s, "[INFO]") {
		t.Errorf("Expected level tag in output, got %q", s)
	}
	if !strings.Contains(s, "dock opened") {
		t.Errorf("Expected message in output, got %q", s)
	}
	if !strings.Contains(s, "position=left") {
		t.Errorf("Expected extra field in output, got %q", s)
	}
	if !strings.HasSuffix(s, "\n") {
		t.Errorf("Expected trailing newline")
	}
}

func TestTextFormatterWarnShortened(t *testing.T) {
	f := &TextFormatter{Config: FormatConfig{DisableTimestamp: true}}
	out, err := f.Format(makeEntry(logrus.WarnLevel, "slow render", nil))
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}
	if !strings.Contains(string(out), "[WARN]") {
		t.Errorf("Expected warning level to render as WARN, got %q", string(out))
	}
	if strings.Contains(string(out), "2026") {
		t.Errorf("Expected timestamp to be suppressed, got %q", string(out))
	}
}

func TestTextFormatterDisableComponent(t *testing.T) {
	f := &TextFormatter{Config: FormatConfig{DisableTimestamp: true, DisableComponent: true}}
	out, err := f.Format(makeEntry(logrus.InfoLevel, "hello", logrus.Fields{"component": "bridge"}))
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}
	if strings.Contains(string(out), "bridge]") {
		t.Errorf("Expected component tag to be suppressed, got %q", string(out))
	}
}

func TestIsComponentVisible(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *Config
		component string
		want      bool
	}{
		{"nil config shows everything", nil, "workspace", true},
		{"empty config shows everything", &Config{}, "workspace", true},
		{"hide list blocks", &Config{Hide: []string{"bridge"}}, "bridge", false},
		{"hide list passes others", &Config{Hide: []string{"bridge"}}, "workspace", true},
		{"show list passes members", &Config{Show: []string{"workspace"}}, "workspace", true},
		{"show list blocks others", &Config{Show: []string{"workspace"}}, "bridge", false},
		{"show wins over hide", &Config{Show: []string{"bridge"}, Hide: []string{"bridge"}}, "bridge", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsComponentVisible(tt.component, tt.cfg); got != tt.want {
				t.Errorf("IsComponentVisible(%q) = %v, want %v", tt.component, got, tt.want)
			}
		})
	}
}
