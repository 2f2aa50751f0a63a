package logger

import (
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/bomgrid/bomcheck/pkg/shared/config"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  hclog.Level
	}{
		{"TRACE", hclog.Trace},
		{"DEBUG", hclog.Debug},
		{"INFO", hclog.Info},
		{"WARN", hclog.Warn},
		{"ERROR", hclog.Error},
		{"", hclog.Info},
		{"VERBOSE", hclog.Info},
	}

	for _, tt := range tests {
		if got := parseLogLevel(tt.input); got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestDetermineLogLevelEnvOverride(t *testing.T) {
	cfg := &config.Config{Logger: config.Logger{Level: "error"}}

	if got := determineLogLevel(cfg); got != hclog.Error {
		t.Errorf("determineLogLevel() = %v, want the configured level", got)
	}

	t.Setenv("BOMCHECK_LOG_LEVEL", "debug")
	if got := determineLogLevel(cfg); got != hclog.Debug {
		t.Errorf("determineLogLevel() = %v, want the environment override", got)
	}
}

func TestNewLogger(t *testing.T) {
	l := NewLogger(&config.Config{Logger: config.Logger{Level: "warn"}}, "core")
	if l.Name() != "core" {
		t.Errorf("Name() = %q, want core", l.Name())
	}
	if !l.IsWarn() {
		t.Error("expected the warn level to be enabled")
	}
	if l.IsDebug() {
		t.Error("did not expect the debug level to be enabled")
	}
}
