package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func boolPtr(v bool) *bool { return &v }

func TestGetBoolValue(t *testing.T) {
	cfg := &Config{
		Logger: Logger{
			JSONFormat:  boolPtr(true),
			DisableTime: boolPtr(false),
		},
	}

	tests := []struct {
		name         string
		fieldPath    string
		defaultValue bool
		want         bool
	}{
		{name: "set to true", fieldPath: "Logger.JSONFormat", defaultValue: false, want: true},
		{name: "set to false beats default", fieldPath: "Logger.DisableTime", defaultValue: true, want: false},
		{name: "unset falls back to default", fieldPath: "Logger.IncludeLocation", defaultValue: true, want: true},
		{name: "unknown path falls back to default", fieldPath: "Logger.Missing", defaultValue: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetBoolValue(cfg, tt.fieldPath, tt.defaultValue))
		})
	}

	assert.True(t, GetBoolValue(nil, "Logger.JSONFormat", true))
}

func TestSetThen(t *testing.T) {
	assert.Equal(t, 5, SetThen(5, 10))
	assert.Equal(t, 10, SetThen(0, 10))
	assert.Equal(t, "custom", SetThen("custom", "default"))
	assert.Equal(t, "default", SetThen("", "default"))
	assert.Equal(t, 30*time.Second, SetThen(time.Duration(0), 30*time.Second))
}
