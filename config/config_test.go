package config

import (
	"reflect"
	"strings"
	"testing"
)

// clearConfigEnv blanks every config variable for the test
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range GetEnvVars() {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DataDir != "data" {
		t.Errorf("expected DataDir data, got %s", cfg.DataDir)
	}
	if cfg.LogDir != "logs" {
		t.Errorf("expected LogDir logs, got %s", cfg.LogDir)
	}
	if cfg.Env != "dev" {
		t.Errorf("expected Env dev, got %s", cfg.Env)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected LogLevel info, got %s", cfg.LogLevel)
	}
	if cfg.LogRetentionWeeks != 4 {
		t.Errorf("expected LogRetentionWeeks 4, got %d", cfg.LogRetentionWeeks)
	}
	if cfg.MaxLogFileSize != 104857600 {
		t.Errorf("expected MaxLogFileSize 100MB, got %d", cfg.MaxLogFileSize)
	}
	if !reflect.DeepEqual(cfg.GenerateAt, []string{"06:00"}) {
		t.Errorf("expected GenerateAt [06:00], got %v", cfg.GenerateAt)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("DATA_DIR", "out")
	t.Setenv("ENV", "prod")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GENERATE_AT", "06:00;18:00")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DataDir != "out" {
		t.Errorf("expected DataDir out, got %s", cfg.DataDir)
	}
	if cfg.Env != "prod" {
		t.Errorf("expected Env prod, got %s", cfg.Env)
	}
	if !reflect.DeepEqual(cfg.GenerateAt, []string{"06:00", "18:00"}) {
		t.Errorf("expected two regeneration times, got %v", cfg.GenerateAt)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  string
	}{
		{"bad env", "ENV", "production", "ENV"},
		{"bad log level", "LOG_LEVEL", "verbose", "LOG_LEVEL"},
		{"retention too large", "LOG_RETENTION_WEEKS", "53", "LOG_RETENTION_WEEKS"},
		{"log file too small", "MAX_LOG_FILE_SIZE", "1024", "MAX_LOG_FILE_SIZE"},
		{"bad generate time", "GENERATE_AT", "25:00", "GENERATE_AT"},
		{"generate time not a clock", "GENERATE_AT", "daily", "GENERATE_AT"},
		{"empty generate list", "GENERATE_AT", ";", "GENERATE_AT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			if err == nil {
				t.Fatalf("expected error for %s=%s", tt.key, tt.value)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %s", err, tt.want)
			}
		})
	}
}

func TestSplitTimes(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"06:00", []string{"06:00"}},
		{"06:00;18:00", []string{"06:00", "18:00"}},
		{" 06:00 ; 18:00 ", []string{"06:00", "18:00"}},
		{";", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := splitTimes(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("splitTimes(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestGetEnvVars(t *testing.T) {
	vars := GetEnvVars()
	if len(vars) != 7 {
		t.Errorf("expected 7 env vars, got %d", len(vars))
	}
	for _, v := range vars {
		if v == "" {
			t.Error("empty env var name")
		}
	}
}
