package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if cfg.ClientTimeout() != 5*time.Second {
		t.Fatalf("ClientTimeout = %v", cfg.ClientTimeout())
	}
	if cfg.PollInterval() != 300*time.Millisecond {
		t.Fatalf("PollInterval = %v", cfg.PollInterval())
	}
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	res, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.File != "" {
		t.Fatalf("File = %q, want empty", res.File)
	}
	if res.Config.LogLevel != DefaultLogLevel {
		t.Fatalf("log_level = %q", res.Config.LogLevel)
	}
}

func TestLoadFromPath_EmptyFileUsesDefaults(t *testing.T) {
	res, err := LoadFromPath(writeConfig(t, "# empty\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Config.ClientTimeoutSeconds != DefaultClientTimeoutSeconds {
		t.Fatalf("client_timeout_seconds = %d", res.Config.ClientTimeoutSeconds)
	}
}

func TestLoadFromPath_Overrides(t *testing.T) {
	path := writeConfig(t, strings.Join([]string{
		"display: \":1\"",
		"xauthority: \"/tmp/test-xauth\"",
		"socket_path: /tmp/winctl-test.sock",
		"log_level: debug",
		"client_timeout_seconds: 2",
		"poll_interval_ms: 50",
		"",
	}, "\n"))

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg := res.Config
	if cfg.Display != ":1" || cfg.XAuthority != "/tmp/test-xauth" {
		t.Fatalf("display/xauthority = %q/%q", cfg.Display, cfg.XAuthority)
	}
	if cfg.SocketPath != "/tmp/winctl-test.sock" {
		t.Fatalf("socket_path = %q", cfg.SocketPath)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Fatalf("SlogLevel = %v", cfg.SlogLevel())
	}
	if cfg.ClientTimeout() != 2*time.Second || cfg.PollInterval() != 50*time.Millisecond {
		t.Fatalf("durations = %v/%v", cfg.ClientTimeout(), cfg.PollInterval())
	}
	if src, ok := res.Sources["log_level"]; !ok || src.Line != 4 {
		t.Fatalf("log_level source = %+v", src)
	}
}

func TestLoadFromPath_UnknownFieldRejected(t *testing.T) {
	_, err := LoadFromPath(writeConfig(t, "hotkey: Mod4-t\n"))
	if err == nil {
		t.Fatal("expected unknown field error")
	}
}

func TestLoadFromPath_ValidationErrorHasSource(t *testing.T) {
	path := writeConfig(t, "log_level: info\nclient_timeout_seconds: 0\n")

	_, err := LoadFromPath(path)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Path != "client_timeout_seconds" {
		t.Fatalf("path = %q", verr.Path)
	}
	if verr.Source.Line != 2 {
		t.Fatalf("line = %d, want 2", verr.Source.Line)
	}
	if !strings.Contains(err.Error(), path+":2:") {
		t.Fatalf("error %q missing file:line", err.Error())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
		{"warning alias", func(c *Config) { c.LogLevel = "warning" }, ""},
		{"zero poll", func(c *Config) { c.PollIntervalMS = 0 }, "poll_interval_ms"},
		{"relative socket", func(c *Config) { c.SocketPath = "winctl.sock" }, "socket_path"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestApplyDisplayEnv(t *testing.T) {
	t.Setenv("DISPLAY", "")
	t.Setenv("XAUTHORITY", "/already/set")

	cfg := DefaultConfig()
	cfg.Display = ":3"
	cfg.XAuthority = "/from/config"
	if err := cfg.ApplyDisplayEnv(); err != nil {
		t.Fatalf("ApplyDisplayEnv: %v", err)
	}
	if got := os.Getenv("DISPLAY"); got != ":3" {
		t.Fatalf("DISPLAY = %q", got)
	}
	if got := os.Getenv("XAUTHORITY"); got != "/already/set" {
		t.Fatalf("XAUTHORITY = %q, should keep existing value", got)
	}
}
