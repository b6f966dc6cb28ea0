package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

const (
	DefaultLogLevel             = "info"
	DefaultClientTimeoutSeconds = 5
	DefaultPollIntervalMS       = 300
)

// Config is the effective winctl configuration.
type Config struct {
	// Display and XAuthority are exported to the daemon environment when
	// the process was started without them.
	Display    string `yaml:"display,omitempty"`
	XAuthority string `yaml:"xauthority,omitempty"`

	// SocketPath overrides the published socket (default: $XDG_RUNTIME_DIR/winctl.sock).
	SocketPath string `yaml:"socket_path,omitempty"`

	LogLevel string `yaml:"log_level"`

	ClientTimeoutSeconds int `yaml:"client_timeout_seconds"`
	// PollIntervalMS is the interval for find/wait helpers.
	PollIntervalMS int `yaml:"poll_interval_ms"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel:             DefaultLogLevel,
		ClientTimeoutSeconds: DefaultClientTimeoutSeconds,
		PollIntervalMS:       DefaultPollIntervalMS,
	}
}

// ValidationError reports an invalid value and, when known, where it was set.
type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Validate performs strict validation of the effective configuration.
func (c *Config) Validate() error {
	if _, ok := parseLevel(c.LogLevel); !ok {
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warn, error")}
	}
	if c.ClientTimeoutSeconds <= 0 {
		return &ValidationError{Path: "client_timeout_seconds", Err: fmt.Errorf("client_timeout_seconds must be > 0")}
	}
	if c.PollIntervalMS <= 0 {
		return &ValidationError{Path: "poll_interval_ms", Err: fmt.Errorf("poll_interval_ms must be > 0")}
	}
	if c.SocketPath != "" && !strings.HasPrefix(c.SocketPath, "/") {
		return &ValidationError{Path: "socket_path", Err: fmt.Errorf("socket_path must be absolute")}
	}
	return nil
}

// SlogLevel returns the configured level for structured logging.
func (c *Config) SlogLevel() slog.Level {
	if c == nil {
		return slog.LevelInfo
	}
	level, _ := parseLevel(c.LogLevel)
	return level
}

func (c *Config) ClientTimeout() time.Duration {
	if c == nil || c.ClientTimeoutSeconds <= 0 {
		return DefaultClientTimeoutSeconds * time.Second
	}
	return time.Duration(c.ClientTimeoutSeconds) * time.Second
}

func (c *Config) PollInterval() time.Duration {
	if c == nil || c.PollIntervalMS <= 0 {
		return DefaultPollIntervalMS * time.Millisecond
	}
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

// ApplyDisplayEnv exports display and xauthority to the process
// environment when they are configured and not already set.
func (c *Config) ApplyDisplayEnv() error {
	if c == nil {
		return nil
	}
	if v := strings.TrimSpace(c.Display); v != "" && strings.TrimSpace(os.Getenv("DISPLAY")) == "" {
		if err := os.Setenv("DISPLAY", v); err != nil {
			return fmt.Errorf("failed to set DISPLAY: %w", err)
		}
	}
	if v := strings.TrimSpace(c.XAuthority); v != "" && strings.TrimSpace(os.Getenv("XAUTHORITY")) == "" {
		if err := os.Setenv("XAUTHORITY", v); err != nil {
			return fmt.Errorf("failed to set XAUTHORITY: %w", err)
		}
	}
	return nil
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
