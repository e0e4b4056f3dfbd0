package log

import (
	"os"
	"testing"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatJSON, "json"},
		{FormatText, "text"},
		{Format(999), "json"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.format.String(); got != tt.want {
				t.Errorf("Format.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"text", FormatText},
		{"console", FormatText},
		{"bogus", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseFormat(tt.input); got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != LevelInfo {
		t.Errorf("expected info level, got %v", cfg.Level)
	}
	if cfg.Format != FormatText {
		t.Errorf("expected text format, got %v", cfg.Format)
	}
	if cfg.Output.Writer() != os.Stderr {
		t.Errorf("expected stderr output")
	}
	if cfg.ServiceName != "dpsmith" {
		t.Errorf("expected service name dpsmith, got %q", cfg.ServiceName)
	}
}

func TestDevelopmentConfig(t *testing.T) {
	cfg := DevelopmentConfig()

	if cfg.Level != LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.Level)
	}
	if !cfg.AddSource {
		t.Errorf("expected AddSource enabled")
	}
}
