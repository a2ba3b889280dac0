package config

import "testing"

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Home() != ".helloworld" {
		t.Errorf("Home() = %v, want %v", cfg.Home(), ".helloworld")
	}
	if cfg.StderrLevel() != "warn" {
		t.Errorf("StderrLevel() = %v, want %v", cfg.StderrLevel(), "warn")
	}
	if cfg.Format() != FormatText {
		t.Errorf("Format() = %v, want %v", cfg.Format(), FormatText)
	}
	if cfg.JournalPath() != "" {
		t.Errorf("JournalPath() = %v, want empty", cfg.JournalPath())
	}
	if cfg.Normalize() {
		t.Error("Normalize() = true, want false")
	}
	if cfg.ConfigSource() != "default" {
		t.Errorf("ConfigSource() = %v, want %v", cfg.ConfigSource(), "default")
	}
}

func TestIsValidFormat(t *testing.T) {
	tests := []struct {
		format string
		want   bool
	}{
		{"text", true},
		{"json", true},
		{"yaml", true},
		{"", false},
		{"JSON", false},
		{"xml", false},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			if got := IsValidFormat(tt.format); got != tt.want {
				t.Errorf("IsValidFormat(%q) = %v, want %v", tt.format, got, tt.want)
			}
		})
	}
}
