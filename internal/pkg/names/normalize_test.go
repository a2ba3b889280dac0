package names

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"ascii unchanged", "Ada", "Ada"},
		{"empty", "", ""},
		{"decomposed accent composes", "Zoe\u0308", "Zo\u00eb"},
		{"already composed", "Zo\u00eb", "Zo\u00eb"},
		{"whitespace kept", "  Ada ", "  Ada "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
