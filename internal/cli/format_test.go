package cli

import "testing"

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name     string
		dollars  int64
		expected string
	}{
		{"zero", 0, "0"},
		{"small", 999, "999"},
		{"thousands", 250000, "250,000"},
		{"millions", 1000000, "1,000,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatPrice(tt.dollars)
			if result != tt.expected {
				t.Errorf("formatPrice(%d) = %q, want %q", tt.dollars, result, tt.expected)
			}
		})
	}
}

func TestYesNo(t *testing.T) {
	if yesNo(true) != "yes" || yesNo(false) != "no" {
		t.Error("yesNo flag rendering mismatch")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		maxLen   int
		expected string
	}{
		{"short enough", "12 Elm St", 40, "12 Elm St"},
		{"exact", "abcdef", 6, "abcdef"},
		{"truncated", "a very long address line here", 10, "a very ..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := truncate(tt.in, tt.maxLen)
			if result != tt.expected {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.maxLen, result, tt.expected)
			}
		})
	}
}
