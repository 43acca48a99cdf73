package jsonutil

import (
	"encoding/json"
	"testing"
)

func TestFlexibleStringValue(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"null", "null", ""},
		{"string", `"natural armor"`, "natural armor"},
		{"integer", "15", "15"},
		{"float", "0.25", "0.25"},
		{"bool", "true", "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FlexibleStringValue(json.RawMessage(tt.raw))
			if got != tt.want {
				t.Errorf("FlexibleStringValue(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	if got := FormatNumber(16); got != "16" {
		t.Errorf("FormatNumber(16) = %q, want %q", got, "16")
	}
	if got := FormatNumber(12.5); got != "12.5" {
		t.Errorf("FormatNumber(12.5) = %q, want %q", got, "12.5")
	}
	if got := FormatNumber(-3); got != "-3" {
		t.Errorf("FormatNumber(-3) = %q, want %q", got, "-3")
	}
}
