package types

import "testing"

func TestToString(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"nil reads as empty", nil, ""},
		{"string passthrough", "hello", "hello"},
		{"bytes convert", []byte("9876543210"), "9876543210"},
		{"int64 formats", int64(42), "42"},
		{"float64 formats", float64(2.5), "2.5"},
		{"bool true", true, "true"},
		{"unknown type reads as empty", struct{}{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToString(tt.input); got != tt.expected {
				t.Errorf("ToString(%v) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestToInt64(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected int64
	}{
		{"int64 passthrough", int64(1780000000), 1780000000},
		{"int converts", int(7), 7},
		{"float64 truncates", float64(3.9), 3},
		{"bytes parse", []byte("4096"), 4096},
		{"string parses", "1024", 1024},
		{"nil reads as zero", nil, 0},
		{"garbage reads as zero", "not-a-number", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToInt64(tt.input); got != tt.expected {
				t.Errorf("ToInt64(%v) = %d, expected %d", tt.input, got, tt.expected)
			}
		})
	}
}
