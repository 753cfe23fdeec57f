package util

import "testing"

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1500, "1.5K"},
		{10000, "10.0K"},
		{1500000, "1.5M"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatKg(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0 kg"},
		{525, "525 kg"},
		{9600, "9,600 kg"},
		{15600, "15,600 kg"},
	}
	for _, tt := range tests {
		if got := FormatKg(tt.in); got != tt.want {
			t.Errorf("FormatKg(%g) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		part, total int
		want        string
	}{
		{0, 0, "n/a"},
		{1, 2, "50.0%"},
		{10, 13, "76.9%"},
		{3, 3, "100.0%"},
	}
	for _, tt := range tests {
		if got := FormatPercent(tt.part, tt.total); got != tt.want {
			t.Errorf("FormatPercent(%d, %d) = %q, want %q", tt.part, tt.total, got, tt.want)
		}
	}
}
