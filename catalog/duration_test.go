package catalog

import "testing"

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration string
		want     int
	}{
		{"seconds only", "PT45S", 45},
		{"minutes only", "PT2M", 120},
		{"hours only", "PT1H", 3600},
		{"minutes and seconds", "PT1M30S", 90},
		{"all components", "PT1H2M3S", 3723},
		{"zero seconds", "PT0S", 0},
		{"empty components", "PT", 0},
		{"empty string", "", 0},
		{"malformed", "garbage", 0},
		{"exactly one minute", "PT1M", 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDuration(tt.duration)
			if got != tt.want {
				t.Errorf("ParseDuration(%q) = %d, want %d", tt.duration, got, tt.want)
			}
		})
	}
}

func TestIsShortForm(t *testing.T) {
	tests := []struct {
		name     string
		duration string
		want     bool
	}{
		{"short video", "PT45S", true},
		{"exactly 60 seconds", "PT1M", true},
		{"61 seconds", "PT1M1S", false},
		{"long video", "PT10M", false},
		{"hour long", "PT1H", false},
		{"zero duration", "PT0S", true},
		{"malformed counts as zero", "bogus", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsShortForm(tt.duration)
			if got != tt.want {
				t.Errorf("IsShortForm(%q) = %v, want %v", tt.duration, got, tt.want)
			}
		})
	}
}
