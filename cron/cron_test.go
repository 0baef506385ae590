package cron

import (
	"testing"
	"time"
)

func TestInReminderWindow(t *testing.T) {
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		sessionTime string
		want        bool
	}{
		{"10:00", true},  // exactly one hour out
		{"09:55", true},  // lower edge
		{"10:05", true},  // upper edge
		{"09:54", false}, // too close
		{"10:06", false}, // too far
		{"09:00", false}, // starting now
		{"08:00", false}, // already past
		{"25:00", false}, // malformed
		{"", false},
	}
	for _, tt := range tests {
		if got := inReminderWindow(now, tt.sessionTime); got != tt.want {
			t.Errorf("inReminderWindow(09:00, %q) = %v, want %v", tt.sessionTime, got, tt.want)
		}
	}
}
