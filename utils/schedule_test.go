package utils

import "testing"

func TestSlotsOverlap(t *testing.T) {
	tests := []struct {
		name   string
		startA string
		durA   int
		startB string
		durB   int
		want   bool
	}{
		{"identical slots", "10:00", 60, "10:00", 60, true},
		{"contained slot", "10:00", 60, "10:15", 15, true},
		{"partial overlap front", "10:00", 60, "09:30", 45, true},
		{"partial overlap back", "10:00", 60, "10:45", 60, true},
		{"back to back before", "10:00", 60, "09:00", 60, false},
		{"back to back after", "10:00", 60, "11:00", 60, false},
		{"one minute overlap", "10:00", 60, "10:59", 30, true},
		{"disjoint", "08:00", 30, "14:00", 45, false},
		{"malformed existing time skipped", "10:00", 60, "oops", 60, false},
	}
	for _, tt := range tests {
		got, err := SlotsOverlap(tt.startA, tt.durA, tt.startB, tt.durB)
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: SlotsOverlap = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSlotsOverlapRejectsMalformedRequest(t *testing.T) {
	if _, err := SlotsOverlap("25:99", 60, "10:00", 60); err == nil {
		t.Error("expected error for malformed requested start time")
	}
}
