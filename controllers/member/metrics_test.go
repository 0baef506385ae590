package member

import "testing"

func TestEstimateAdherence(t *testing.T) {
	cases := []struct {
		meals, workouts int64
		want            int
	}{
		{0, 0, 0},
		{1, 0, 25},
		{0, 1, 15},
		{2, 2, 80},
		{4, 0, 100},
		{3, 3, 100}, // 120 capped
		{10, 10, 100},
	}
	for _, tc := range cases {
		if got := EstimateAdherence(tc.meals, tc.workouts); got != tc.want {
			t.Errorf("EstimateAdherence(%d, %d) = %d, want %d", tc.meals, tc.workouts, got, tc.want)
		}
	}
}

func TestEstimateCompliance(t *testing.T) {
	if got := EstimateCompliance(2000, 2000); got != 100 {
		t.Errorf("on-target compliance = %d, want 100", got)
	}
	if got := EstimateCompliance(1500, 2000); got != 75 {
		t.Errorf("under-target compliance = %d, want 75", got)
	}
	if got := EstimateCompliance(2500, 2000); got != 75 {
		t.Errorf("over-target compliance = %d, want 75", got)
	}
	if got := EstimateCompliance(5000, 2000); got != 0 {
		t.Errorf("far-off compliance = %d, want 0", got)
	}
	if got := EstimateCompliance(2000, 0); got != 0 {
		t.Errorf("no-target compliance = %d, want 0", got)
	}
}

func TestNeedsAttention(t *testing.T) {
	if !NeedsAttention(0, 100) {
		t.Error("member with no logs this week should need attention")
	}
	if !NeedsAttention(5, 39) {
		t.Error("member with low adherence should need attention")
	}
	if NeedsAttention(5, 40) {
		t.Error("active member at threshold should not need attention")
	}
}
