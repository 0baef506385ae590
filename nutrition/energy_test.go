package nutrition

import "testing"

func TestCaloriesBurnedIntensityOrdering(t *testing.T) {
	low := CaloriesBurned(8, 30, "low")
	medium := CaloriesBurned(8, 30, "medium")
	high := CaloriesBurned(8, 30, "high")

	if !(high > medium && medium > low) {
		t.Errorf("want high > medium > low, got low=%v medium=%v high=%v", low, medium, high)
	}
	if low != 192 || medium != 240 || high != 312 {
		t.Errorf("unexpected values: low=%v medium=%v high=%v", low, medium, high)
	}
}

func TestCaloriesBurnedMonotonicInDuration(t *testing.T) {
	prev := 0.0
	for d := 5.0; d <= 120; d += 5 {
		got := CaloriesBurned(7.5, d, "high")
		if got < prev {
			t.Fatalf("calories decreased at duration %v: %v < %v", d, got, prev)
		}
		prev = got
	}
}

func TestCaloriesBurnedUnknownIntensityIsMedium(t *testing.T) {
	if got, want := CaloriesBurned(10, 20, "extreme"), CaloriesBurned(10, 20, "medium"); got != want {
		t.Errorf("unknown intensity = %v, want medium value %v", got, want)
	}
}

func TestCaloriesBurnedNegativeInputs(t *testing.T) {
	if got := CaloriesBurned(-5, 30, "medium"); got != 0 {
		t.Errorf("negative rate = %v, want 0", got)
	}
	if got := CaloriesBurned(5, -30, "medium"); got != 0 {
		t.Errorf("negative duration = %v, want 0", got)
	}
}

func TestBMRMifflinStJeor(t *testing.T) {
	// 80kg, 180cm, 30y male: 10*80 + 6.25*180 - 5*30 + 5 = 1780
	if got := BMR("male", 80, 180, 30); got != 1780 {
		t.Errorf("male BMR = %v, want 1780", got)
	}
	// same stats female: 1775 - 161 = 1614
	if got := BMR("female", 80, 180, 30); got != 1614 {
		t.Errorf("female BMR = %v, want 1614", got)
	}
}

func TestTDEEAndTarget(t *testing.T) {
	bmr := 1780.0
	if got := TDEE(bmr, "moderate"); got != 2759 {
		t.Errorf("moderate TDEE = %v, want 2759", got)
	}
	if got := TDEE(bmr, "unknown-level"); got != TDEE(bmr, "sedentary") {
		t.Errorf("unknown activity level should fall back to sedentary")
	}
	if got := TargetCalories(2759, "lose"); got != 2259 {
		t.Errorf("lose target = %v, want 2259", got)
	}
	if got := TargetCalories(2759, "gain"); got != 3259 {
		t.Errorf("gain target = %v, want 3259", got)
	}
	if got := TargetCalories(2759, "maintain"); got != 2759 {
		t.Errorf("maintain target = %v, want 2759", got)
	}
}
