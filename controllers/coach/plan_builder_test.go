package coach

import (
	"errors"
	"testing"
)

func TestSanitizeDietMealsFiltersEmptyItems(t *testing.T) {
	meals := []DietMealInput{
		{
			MealType: "breakfast",
			Foods: []DietMealFoodInput{
				{FoodID: 1, QuantityG: 100},
				{FoodID: 0, QuantityG: 50},  // no selection
				{FoodID: 2, QuantityG: 0},   // zero quantity
				{FoodID: 3, QuantityG: -10}, // negative quantity
			},
		},
		{
			MealType: "lunch",
			Foods:    []DietMealFoodInput{{FoodID: 0, QuantityG: 0}},
		},
	}

	got, err := SanitizeDietMeals(meals)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("want 1 surviving meal, got %d", len(got))
	}
	if len(got[0].Foods) != 1 || got[0].Foods[0].FoodID != 1 {
		t.Errorf("unexpected surviving foods: %+v", got[0].Foods)
	}
}

func TestSanitizeDietMealsRejectsEmptyPlan(t *testing.T) {
	cases := [][]DietMealInput{
		nil,
		{},
		{{MealType: "dinner", Foods: nil}},
		{{MealType: "dinner", Foods: []DietMealFoodInput{{FoodID: 0, QuantityG: 100}}}},
	}
	for _, meals := range cases {
		if _, err := SanitizeDietMeals(meals); !errors.Is(err, ErrEmptyPlan) {
			t.Errorf("SanitizeDietMeals(%v) err = %v, want ErrEmptyPlan", meals, err)
		}
	}
}

func TestSanitizeWorkoutDaysFiltersEmptyItems(t *testing.T) {
	days := []WorkoutDayInput{
		{
			Name: "Day 1",
			Exercises: []WorkoutExerciseInput{
				{Name: "Squat", Sets: 3, Reps: "8-12"},
				{Name: "", Sets: 3},          // empty name
				{Name: "   ", Sets: 3},       // whitespace name
				{Name: "Deadlift", Sets: 0},  // no sets
				{Name: "Press", Sets: -1},    // negative sets
			},
		},
		{
			Name:      "Day 2",
			Exercises: []WorkoutExerciseInput{{Name: "", Sets: 0}},
		},
	}

	got, err := SanitizeWorkoutDays(days)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("want 1 surviving day, got %d", len(got))
	}
	if len(got[0].Exercises) != 1 || got[0].Exercises[0].Name != "Squat" {
		t.Errorf("unexpected surviving exercises: %+v", got[0].Exercises)
	}
}

func TestSanitizeWorkoutDaysRejectsEmptyPlan(t *testing.T) {
	if _, err := SanitizeWorkoutDays(nil); !errors.Is(err, ErrEmptyPlan) {
		t.Errorf("nil days err = %v, want ErrEmptyPlan", err)
	}
	days := []WorkoutDayInput{{Name: "Day 1"}}
	if _, err := SanitizeWorkoutDays(days); !errors.Is(err, ErrEmptyPlan) {
		t.Errorf("itemless days err = %v, want ErrEmptyPlan", err)
	}
}
