package coach

import (
	"errors"
	"strings"
)

// ErrEmptyPlan is returned when, after filtering, no meal or day has any
// item left. The whole plan is rejected; nothing is saved.
var ErrEmptyPlan = errors.New("plan must contain at least one item")

type DietMealInput struct {
	MealType string              `json:"meal_type"`
	Tips     string              `json:"tips"`
	Foods    []DietMealFoodInput `json:"foods"`
}

type DietMealFoodInput struct {
	FoodID    uint    `json:"food_id"`
	QuantityG float64 `json:"quantity_grams"`
}

// SanitizeDietMeals drops foods with no selection or non-positive
// quantity, then drops meals left empty. An all-empty result is an error.
func SanitizeDietMeals(meals []DietMealInput) ([]DietMealInput, error) {
	out := make([]DietMealInput, 0, len(meals))
	for _, meal := range meals {
		foods := make([]DietMealFoodInput, 0, len(meal.Foods))
		for _, f := range meal.Foods {
			if f.FoodID == 0 || f.QuantityG <= 0 {
				continue
			}
			foods = append(foods, f)
		}
		if len(foods) == 0 {
			continue
		}
		meal.Foods = foods
		out = append(out, meal)
	}
	if len(out) == 0 {
		return nil, ErrEmptyPlan
	}
	return out, nil
}

type WorkoutDayInput struct {
	Name      string                 `json:"name"`
	Exercises []WorkoutExerciseInput `json:"exercises"`
}

type WorkoutExerciseInput struct {
	ExerciseID    *uint  `json:"exercise_id"`
	Name          string `json:"name"`
	Sets          int    `json:"sets"`
	Reps          string `json:"reps"`
	RestSeconds   int    `json:"rest"`
	TargetMuscles string `json:"target_muscles"`
	Instructions  string `json:"instructions"`
}

// SanitizeWorkoutDays drops exercises with an empty name or no sets,
// then drops days left empty. An all-empty result is an error.
func SanitizeWorkoutDays(days []WorkoutDayInput) ([]WorkoutDayInput, error) {
	out := make([]WorkoutDayInput, 0, len(days))
	for _, day := range days {
		exercises := make([]WorkoutExerciseInput, 0, len(day.Exercises))
		for _, ex := range day.Exercises {
			if strings.TrimSpace(ex.Name) == "" || ex.Sets <= 0 {
				continue
			}
			exercises = append(exercises, ex)
		}
		if len(exercises) == 0 {
			continue
		}
		day.Exercises = exercises
		out = append(out, day)
	}
	if len(out) == 0 {
		return nil, ErrEmptyPlan
	}
	return out, nil
}
