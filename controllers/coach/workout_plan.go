package coach

import (
	"github.com/gofiber/fiber/v2"
	"github.com/leqet/gym-backend/db"
	"github.com/leqet/gym-backend/models"
	"github.com/leqet/gym-backend/utils"
	"gorm.io/gorm"
)

type ManualWorkoutPlanInput struct {
	MemberID          uint              `json:"member_id" validate:"required"`
	Name              string            `json:"name" validate:"required"`
	Goal              string            `json:"goal"`
	WeeklyDays        int               `json:"weekly_days"`
	EstimatedDuration int               `json:"estimated_duration"`
	Difficulty        string            `json:"difficulty"`
	Days              []WorkoutDayInput `json:"days" validate:"required"`
}

// SaveManualWorkoutPlan replaces the member's active workout plan with
// the submitted one in a single transaction. The payload is stored as
// sent, apart from filtering nameless or set-less exercises.
func SaveManualWorkoutPlan(c *fiber.Ctx) error {
	coachID := c.Locals("userID").(uint)

	input := new(ManualWorkoutPlanInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if err := utils.Validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	days, err := SanitizeWorkoutDays(input.Days)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var member models.User
	if err := db.DB.First(&member, input.MemberID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Member not found",
		})
	}

	plan := models.WorkoutPlan{
		MemberID:          input.MemberID,
		CreatedByID:       &coachID,
		Name:              input.Name,
		Type:              models.PlanCoach,
		Goal:              input.Goal,
		WeeklyDays:        input.WeeklyDays,
		EstimatedDuration: input.EstimatedDuration,
		Difficulty:        input.Difficulty,
		IsActive:          true,
	}
	for seq, dayInput := range days {
		day := models.WorkoutDay{
			Name:     dayInput.Name,
			Sequence: seq,
		}
		for eseq, ex := range dayInput.Exercises {
			day.Exercises = append(day.Exercises, models.WorkoutExercise{
				ExerciseID:    ex.ExerciseID,
				Name:          ex.Name,
				Sets:          ex.Sets,
				Reps:          ex.Reps,
				RestSeconds:   ex.RestSeconds,
				TargetMuscles: ex.TargetMuscles,
				Instructions:  ex.Instructions,
				Sequence:      eseq,
			})
		}
		plan.Days = append(plan.Days, day)
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.WorkoutPlan{}).
			Where("member_id = ? AND is_active = ?", input.MemberID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(&plan).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save workout plan",
			Error:   err.Error(),
		})
	}

	notifyPlanChange(input.MemberID, "Your workout plan has been updated by your coach")
	return c.Status(fiber.StatusCreated).JSON(plan)
}

// Goal-keyed day templates for generated workout plans.
var defaultWorkoutDays = map[string][]WorkoutDayInput{
	"lose": {
		{Name: "Day 1: Full Body Circuit", Exercises: []WorkoutExerciseInput{
			{Name: "Bodyweight Squat", Sets: 3, Reps: "15", RestSeconds: 45, TargetMuscles: "legs,glutes"},
			{Name: "Push-up", Sets: 3, Reps: "10-15", RestSeconds: 45, TargetMuscles: "chest,triceps"},
			{Name: "Mountain Climbers", Sets: 3, Reps: "30s", RestSeconds: 30, TargetMuscles: "core"},
		}},
		{Name: "Day 2: Cardio Intervals", Exercises: []WorkoutExerciseInput{
			{Name: "Treadmill Intervals", Sets: 6, Reps: "1min fast / 2min easy", RestSeconds: 0, TargetMuscles: "legs"},
			{Name: "Rowing Machine", Sets: 3, Reps: "500m", RestSeconds: 90, TargetMuscles: "back,legs"},
		}},
		{Name: "Day 3: Full Body Circuit", Exercises: []WorkoutExerciseInput{
			{Name: "Lunges", Sets: 3, Reps: "12 each leg", RestSeconds: 45, TargetMuscles: "legs,glutes"},
			{Name: "Plank", Sets: 3, Reps: "45s", RestSeconds: 30, TargetMuscles: "core"},
			{Name: "Burpees", Sets: 3, Reps: "10", RestSeconds: 60, TargetMuscles: "full body"},
		}},
	},
	"gain": {
		{Name: "Day 1: Push", Exercises: []WorkoutExerciseInput{
			{Name: "Bench Press", Sets: 4, Reps: "6-8", RestSeconds: 120, TargetMuscles: "chest,triceps"},
			{Name: "Overhead Press", Sets: 3, Reps: "8-10", RestSeconds: 90, TargetMuscles: "shoulders"},
			{Name: "Dips", Sets: 3, Reps: "8-12", RestSeconds: 90, TargetMuscles: "chest,triceps"},
		}},
		{Name: "Day 2: Pull", Exercises: []WorkoutExerciseInput{
			{Name: "Deadlift", Sets: 4, Reps: "5", RestSeconds: 180, TargetMuscles: "back,hamstrings"},
			{Name: "Pull-up", Sets: 3, Reps: "6-10", RestSeconds: 120, TargetMuscles: "back,biceps"},
			{Name: "Barbell Row", Sets: 3, Reps: "8-10", RestSeconds: 90, TargetMuscles: "back"},
		}},
		{Name: "Day 3: Legs", Exercises: []WorkoutExerciseInput{
			{Name: "Back Squat", Sets: 4, Reps: "6-8", RestSeconds: 180, TargetMuscles: "legs,glutes"},
			{Name: "Romanian Deadlift", Sets: 3, Reps: "8-10", RestSeconds: 120, TargetMuscles: "hamstrings"},
			{Name: "Calf Raise", Sets: 4, Reps: "12-15", RestSeconds: 60, TargetMuscles: "calves"},
		}},
	},
	"maintain": {
		{Name: "Day 1: Upper Body", Exercises: []WorkoutExerciseInput{
			{Name: "Bench Press", Sets: 3, Reps: "8-12", RestSeconds: 90, TargetMuscles: "chest,triceps"},
			{Name: "Seated Row", Sets: 3, Reps: "10-12", RestSeconds: 90, TargetMuscles: "back"},
		}},
		{Name: "Day 2: Lower Body", Exercises: []WorkoutExerciseInput{
			{Name: "Back Squat", Sets: 3, Reps: "8-12", RestSeconds: 120, TargetMuscles: "legs,glutes"},
			{Name: "Leg Curl", Sets: 3, Reps: "10-12", RestSeconds: 60, TargetMuscles: "hamstrings"},
		}},
		{Name: "Day 3: Conditioning", Exercises: []WorkoutExerciseInput{
			{Name: "Cycling", Sets: 1, Reps: "30min steady", RestSeconds: 0, TargetMuscles: "legs"},
			{Name: "Plank", Sets: 3, Reps: "60s", RestSeconds: 45, TargetMuscles: "core"},
		}},
	},
}

// GenerateDefaultWorkoutPlan creates a system plan from the goal-based
// day templates.
func GenerateDefaultWorkoutPlan(c *fiber.Ctx) error {
	input := new(struct {
		MemberID uint `json:"member_id" validate:"required"`
	})
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if err := utils.Validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	goal := "maintain"
	var profile models.MemberProfile
	if db.DB.Where("member_id = ?", input.MemberID).First(&profile).RowsAffected > 0 && profile.Goal != "" {
		if _, ok := defaultWorkoutDays[profile.Goal]; ok {
			goal = profile.Goal
		}
	}
	template := defaultWorkoutDays[goal]

	plan := models.WorkoutPlan{
		MemberID:          input.MemberID,
		Name:              "Default Plan",
		Type:              models.PlanSystem,
		Goal:              goal,
		WeeklyDays:        len(template),
		EstimatedDuration: 45,
		Difficulty:        "beginner",
		IsActive:          true,
	}
	for seq, dayInput := range template {
		day := models.WorkoutDay{Name: dayInput.Name, Sequence: seq}
		for eseq, ex := range dayInput.Exercises {
			day.Exercises = append(day.Exercises, models.WorkoutExercise{
				Name:          ex.Name,
				Sets:          ex.Sets,
				Reps:          ex.Reps,
				RestSeconds:   ex.RestSeconds,
				TargetMuscles: ex.TargetMuscles,
				Sequence:      eseq,
			})
		}
		plan.Days = append(plan.Days, day)
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.WorkoutPlan{}).
			Where("member_id = ? AND is_active = ?", input.MemberID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(&plan).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to generate workout plan",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(plan)
}
