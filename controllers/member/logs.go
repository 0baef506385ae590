package member

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/leqet/gym-backend/db"
	"github.com/leqet/gym-backend/models"
	"github.com/leqet/gym-backend/nutrition"
	"github.com/leqet/gym-backend/utils"
)

type LogMealInput struct {
	MealType string  `json:"meal_type" validate:"required"`
	FoodID   uint    `json:"food_item_id" validate:"required"`
	Quantity float64 `json:"quantity" validate:"required,gt=0"`
	Unit     string  `json:"unit"`
}

// LogMeal creates a meal log row with the nutrient snapshot computed
// server-side from the food catalog. The created row (with its id) is
// returned so clients can confirm the entry.
func LogMeal(c *fiber.Ctx) error {
	memberID := c.Locals("userID").(uint)

	input := new(LogMealInput)
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
	if !models.ValidMealType(input.MealType) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "meal_type must be breakfast, lunch, dinner or snack",
		})
	}

	// Catalog macros are per 100g, so the quantity must be in grams for
	// the snapshot scaling to hold.
	unit := input.Unit
	if unit == "" {
		unit = "g"
	}
	if unit != "g" && unit != "grams" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unit must be grams",
		})
	}

	var food models.Food
	if err := db.DB.First(&food, input.FoodID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Food not found",
		})
	}

	per100 := nutrition.Macros{
		Calories: food.Calories,
		Protein:  food.Protein,
		Carbs:    food.Carbs,
		Fat:      food.Fat,
	}
	snapshot := nutrition.Snapshot(per100, input.Quantity)

	entry := models.MealLog{
		MemberID: memberID,
		MealType: models.MealType(input.MealType),
		FoodID:   food.ID,
		FoodName: food.Name,
		Quantity: input.Quantity,
		Unit:     unit,
		Calories: snapshot.Calories,
		Protein:  snapshot.Protein,
		Carbs:    snapshot.Carbs,
		Fat:      snapshot.Fat,
	}
	if err := db.DB.Create(&entry).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to log meal",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// GetTodayMeals returns the member's meal logs for the current day.
func GetTodayMeals(c *fiber.Ctx) error {
	memberID := c.Locals("userID").(uint)
	return mealsForDate(c, memberID, time.Now())
}

// GetMealsByDate returns meal logs for the YYYY-MM-DD day in the path.
func GetMealsByDate(c *fiber.Ctx) error {
	memberID := c.Locals("userID").(uint)
	date, err := time.Parse("2006-01-02", c.Params("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "date must be YYYY-MM-DD",
		})
	}
	return mealsForDate(c, memberID, date)
}

func mealsForDate(c *fiber.Ctx, memberID uint, date time.Time) error {
	var meals []models.MealLog
	if err := db.DB.
		Where("member_id = ? AND DATE(logged_at) = ?", memberID, date.Format("2006-01-02")).
		Order("logged_at asc").
		Find(&meals).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch meals",
			Error:   err.Error(),
		})
	}
	return c.JSON(meals)
}

// DeleteMealItem removes one of the member's own meal log rows. An
// unknown id is a 404, never a server error, so a client holding an
// unconfirmed entry can treat it as a no-op.
func DeleteMealItem(c *fiber.Ctx) error {
	memberID := c.Locals("userID").(uint)
	id := c.Params("id")

	var entry models.MealLog
	if err := db.DB.Where("id = ? AND member_id = ?", id, memberID).First(&entry).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Meal log not found",
		})
	}
	if err := db.DB.Delete(&entry).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete meal log",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Meal log deleted"})
}

type LogWorkoutInput struct {
	ExerciseID  uint     `json:"exercise_id" validate:"required"`
	DurationMin float64  `json:"duration_minutes" validate:"required,gt=0"`
	Intensity   string   `json:"intensity"`
	WeightUsed  *float64 `json:"weight_used"`
	WeightUnit  string   `json:"weight_unit"`
}

// LogWorkout creates a workout log row; calories burned are computed
// from the exercise's per-minute rate and the intensity multiplier.
func LogWorkout(c *fiber.Ctx) error {
	memberID := c.Locals("userID").(uint)

	input := new(LogWorkoutInput)
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

	var exercise models.Exercise
	if err := db.DB.First(&exercise, input.ExerciseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Exercise not found",
		})
	}

	intensity := input.Intensity
	if intensity == "" {
		intensity = "medium"
	}

	entry := models.WorkoutLog{
		MemberID:       memberID,
		ExerciseID:     exercise.ID,
		ExerciseName:   exercise.Name,
		DurationMin:    input.DurationMin,
		Intensity:      intensity,
		CaloriesBurned: nutrition.CaloriesBurned(exercise.CaloriesPerMinute, input.DurationMin, intensity),
		WeightUsed:     input.WeightUsed,
		WeightUnit:     input.WeightUnit,
	}
	if err := db.DB.Create(&entry).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to log workout",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// GetTodayWorkouts returns the member's workout logs for the current day.
func GetTodayWorkouts(c *fiber.Ctx) error {
	memberID := c.Locals("userID").(uint)

	var workouts []models.WorkoutLog
	if err := db.DB.
		Where("member_id = ? AND DATE(logged_at) = ?", memberID, time.Now().Format("2006-01-02")).
		Order("logged_at asc").
		Find(&workouts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch workouts",
			Error:   err.Error(),
		})
	}
	return c.JSON(workouts)
}

// DeleteWorkoutItem removes one of the member's own workout log rows.
func DeleteWorkoutItem(c *fiber.Ctx) error {
	memberID := c.Locals("userID").(uint)
	id := c.Params("id")

	var entry models.WorkoutLog
	if err := db.DB.Where("id = ? AND member_id = ?", id, memberID).First(&entry).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Workout log not found",
		})
	}
	if err := db.DB.Delete(&entry).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete workout log",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Workout log deleted"})
}

type LogActivityInput struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// LogWater records a water intake entry in milliliters.
func LogWater(c *fiber.Ctx) error {
	return logActivity(c, models.ActivityWater, "ml")
}

// LogSteps records a step-count entry.
func LogSteps(c *fiber.Ctx) error {
	return logActivity(c, models.ActivitySteps, "steps")
}

func logActivity(c *fiber.Ctx, kind models.ActivityKind, unit string) error {
	memberID := c.Locals("userID").(uint)

	input := new(LogActivityInput)
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

	entry := models.ActivityLog{
		MemberID: memberID,
		Kind:     kind,
		Amount:   input.Amount,
		Unit:     unit,
	}
	if err := db.DB.Create(&entry).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to log activity",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// GetTodayActivity returns today's water and step entries.
func GetTodayActivity(c *fiber.Ctx) error {
	memberID := c.Locals("userID").(uint)

	var entries []models.ActivityLog
	if err := db.DB.
		Where("member_id = ? AND DATE(logged_at) = ?", memberID, time.Now().Format("2006-01-02")).
		Order("logged_at asc").
		Find(&entries).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch activity",
			Error:   err.Error(),
		})
	}
	return c.JSON(entries)
}
