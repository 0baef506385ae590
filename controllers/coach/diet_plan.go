package coach

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/leqet/gym-backend/db"
	"github.com/leqet/gym-backend/models"
	"github.com/leqet/gym-backend/nutrition"
	"github.com/leqet/gym-backend/utils"
	"gorm.io/gorm"
)

type ManualDietPlanInput struct {
	MemberID       uint            `json:"member_id" validate:"required"`
	Name           string          `json:"name" validate:"required"`
	Goal           string          `json:"goal"`
	TargetCalories float64         `json:"target_calories"`
	TargetProtein  float64         `json:"target_protein"`
	TargetCarbs    float64         `json:"target_carbs"`
	TargetFat      float64         `json:"target_fat"`
	Meals          []DietMealInput `json:"meals" validate:"required"`
}

// SaveManualDietPlan replaces the member's active diet plan with the
// submitted one in a single transaction. Foods with no selection or zero
// quantity are dropped first; a plan with nothing left is rejected and
// the previous plan stays active.
func SaveManualDietPlan(c *fiber.Ctx) error {
	coachID := c.Locals("userID").(uint)

	input := new(ManualDietPlanInput)
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

	meals, err := SanitizeDietMeals(input.Meals)
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

	plan := models.DietPlan{
		MemberID:       input.MemberID,
		CreatedByID:    &coachID,
		Name:           input.Name,
		Type:           models.PlanCoach,
		Goal:           input.Goal,
		TargetCalories: input.TargetCalories,
		TargetProtein:  input.TargetProtein,
		TargetCarbs:    input.TargetCarbs,
		TargetFat:      input.TargetFat,
		IsActive:       true,
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		for seq, mealInput := range meals {
			meal := models.MealPlan{
				MealType: models.MealType(mealInput.MealType),
				Sequence: seq,
				Tips:     mealInput.Tips,
			}
			for fseq, foodInput := range mealInput.Foods {
				var food models.Food
				if err := tx.First(&food, foodInput.FoodID).Error; err != nil {
					return err
				}
				snapshot := nutrition.Snapshot(nutrition.Macros{
					Calories: food.Calories,
					Protein:  food.Protein,
					Carbs:    food.Carbs,
					Fat:      food.Fat,
				}, foodInput.QuantityG)

				meal.Foods = append(meal.Foods, models.MealPlanFood{
					FoodID:    food.ID,
					FoodName:  food.Name,
					QuantityG: foodInput.QuantityG,
					Sequence:  fseq,
					Calories:  snapshot.Calories,
					Protein:   snapshot.Protein,
					Carbs:     snapshot.Carbs,
					Fat:       snapshot.Fat,
				})
				meal.TotalCalories += snapshot.Calories
				meal.TotalProtein = nutrition.Round1(meal.TotalProtein + snapshot.Protein)
				meal.TotalCarbs = nutrition.Round1(meal.TotalCarbs + snapshot.Carbs)
				meal.TotalFat = nutrition.Round1(meal.TotalFat + snapshot.Fat)
			}
			plan.Meals = append(plan.Meals, meal)
		}

		if err := tx.Model(&models.DietPlan{}).
			Where("member_id = ? AND is_active = ?", input.MemberID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(&plan).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Food not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save diet plan",
			Error:   err.Error(),
		})
	}

	notifyPlanChange(input.MemberID, "Your diet plan has been updated by your coach")
	return c.Status(fiber.StatusCreated).JSON(plan)
}

// Meal-type shares of the daily calorie target for generated plans.
var mealShares = []struct {
	mealType models.MealType
	share    float64
	tips     string
}{
	{models.MealBreakfast, 0.25, "Eat within an hour of waking up"},
	{models.MealLunch, 0.35, "Your largest meal of the day"},
	{models.MealDinner, 0.30, "Keep it light and finish 2-3 hours before bed"},
	{models.MealSnack, 0.10, "Prefer fruit or nuts over processed snacks"},
}

// GenerateDefaultDietPlan builds a system plan from the member's profile
// targets, sizing catalog foods to each meal's calorie share.
func GenerateDefaultDietPlan(c *fiber.Ctx) error {
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

	var profile models.MemberProfile
	if err := db.DB.Where("member_id = ?", input.MemberID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusPreconditionFailed).JSON(fiber.Map{
			"error": "Member profile is required to generate a plan",
		})
	}

	var foods []models.Food
	if err := db.DB.Where("calories > 0").Order("id asc").Limit(8).Find(&foods).Error; err != nil || len(foods) == 0 {
		return c.Status(fiber.StatusPreconditionFailed).JSON(fiber.Map{
			"error": "Food catalog is empty",
		})
	}

	plan := models.DietPlan{
		MemberID:       input.MemberID,
		Name:           "Default Plan",
		Type:           models.PlanSystem,
		Goal:           profile.Goal,
		TargetCalories: profile.TargetCalories,
		IsActive:       true,
	}

	foodIdx := 0
	for seq, share := range mealShares {
		mealCalories := profile.TargetCalories * share.share
		food := foods[foodIdx%len(foods)]
		foodIdx++

		// grams needed for this meal's calorie share from a per-100g food
		quantity := nutrition.Round1(mealCalories / food.Calories * 100)
		snapshot := nutrition.Snapshot(nutrition.Macros{
			Calories: food.Calories,
			Protein:  food.Protein,
			Carbs:    food.Carbs,
			Fat:      food.Fat,
		}, quantity)

		plan.Meals = append(plan.Meals, models.MealPlan{
			MealType:      share.mealType,
			Sequence:      seq,
			Tips:          share.tips,
			TotalCalories: snapshot.Calories,
			TotalProtein:  snapshot.Protein,
			TotalCarbs:    snapshot.Carbs,
			TotalFat:      snapshot.Fat,
			Foods: []models.MealPlanFood{{
				FoodID:    food.ID,
				FoodName:  food.Name,
				QuantityG: quantity,
				Calories:  snapshot.Calories,
				Protein:   snapshot.Protein,
				Carbs:     snapshot.Carbs,
				Fat:       snapshot.Fat,
			}},
		})
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.DietPlan{}).
			Where("member_id = ? AND is_active = ?", input.MemberID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(&plan).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to generate diet plan",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(plan)
}
