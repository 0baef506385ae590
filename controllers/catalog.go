package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/leqet/gym-backend/db"
	"github.com/leqet/gym-backend/models"
	"github.com/leqet/gym-backend/nutrition"
	"github.com/leqet/gym-backend/utils"
)

// GetFoods lists the food catalog, optionally filtered by a name search
// (English or Amharic) and category.
func GetFoods(c *fiber.Ctx) error {
	query := db.DB.Model(&models.Food{})

	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR name_amharic ILIKE ?", pattern, pattern)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var foods []models.Food
	if err := query.Order("name asc").Find(&foods).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch foods",
			Error:   err.Error(),
		})
	}
	return c.JSON(foods)
}

type FoodInput struct {
	Name        string   `json:"name" validate:"required"`
	NameAmharic string   `json:"name_amharic"`
	Category    string   `json:"category"`
	Calories    float64  `json:"calories" validate:"min=0"`
	Protein     float64  `json:"protein" validate:"min=0"`
	Carbs       float64  `json:"carbs" validate:"min=0"`
	Fat         float64  `json:"fat" validate:"min=0"`
	Fiber       *float64 `json:"fiber"`
}

// CreateFood adds a catalog entry. Staff only.
func CreateFood(c *fiber.Ctx) error {
	input := new(FoodInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := utils.Validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	userID := c.Locals("userID").(uint)
	food := models.Food{
		Name:        input.Name,
		NameAmharic: input.NameAmharic,
		Category:    input.Category,
		Calories:    input.Calories,
		Protein:     input.Protein,
		Carbs:       input.Carbs,
		Fat:         input.Fat,
		Fiber:       input.Fiber,
		CreatedByID: &userID,
	}
	if err := db.DB.Create(&food).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create food",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(food)
}

type ComposeFoodInput struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category"`
	Ingredients []struct {
		FoodID    uint    `json:"food_id" validate:"required"`
		QuantityG float64 `json:"quantity_grams"`
	} `json:"ingredients" validate:"required,dive"`
}

// ComposeFood builds a custom food from (food, quantity) pairs: nutrient
// totals are normalized to a per-100g basis and saved as a new catalog
// entry. A composition with no positive total weight is rejected.
func ComposeFood(c *fiber.Ctx) error {
	input := new(ComposeFoodInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := utils.Validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	ingredients := make([]nutrition.Ingredient, 0, len(input.Ingredients))
	for _, ing := range input.Ingredients {
		var food models.Food
		if err := db.DB.First(&food, ing.FoodID).Error; err != nil {
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
		if food.Fiber != nil {
			per100.Fiber = *food.Fiber
		}
		ingredients = append(ingredients, nutrition.Ingredient{
			Per100:    per100,
			QuantityG: ing.QuantityG,
		})
	}

	combined, err := nutrition.Combine(ingredients)
	if err != nil {
		if errors.Is(err, nutrition.ErrNoWeight) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	userID := c.Locals("userID").(uint)
	fiberG := combined.Fiber
	food := models.Food{
		Name:        input.Name,
		Category:    input.Category,
		Calories:    combined.Calories,
		Protein:     combined.Protein,
		Carbs:       combined.Carbs,
		Fat:         combined.Fat,
		Fiber:       &fiberG,
		IsCustom:    true,
		CreatedByID: &userID,
	}
	if err := db.DB.Create(&food).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save composed food",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(food)
}

// GetExercises lists the exercise catalog with an optional name search.
func GetExercises(c *fiber.Ctx) error {
	query := db.DB.Model(&models.Exercise{})
	if search := c.Query("search"); search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	var exercises []models.Exercise
	if err := query.Order("name asc").Find(&exercises).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch exercises",
			Error:   err.Error(),
		})
	}
	return c.JSON(exercises)
}

// CreateExercise adds an exercise. Staff only.
func CreateExercise(c *fiber.Ctx) error {
	exercise := new(models.Exercise)
	if err := c.BodyParser(exercise); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if exercise.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name is required",
		})
	}
	if err := db.DB.Create(exercise).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create exercise",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(exercise)
}
