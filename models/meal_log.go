package models

import (
	"time"

	"gorm.io/gorm"
)

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

func ValidMealType(t string) bool {
	switch MealType(t) {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// MealLog is an append-only log row. The nutrient fields are a snapshot
// at the logged quantity, never recomputed from the food catalog.
type MealLog struct {
	gorm.Model
	MemberID uint      `json:"member_id"`
	Member   User      `json:"member,omitempty" gorm:"foreignKey:MemberID"`
	MealType MealType  `json:"meal_type"`
	FoodID   uint      `json:"food_item_id"`
	Food     Food      `json:"food,omitempty" gorm:"foreignKey:FoodID"`
	FoodName string    `json:"food_name"`
	Quantity float64   `json:"quantity"`
	Unit     string    `json:"unit"` // "g", "serving"
	Calories float64   `json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
	LoggedAt time.Time `json:"logged_at"`
}

func (m *MealLog) BeforeCreate(tx *gorm.DB) error {
	if m.LoggedAt.IsZero() {
		m.LoggedAt = time.Now()
	}
	return nil
}
