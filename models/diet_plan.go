package models

import (
	"gorm.io/gorm"
)

type PlanType string

const (
	PlanSystem PlanType = "system"
	PlanCoach  PlanType = "coach"
)

// DietPlan is the member's nutrition program. At most one plan per member
// is active at a time; saving a new plan deactivates the previous one in
// the same transaction.
type DietPlan struct {
	gorm.Model
	MemberID       uint       `json:"member_id"`
	Member         User       `json:"member,omitempty" gorm:"foreignKey:MemberID"`
	CreatedByID    *uint      `json:"created_by_id,omitempty"`
	CreatedBy      *User      `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
	Name           string     `json:"name"`
	Type           PlanType   `json:"type"`
	Goal           string     `json:"goal"`
	TargetCalories float64    `json:"target_calories"`
	TargetProtein  float64    `json:"target_protein"`
	TargetCarbs    float64    `json:"target_carbs"`
	TargetFat      float64    `json:"target_fat"`
	IsActive       bool       `json:"is_active" gorm:"default:true"`
	Meals          []MealPlan `json:"meals,omitempty" gorm:"foreignKey:DietPlanID"`
}

type MealPlan struct {
	gorm.Model
	DietPlanID    uint           `json:"diet_plan_id"`
	MealType      MealType       `json:"meal_type"`
	Sequence      int            `json:"sequence"`
	Tips          string         `json:"tips,omitempty"`
	TotalCalories float64        `json:"total_calories"`
	TotalProtein  float64        `json:"total_protein"`
	TotalCarbs    float64        `json:"total_carbs"`
	TotalFat      float64        `json:"total_fat"`
	Foods         []MealPlanFood `json:"foods,omitempty" gorm:"foreignKey:MealPlanID"`
}

// MealPlanFood snapshots the macros at the planned quantity so later
// catalog edits do not rewrite existing plans.
type MealPlanFood struct {
	gorm.Model
	MealPlanID uint    `json:"meal_plan_id"`
	FoodID     uint    `json:"food_id"`
	Food       Food    `json:"food,omitempty" gorm:"foreignKey:FoodID"`
	FoodName   string  `json:"food_name"`
	QuantityG  float64 `json:"quantity_grams"`
	Sequence   int     `json:"sequence"`
	Calories   float64 `json:"calories"`
	Protein    float64 `json:"protein"`
	Carbs      float64 `json:"carbs"`
	Fat        float64 `json:"fat"`
}
