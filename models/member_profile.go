package models

import (
	"gorm.io/gorm"
)

// MemberProfile holds physical stats plus the derived energy targets.
// BMR/TDEE/TargetCalories are recomputed server-side on every save; they
// are never accepted from the request body.
type MemberProfile struct {
	gorm.Model
	MemberID       uint    `json:"member_id" gorm:"uniqueIndex"`
	Member         User    `json:"member,omitempty" gorm:"foreignKey:MemberID"`
	Age            int     `json:"age"`
	Gender         string  `json:"gender"` // "male", "female"
	WeightKg       float64 `json:"weight_kg"`
	HeightCm       float64 `json:"height_cm"`
	Goal           string  `json:"goal"` // "lose", "maintain", "gain"
	ActivityLevel  string  `json:"activity_level"`
	BMR            float64 `json:"bmr"`
	TDEE           float64 `json:"tdee"`
	TargetCalories float64 `json:"target_calories"`
	TrainerIntake  string  `json:"trainer_intake,omitempty" gorm:"type:jsonb"`
	NutritionIntake string `json:"nutrition_intake,omitempty" gorm:"type:jsonb"`
	IsPrivate      bool    `json:"is_private" gorm:"default:false"`
}
