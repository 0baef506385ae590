package models

import (
	"gorm.io/gorm"
)

type Exercise struct {
	gorm.Model
	Name              string  `json:"name" gorm:"not null"`
	Category          string  `json:"category"`
	CaloriesPerMinute float64 `json:"calories_per_minute"`
	TargetMuscles     string  `json:"target_muscles"` // comma-separated muscle groups
	Difficulty        string  `json:"difficulty"`     // "beginner", "intermediate", "advanced"
	Instructions      string  `json:"instructions,omitempty"`
}
