package models

import (
	"time"

	"gorm.io/gorm"
)

type WorkoutLog struct {
	gorm.Model
	MemberID       uint      `json:"member_id"`
	Member         User      `json:"member,omitempty" gorm:"foreignKey:MemberID"`
	ExerciseID     uint      `json:"exercise_id"`
	Exercise       Exercise  `json:"exercise,omitempty" gorm:"foreignKey:ExerciseID"`
	ExerciseName   string    `json:"exercise_name"`
	DurationMin    float64   `json:"duration_minutes"`
	Intensity      string    `json:"intensity"` // "low", "medium", "high"
	CaloriesBurned float64   `json:"calories_burned"`
	WeightUsed     *float64  `json:"weight_used,omitempty"`
	WeightUnit     string    `json:"weight_unit,omitempty"`
	LoggedAt       time.Time `json:"logged_at"`
}

func (w *WorkoutLog) BeforeCreate(tx *gorm.DB) error {
	if w.LoggedAt.IsZero() {
		w.LoggedAt = time.Now()
	}
	return nil
}
