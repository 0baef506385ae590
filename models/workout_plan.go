package models

import (
	"gorm.io/gorm"
)

type WorkoutPlan struct {
	gorm.Model
	MemberID          uint         `json:"member_id"`
	Member            User         `json:"member,omitempty" gorm:"foreignKey:MemberID"`
	CreatedByID       *uint        `json:"created_by_id,omitempty"`
	CreatedBy         *User        `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
	Name              string       `json:"name"`
	Type              PlanType     `json:"type"`
	Goal              string       `json:"goal"`
	WeeklyDays        int          `json:"weekly_days"`
	EstimatedDuration int          `json:"estimated_duration"` // minutes per session
	Difficulty        string       `json:"difficulty"`
	IsActive          bool         `json:"is_active" gorm:"default:true"`
	Days              []WorkoutDay `json:"days,omitempty" gorm:"foreignKey:WorkoutPlanID"`
}

type WorkoutDay struct {
	gorm.Model
	WorkoutPlanID uint              `json:"workout_plan_id"`
	Name          string            `json:"name"` // e.g. "Day 1: Upper Body"
	Sequence      int               `json:"sequence"`
	Exercises     []WorkoutExercise `json:"exercises,omitempty" gorm:"foreignKey:WorkoutDayID"`
}

type WorkoutExercise struct {
	gorm.Model
	WorkoutDayID  uint   `json:"workout_day_id"`
	ExerciseID    *uint  `json:"exercise_id,omitempty"`
	Name          string `json:"name"`
	Sets          int    `json:"sets"`
	Reps          string `json:"reps"` // "8-12" style ranges allowed
	RestSeconds   int    `json:"rest"`
	TargetMuscles string `json:"target_muscles"`
	Instructions  string `json:"instructions,omitempty"`
	Sequence      int    `json:"sequence"`
}
