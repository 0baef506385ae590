package models

import (
	"time"

	"gorm.io/gorm"
)

type ActivityKind string

const (
	ActivityWater ActivityKind = "water"
	ActivitySteps ActivityKind = "steps"
)

// ActivityLog covers the simple counters (water intake, step counts)
// that share the create/delete lifecycle of meal and workout logs.
type ActivityLog struct {
	gorm.Model
	MemberID uint         `json:"member_id"`
	Member   User         `json:"member,omitempty" gorm:"foreignKey:MemberID"`
	Kind     ActivityKind `json:"kind"`
	Amount   float64      `json:"amount"`
	Unit     string       `json:"unit"` // "ml" for water, "steps" for steps
	LoggedAt time.Time    `json:"logged_at"`
}

func (a *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if a.LoggedAt.IsZero() {
		a.LoggedAt = time.Now()
	}
	return nil
}
