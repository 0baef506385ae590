package models

import (
	"time"

	"gorm.io/gorm"
)

// CheckIn is a member self-report. Append-only; never updated.
type CheckIn struct {
	gorm.Model
	MemberID  uint      `json:"member_id"`
	Member    User      `json:"member,omitempty" gorm:"foreignKey:MemberID"`
	Adherence int       `json:"adherence"` // 1-10 self rating
	Fatigue   int       `json:"fatigue"`
	Pain      int       `json:"pain"`
	WeightKg  *float64  `json:"weight_kg,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	LoggedAt  time.Time `json:"logged_at"`
}

func (c *CheckIn) BeforeCreate(tx *gorm.DB) error {
	if c.LoggedAt.IsZero() {
		c.LoggedAt = time.Now()
	}
	return nil
}
