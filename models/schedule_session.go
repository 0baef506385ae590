package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
)

type SessionType string

const (
	SessionPersonal SessionType = "personal"
	SessionGroup    SessionType = "group"
	SessionOnline   SessionType = "online"
)

func ValidSessionType(t string) bool {
	switch SessionType(t) {
	case SessionPersonal, SessionGroup, SessionOnline:
		return true
	}
	return false
}

type ScheduleSession struct {
	gorm.Model
	MemberID    uint          `json:"member_id"`
	Member      User          `json:"member,omitempty" gorm:"foreignKey:MemberID"`
	TrainerID   uint          `json:"trainer_id"`
	Trainer     User          `json:"trainer,omitempty" gorm:"foreignKey:TrainerID"`
	SessionType SessionType   `json:"session_type"`
	SessionDate time.Time     `json:"session_date"`
	SessionTime string        `json:"session_time"` // "HH:MM" in 24h
	DurationMin int           `json:"duration_minutes" gorm:"default:60"`
	Status      SessionStatus `json:"status"`
	// Set by the reminder job so each session is reminded once.
	ReminderSent bool   `json:"reminder_sent" gorm:"default:false"`
	Notes        string `json:"notes,omitempty"`
}

func (s *ScheduleSession) BeforeCreate(tx *gorm.DB) error {
	if s.Status == "" {
		s.Status = SessionScheduled
	}
	return nil
}

// CanTransition reports whether the status change is allowed. Scheduled
// sessions may complete or cancel; terminal states are frozen.
func (s *ScheduleSession) CanTransition(next SessionStatus) bool {
	switch s.Status {
	case SessionScheduled:
		return next == SessionCompleted || next == SessionCancelled
	default:
		return false
	}
}

func (s *ScheduleSession) UpdateStatus(tx *gorm.DB, next SessionStatus) error {
	if !s.CanTransition(next) {
		return fmt.Errorf("invalid transition from %s to %s", s.Status, next)
	}
	s.Status = next
	return tx.Save(s).Error
}
