package models

import (
	"gorm.io/gorm"
)

type PlanKind string

const (
	PlanKindDiet    PlanKind = "diet"
	PlanKindWorkout PlanKind = "workout"
)

func ValidPlanKind(k string) bool {
	return PlanKind(k) == PlanKindDiet || PlanKind(k) == PlanKindWorkout
}

// PlanMessage is one entry in the append-only conversation between a
// member and their coach, threaded by (member, plan kind).
type PlanMessage struct {
	gorm.Model
	MemberID   uint     `json:"member_id"`
	Member     User     `json:"member,omitempty" gorm:"foreignKey:MemberID"`
	PlanType   PlanKind `json:"plan_type"`
	SenderRole UserRole `json:"sender_role"`
	CoachID    *uint    `json:"coach_id,omitempty"`
	Coach      *User    `json:"coach,omitempty" gorm:"foreignKey:CoachID"`
	Message    string   `json:"message"`
}
