package models

import (
	"time"
)

// UserRole is the closed set of roles the application dispatches on.
type UserRole string

const (
	RoleMember       UserRole = "member"
	RoleTrainer      UserRole = "trainer"
	RoleNutritionist UserRole = "nutritionist"
	RoleAdmin        UserRole = "admin"
)

// ValidRole reports whether r is one of the known roles. Unknown roles
// must fail closed everywhere they are checked.
func ValidRole(r string) bool {
	switch UserRole(r) {
	case RoleMember, RoleTrainer, RoleNutritionist, RoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsCoach() bool {
	return r == RoleTrainer || r == RoleNutritionist
}

type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name"`
	Email          string    `json:"email" gorm:"unique"`
	Password       string    `json:"password,omitempty"`
	Avatar         string    `json:"avatar,omitempty"`
	IsActivated    bool      `json:"is_activated"`
	OTP            string    `json:"-"`
	OTPExpiresAt   time.Time `json:"-"`
	RoleID         uint      `json:"role_id"`
	Role           Role      `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	TrainerID      *uint     `json:"trainer_id,omitempty"`
	Trainer        *User     `json:"trainer,omitempty" gorm:"foreignKey:TrainerID"`
	NutritionistID *uint     `json:"nutritionist_id,omitempty"`
	Nutritionist   *User     `json:"nutritionist,omitempty" gorm:"foreignKey:NutritionistID"`
	JoinDate       time.Time `json:"join_date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
