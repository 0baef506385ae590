package models

import (
	"gorm.io/gorm"
)

// Notification is append-only except for the read flag.
type Notification struct {
	gorm.Model
	UserID  uint   `json:"user_id"`
	User    User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Message string `json:"message"`
	IsRead  bool   `json:"is_read" gorm:"default:false"`
}
