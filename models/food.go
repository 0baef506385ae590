package models

import (
	"gorm.io/gorm"
)

// Food is a catalog entry. All macro values are per 100 grams.
type Food struct {
	gorm.Model
	Name        string   `json:"name" gorm:"not null"`
	NameAmharic string   `json:"name_amharic,omitempty"`
	Category    string   `json:"category"`
	Calories    float64  `json:"calories"` // kcal per 100g
	Protein     float64  `json:"protein"`  // grams per 100g
	Carbs       float64  `json:"carbs"`
	Fat         float64  `json:"fat"`
	Fiber       *float64 `json:"fiber,omitempty"`
	IsCustom    bool     `json:"is_custom" gorm:"default:false"` // composed from ingredients
	CreatedByID *uint    `json:"created_by_id,omitempty"`
}
