package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username       string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	UnitPreference string    `gorm:"type:varchar(10);default:metric" json:"unit_preference"` // "metric" or "imperial"

	IsVegan      bool `json:"is_vegan"`
	IsVegetarian bool `json:"is_vegetarian"`
	IsGlutenFree bool `json:"is_gluten_free"`
	IsDairyFree  bool `json:"is_dairy_free"`
	IsHalal      bool `json:"is_halal"`
	IsKosher     bool `json:"is_kosher"`

	DailyCalorieGoal int `gorm:"default:2000" json:"daily_calorie_goal"`
	DailyProteinGoal int `gorm:"default:50" json:"daily_protein_goal"` // grams

	Timestamp
}
