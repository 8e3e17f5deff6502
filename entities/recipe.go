package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"time"
)

type Recipe struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	EdamamRecipeURI *string   `gorm:"type:varchar(255);uniqueIndex" json:"edamam_recipe_uri,omitempty"`
	Name            string    `gorm:"type:varchar(255);not null;index" json:"name"`
	Description     string    `gorm:"type:text" json:"description,omitempty"`
	CuisineType     string    `gorm:"type:varchar(50)" json:"cuisine_type,omitempty"`
	MealType        string    `gorm:"type:varchar(50)" json:"meal_type,omitempty"` // "breakfast", "lunch", "dinner", "snack", "dessert"

	PrepTimeMinutes  int `json:"prep_time_minutes"`
	CookTimeMinutes  int `json:"cook_time_minutes"`
	TotalTimeMinutes int `json:"total_time_minutes"`

	Servings     int    `gorm:"not null;default:1" json:"servings"`
	Instructions string `gorm:"type:text" json:"instructions,omitempty"`
	SourceURL    string `gorm:"type:text" json:"source_url,omitempty"`
	ImageURL     string `gorm:"type:text" json:"image_url,omitempty"`

	// Nutrition cache, filled at creation/import and refreshed when the
	// ingredient list or servings change. Reads never recompute.
	TotalCalories      *decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_calories,omitempty"`
	TotalProtein       *decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_protein,omitempty"`
	TotalCarbs         *decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_carbs,omitempty"`
	TotalFat           *decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_fat,omitempty"`
	TotalFiber         *decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_fiber,omitempty"`
	CaloriesPerServing *decimal.Decimal `gorm:"type:decimal(10,2)" json:"calories_per_serving,omitempty"`
	ProteinPerServing  *decimal.Decimal `gorm:"type:decimal(10,2)" json:"protein_per_serving,omitempty"`
	CarbsPerServing    *decimal.Decimal `gorm:"type:decimal(10,2)" json:"carbs_per_serving,omitempty"`
	FatPerServing      *decimal.Decimal `gorm:"type:decimal(10,2)" json:"fat_per_serving,omitempty"`

	IsVegan       bool `json:"is_vegan"`
	IsVegetarian  bool `json:"is_vegetarian"`
	IsGlutenFree  bool `json:"is_gluten_free"`
	IsDairyFree   bool `json:"is_dairy_free"`
	IsHalal       bool `json:"is_halal"`
	IsKosher      bool `json:"is_kosher"`
	IsLowCarb     bool `json:"is_low_carb"`
	IsHighProtein bool `json:"is_high_protein"`

	DifficultyLevel string `gorm:"type:varchar(20)" json:"difficulty_level,omitempty"` // "easy", "medium", "hard"
	SpicinessLevel  int    `json:"spiciness_level"`                                    // 0-5
	DataSource      string `gorm:"type:varchar(50)" json:"data_source"`                // "edamam" or "user_custom"

	Ingredients []*RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`
	Timestamp
}

type RecipeIngredient struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"recipe_id"`
	FoodID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"food_id"`
	Quantity       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"quantity"`
	Unit           string          `gorm:"type:varchar(20);not null" json:"unit"`
	IngredientNote string          `gorm:"type:text" json:"ingredient_note,omitempty"`
	IsOptional     bool            `json:"is_optional"`
	DisplayOrder   int             `json:"display_order"`

	Food *FoodItem `gorm:"foreignKey:FoodID"`
	Timestamp
}

// SavedRecipe bookmarks a recipe into a user's collection. At most one row
// exists per (user, recipe) pair; saving again only refreshes the notes.
type SavedRecipe struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	RecipeID uuid.UUID `gorm:"type:uuid;not null;index" json:"recipe_id"`
	Notes    *string   `gorm:"type:varchar(500)" json:"notes,omitempty"`
	SavedAt  time.Time `gorm:"autoCreateTime" json:"saved_at"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}
