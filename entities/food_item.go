package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type FoodItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Barcode      *string   `gorm:"type:varchar(50);uniqueIndex" json:"barcode,omitempty"`
	UsdaFdcID    *int      `gorm:"uniqueIndex" json:"usda_fdc_id,omitempty"`
	EdamamFoodID *string   `gorm:"type:varchar(100);uniqueIndex" json:"edamam_food_id,omitempty"`
	Name         string    `gorm:"type:varchar(255);not null;index" json:"name"`
	Brand        string    `gorm:"type:varchar(255)" json:"brand,omitempty"`
	Category     string    `gorm:"type:varchar(100);index" json:"category,omitempty"`

	// Nutrition per 100g. Nil means unknown, not zero.
	CaloriesPer100g *decimal.Decimal `gorm:"type:decimal(10,2)" json:"calories_per_100g,omitempty"`
	ProteinPer100g  *decimal.Decimal `gorm:"type:decimal(10,2)" json:"protein_per_100g,omitempty"`
	CarbsPer100g    *decimal.Decimal `gorm:"type:decimal(10,2)" json:"carbs_per_100g,omitempty"`
	FatPer100g      *decimal.Decimal `gorm:"type:decimal(10,2)" json:"fat_per_100g,omitempty"`
	FiberPer100g    *decimal.Decimal `gorm:"type:decimal(10,2)" json:"fiber_per_100g,omitempty"`
	SugarPer100g    *decimal.Decimal `gorm:"type:decimal(10,2)" json:"sugar_per_100g,omitempty"`
	SodiumPer100g   *decimal.Decimal `gorm:"type:decimal(10,2)" json:"sodium_per_100g,omitempty"`

	ServingSizeG *decimal.Decimal `gorm:"type:decimal(10,2)" json:"serving_size_g,omitempty"`

	IsVegan      bool `json:"is_vegan"`
	IsVegetarian bool `json:"is_vegetarian"`
	IsGlutenFree bool `json:"is_gluten_free"`
	IsDairyFree  bool `json:"is_dairy_free"`
	IsHalal      bool `json:"is_halal"`
	IsKosher     bool `json:"is_kosher"`

	ImageURL   string `gorm:"type:text" json:"image_url,omitempty"`
	DataSource string `gorm:"type:varchar(50)" json:"data_source"` // "openfoodfacts", "usda", "edamam", "user_custom"

	Timestamp
}
