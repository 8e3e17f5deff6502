package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"time"
)

// GroceryEntry is one line on a user's shopping list. The reconciler keeps
// at most one unpurchased entry per (user, food) pair by adding deficits to
// the existing row instead of inserting a second one.
type GroceryEntry struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	FoodID          uuid.UUID        `gorm:"type:uuid;not null;index" json:"food_id"`
	QuantityNeeded  decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"quantity_needed"`
	Unit            string           `gorm:"type:varchar(20);not null" json:"unit"`
	Reason          string           `gorm:"type:varchar(30)" json:"reason"` // "dont_have", "expiring_soon", "need_more", "recipe_requirement"
	RecipeID        *uuid.UUID       `gorm:"type:uuid" json:"recipe_id,omitempty"`
	IsPurchased     bool             `gorm:"index" json:"is_purchased"`
	Priority        int              `gorm:"default:1;index" json:"priority"`
	EstimatedPrice  *decimal.Decimal `gorm:"type:decimal(10,2)" json:"estimated_price,omitempty"`
	StorePreference string           `gorm:"type:varchar(100)" json:"store_preference,omitempty"`
	AisleLocation   string           `gorm:"type:varchar(50)" json:"aisle_location,omitempty"`
	PurchasedDate   *time.Time       `json:"purchased_date,omitempty"`

	User   *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Food   *FoodItem `gorm:"foreignKey:FoodID"`
	Recipe *Recipe   `gorm:"foreignKey:RecipeID;constraint:OnDelete:SET NULL"`
	Timestamp
}
