package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"time"
)

// InventoryEntry is one batch of a food item a user owns. Freshness status
// and days-until-expiry are derived from ExpiryDate on read, never stored.
type InventoryEntry struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	FoodID          uuid.UUID        `gorm:"type:uuid;not null;index" json:"food_id"`
	Quantity        decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"quantity"`
	Unit            string           `gorm:"type:varchar(20);not null" json:"unit"`
	PurchaseDate    time.Time        `gorm:"type:date" json:"purchase_date"`
	ExpiryDate      time.Time        `gorm:"type:date;not null;index" json:"expiry_date"`
	StorageLocation string           `gorm:"type:varchar(20)" json:"storage_location"` // "fridge", "freezer", "pantry", "counter"
	PricePaid       *decimal.Decimal `gorm:"type:decimal(10,2)" json:"price_paid,omitempty"`
	Currency        string           `gorm:"type:varchar(3);default:USD" json:"currency"`
	Notes           string           `gorm:"type:text" json:"notes,omitempty"`

	User *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Food *FoodItem `gorm:"foreignKey:FoodID"`
	Timestamp
}
