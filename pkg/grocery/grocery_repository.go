package grocery

import (
	"context"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"pantry-pilot/entities"
)

type (
	GroceryRepository interface {
		AddEntry(ctx context.Context, entry *entities.GroceryEntry) error
		GetEntryByID(ctx context.Context, id string, userID string) (*entities.GroceryEntry, error)
		GetEntries(ctx context.Context, userID string, showPurchased bool) ([]*entities.GroceryEntry, error)
		GetPurchasedEntries(ctx context.Context, userID string) ([]*entities.GroceryEntry, error)
		AddQuantityToUnpurchased(ctx context.Context, userID string, foodID uuid.UUID, delta decimal.Decimal) (bool, error)
		UpdateEntry(ctx context.Context, entry *entities.GroceryEntry) error
		DeleteEntry(ctx context.Context, id string, userID string) error
		DeletePurchased(ctx context.Context, userID string) (int64, error)
		MoveEntriesToInventory(ctx context.Context, groceryEntries []*entities.GroceryEntry, inventoryEntries []*entities.InventoryEntry) error
	}

	groceryRepository struct {
		db *gorm.DB
	}
)

func NewGroceryRepository(db *gorm.DB) GroceryRepository {
	return &groceryRepository{db: db}
}

func (r *groceryRepository) AddEntry(ctx context.Context, entry *entities.GroceryEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *groceryRepository) GetEntryByID(ctx context.Context, id string, userID string) (*entities.GroceryEntry, error) {
	var entry entities.GroceryEntry
	if err := r.db.WithContext(ctx).
		Preload("Food").
		Preload("Recipe").
		Where("id = ? AND user_id = ?", id, userID).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *groceryRepository) GetEntries(ctx context.Context, userID string, showPurchased bool) ([]*entities.GroceryEntry, error) {
	query := r.db.WithContext(ctx).
		Preload("Food").
		Preload("Recipe").
		Where("user_id = ?", userID)

	if !showPurchased {
		query = query.Where("is_purchased = ?", false)
	}

	var entries []*entities.GroceryEntry
	if err := query.Order("created_at asc").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *groceryRepository) GetPurchasedEntries(ctx context.Context, userID string) ([]*entities.GroceryEntry, error) {
	var entries []*entities.GroceryEntry
	if err := r.db.WithContext(ctx).
		Preload("Food").
		Where("user_id = ? AND is_purchased = ?", userID, true).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// AddQuantityToUnpurchased folds delta into the user's unpurchased entry for
// the food in a single UPDATE. Returns true when an entry was merged into.
func (r *groceryRepository) AddQuantityToUnpurchased(ctx context.Context, userID string, foodID uuid.UUID, delta decimal.Decimal) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.GroceryEntry{}).
		Where("user_id = ? AND food_id = ? AND is_purchased = ?", userID, foodID, false).
		Update("quantity_needed", gorm.Expr("quantity_needed + ?", delta))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *groceryRepository) UpdateEntry(ctx context.Context, entry *entities.GroceryEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *groceryRepository) DeleteEntry(ctx context.Context, id string, userID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.GroceryEntry{}).Error
}

func (r *groceryRepository) DeletePurchased(ctx context.Context, userID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND is_purchased = ?", userID, true).
		Delete(&entities.GroceryEntry{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// MoveEntriesToInventory creates the inventory entries and removes the
// grocery entries in one transaction, so a failed checkout changes nothing.
func (r *groceryRepository) MoveEntriesToInventory(ctx context.Context, groceryEntries []*entities.GroceryEntry, inventoryEntries []*entities.InventoryEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, entry := range inventoryEntries {
			if err := tx.Create(entry).Error; err != nil {
				return err
			}
		}
		for _, entry := range groceryEntries {
			if err := tx.Where("id = ?", entry.ID).Delete(&entities.GroceryEntry{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
