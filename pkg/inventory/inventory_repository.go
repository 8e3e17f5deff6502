package inventory

import (
	"context"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"pantry-pilot/entities"
	"pantry-pilot/pkg/freshness"
	"time"
)

type (
	InventoryRepository interface {
		AddEntry(ctx context.Context, entry *entities.InventoryEntry) error
		GetEntryByID(ctx context.Context, id string, userID string) (*entities.InventoryEntry, error)
		GetEntries(ctx context.Context, userID string, filter EntryFilter, page, limit int) ([]*entities.InventoryEntry, int64, error)
		GetAllEntries(ctx context.Context, userID string) ([]*entities.InventoryEntry, error)
		GetEntriesByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.InventoryEntry, error)
		GetFreshEntries(ctx context.Context, userID string, today time.Time) ([]*entities.InventoryEntry, error)
		GetFreshEntriesByFoodIDs(ctx context.Context, userID string, foodIDs []uuid.UUID, today time.Time) ([]*entities.InventoryEntry, error)
		UpdateEntry(ctx context.Context, entry *entities.InventoryEntry) error
		DeleteEntry(ctx context.Context, id string, userID string) error
	}

	// EntryFilter narrows GetEntries. Zero values mean no filtering on
	// that dimension. Today anchors the freshness windows.
	EntryFilter struct {
		StorageLocation string
		Category        string
		FreshnessStatus string
		Today           time.Time
	}

	inventoryRepository struct {
		db *gorm.DB
	}
)

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) AddEntry(ctx context.Context, entry *entities.InventoryEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *inventoryRepository) GetEntryByID(ctx context.Context, id string, userID string) (*entities.InventoryEntry, error) {
	var entry entities.InventoryEntry
	if err := r.db.WithContext(ctx).
		Preload("Food").
		Where("id = ? AND user_id = ?", id, userID).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *inventoryRepository) GetEntries(ctx context.Context, userID string, filter EntryFilter, page, limit int) ([]*entities.InventoryEntry, int64, error) {
	var entries []*entities.InventoryEntry
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).
		Model(&entities.InventoryEntry{}).
		Where("inventory_entries.user_id = ?", userID)

	if filter.StorageLocation != "" {
		query = query.Where("inventory_entries.storage_location = ?", filter.StorageLocation)
	}

	if filter.Category != "" {
		query = query.
			Joins("JOIN food_items ON food_items.id = inventory_entries.food_id").
			Where("food_items.category ILIKE ?", "%"+filter.Category+"%")
	}

	if filter.FreshnessStatus != "" {
		today := truncateToDate(filter.Today)
		switch filter.FreshnessStatus {
		case string(freshness.StatusExpired):
			query = query.Where("inventory_entries.expiry_date < ?", today)
		case string(freshness.StatusExpiringSoon):
			query = query.Where("inventory_entries.expiry_date BETWEEN ? AND ?", today, today.AddDate(0, 0, freshness.ExpiringSoonDays))
		case string(freshness.StatusConsumeSoon):
			query = query.Where("inventory_entries.expiry_date BETWEEN ? AND ?", today, today.AddDate(0, 0, freshness.ConsumeSoonDays))
		case string(freshness.StatusFresh):
			query = query.Where("inventory_entries.expiry_date > ?", today.AddDate(0, 0, freshness.ConsumeSoonDays))
		}
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Food").
		Offset(offset).
		Limit(limit).
		Order("inventory_entries.expiry_date asc").
		Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, count, nil
}

func (r *inventoryRepository) GetAllEntries(ctx context.Context, userID string) ([]*entities.InventoryEntry, error) {
	var entries []*entities.InventoryEntry
	if err := r.db.WithContext(ctx).
		Preload("Food").
		Where("user_id = ?", userID).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *inventoryRepository) GetEntriesByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.InventoryEntry, error) {
	var entries []*entities.InventoryEntry
	if err := r.db.WithContext(ctx).
		Preload("Food").
		Where("user_id = ? AND expiry_date BETWEEN ? AND ?", userID, truncateToDate(startDate), truncateToDate(endDate)).
		Order("expiry_date asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *inventoryRepository) GetFreshEntries(ctx context.Context, userID string, today time.Time) ([]*entities.InventoryEntry, error) {
	var entries []*entities.InventoryEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND expiry_date >= ?", userID, truncateToDate(today)).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *inventoryRepository) GetFreshEntriesByFoodIDs(ctx context.Context, userID string, foodIDs []uuid.UUID, today time.Time) ([]*entities.InventoryEntry, error) {
	if len(foodIDs) == 0 {
		return nil, nil
	}

	var entries []*entities.InventoryEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND food_id IN ? AND expiry_date >= ?", userID, foodIDs, truncateToDate(today)).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *inventoryRepository) UpdateEntry(ctx context.Context, entry *entities.InventoryEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *inventoryRepository) DeleteEntry(ctx context.Context, id string, userID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.InventoryEntry{}).Error
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
