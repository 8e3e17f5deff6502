package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pantry-pilot/domain"
	"pantry-pilot/entities"
	"pantry-pilot/pkg/food"
)

type fakeInventoryRepo struct {
	InventoryRepository
	entries []*entities.InventoryEntry
	byID    *entities.InventoryEntry
	saved   *entities.InventoryEntry
	added   *entities.InventoryEntry
}

func (f *fakeInventoryRepo) AddEntry(_ context.Context, entry *entities.InventoryEntry) error {
	f.added = entry
	return nil
}

func (f *fakeInventoryRepo) GetEntryByID(_ context.Context, _ string, _ string) (*entities.InventoryEntry, error) {
	if f.byID == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.byID, nil
}

func (f *fakeInventoryRepo) GetAllEntries(_ context.Context, _ string) ([]*entities.InventoryEntry, error) {
	return f.entries, nil
}

func (f *fakeInventoryRepo) GetEntriesByExpiryRange(_ context.Context, _ string, _, _ time.Time) ([]*entities.InventoryEntry, error) {
	return f.entries, nil
}

func (f *fakeInventoryRepo) UpdateEntry(_ context.Context, entry *entities.InventoryEntry) error {
	f.saved = entry
	return nil
}

type fakeFoodRepo struct {
	food.FoodRepository
	item *entities.FoodItem
}

func (f *fakeFoodRepo) GetFoodItemByID(_ context.Context, _ string) (*entities.FoodItem, error) {
	if f.item == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.item, nil
}

func fixedNow() time.Time {
	return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
}

func entryExpiring(days int, price float64, category, location string) *entities.InventoryEntry {
	priceDec := decimal.NewFromFloat(price)
	return &entities.InventoryEntry{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		FoodID:          uuid.New(),
		Quantity:        decimal.NewFromInt(1),
		Unit:            "pcs",
		ExpiryDate:      fixedNow().AddDate(0, 0, days),
		StorageLocation: location,
		PricePaid:       &priceDec,
		Food:            &entities.FoodItem{Name: "Test Food", Category: category},
	}
}

func TestGetStats(t *testing.T) {
	repo := &fakeInventoryRepo{entries: []*entities.InventoryEntry{
		entryExpiring(-1, 2.50, "Dairy", "fridge"),
		entryExpiring(1, 3.00, "Dairy", "fridge"),
		entryExpiring(5, 1.25, "Produce", "pantry"),
		entryExpiring(30, 4.00, "", "freezer"),
	}}
	svc := NewInventoryService(repo, &fakeFoodRepo{}, fixedNow)

	stats, err := svc.GetStats(context.Background(), uuid.NewString())
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalItems)
	assert.InDelta(t, 10.75, stats.TotalValue, 0.001)
	assert.Equal(t, 1, stats.ExpiredCount)
	assert.Equal(t, 1, stats.ExpiringSoonCount)
	assert.Equal(t, 1, stats.ConsumeSoonCount)
	assert.Equal(t, 1, stats.FreshCount)
	assert.Equal(t, map[string]int{"Dairy": 2, "Produce": 1, "Uncategorized": 1}, stats.Categories)
	assert.Equal(t, map[string]int{"fridge": 2, "pantry": 1, "freezer": 1}, stats.StorageBreakdown)
}

func TestGetExpiringEntriesAnnotatesFreshness(t *testing.T) {
	repo := &fakeInventoryRepo{entries: []*entities.InventoryEntry{
		entryExpiring(2, 0, "Dairy", "fridge"),
	}}
	svc := NewInventoryService(repo, &fakeFoodRepo{}, fixedNow)

	items, err := svc.GetExpiringEntries(context.Background(), uuid.NewString(), 0)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "expiring_soon", items[0].FreshnessStatus)
	assert.Equal(t, 2, items[0].DaysUntilExpiry)
	assert.Equal(t, "Test Food", items[0].FoodName)
}

func TestUpdateEntryAppliesOnlyProvidedFields(t *testing.T) {
	entry := entryExpiring(10, 0, "Dairy", "fridge")
	entry.Notes = "original note"
	repo := &fakeInventoryRepo{byID: entry}
	svc := NewInventoryService(repo, &fakeFoodRepo{}, fixedNow)

	quantity := 7.5
	location := "freezer"
	_, err := svc.UpdateEntry(context.Background(), entry.ID.String(), entry.UserID.String(), domain.UpdateInventoryEntryRequest{
		Quantity:        &quantity,
		StorageLocation: &location,
	})
	require.NoError(t, err)
	require.NotNil(t, repo.saved)

	assert.True(t, decimal.NewFromFloat(7.5).Equal(repo.saved.Quantity))
	assert.Equal(t, "freezer", repo.saved.StorageLocation)
	assert.Equal(t, "original note", repo.saved.Notes)
	assert.Equal(t, "pcs", repo.saved.Unit)
}

func TestUpdateEntryNotFound(t *testing.T) {
	svc := NewInventoryService(&fakeInventoryRepo{}, &fakeFoodRepo{}, fixedNow)

	_, err := svc.UpdateEntry(context.Background(), uuid.NewString(), uuid.NewString(), domain.UpdateInventoryEntryRequest{})
	assert.ErrorIs(t, err, domain.ErrInventoryEntryNotFound)
}

func TestAddEntryRejectsBadExpiryDate(t *testing.T) {
	foodItem := &entities.FoodItem{ID: uuid.New(), Name: "Milk"}
	svc := NewInventoryService(&fakeInventoryRepo{}, &fakeFoodRepo{item: foodItem}, fixedNow)

	_, err := svc.AddEntry(context.Background(), uuid.NewString(), domain.AddInventoryEntryRequest{
		FoodID:          foodItem.ID.String(),
		Quantity:        1,
		Unit:            "l",
		ExpiryDate:      "06/15/2025",
		StorageLocation: "fridge",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDateFormat)
}

func TestAddEntryUnknownFood(t *testing.T) {
	svc := NewInventoryService(&fakeInventoryRepo{}, &fakeFoodRepo{}, fixedNow)

	_, err := svc.AddEntry(context.Background(), uuid.NewString(), domain.AddInventoryEntryRequest{
		FoodID:          uuid.NewString(),
		Quantity:        1,
		Unit:            "l",
		ExpiryDate:      "2025-06-15",
		StorageLocation: "fridge",
	})
	assert.ErrorIs(t, err, domain.ErrFoodItemNotFound)
}
