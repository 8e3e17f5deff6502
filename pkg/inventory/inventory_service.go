package inventory

import (
	"context"
	"errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"pantry-pilot/domain"
	"pantry-pilot/entities"
	"pantry-pilot/pkg/food"
	"pantry-pilot/pkg/freshness"
	"time"
)

type (
	InventoryService interface {
		AddEntry(ctx context.Context, userID string, req domain.AddInventoryEntryRequest) (domain.InventoryEntryResponse, error)
		GetEntries(ctx context.Context, userID string, filter domain.InventoryListFilter) (domain.InventoryListResponse, error)
		GetEntryByID(ctx context.Context, id string, userID string) (domain.InventoryEntryResponse, error)
		UpdateEntry(ctx context.Context, id string, userID string, req domain.UpdateInventoryEntryRequest) (domain.InventoryEntryResponse, error)
		DeleteEntry(ctx context.Context, id string, userID string) error
		GetExpiringEntries(ctx context.Context, userID string, days int) ([]domain.InventoryEntryResponse, error)
		GetStats(ctx context.Context, userID string) (domain.InventoryStatsResponse, error)
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
		foodRepository      food.FoodRepository
		now                 func() time.Time
	}
)

const (
	defaultPageSize     = 50
	defaultExpiringDays = 7
)

func NewInventoryService(inventoryRepository InventoryRepository, foodRepository food.FoodRepository, now func() time.Time) InventoryService {
	return &inventoryService{
		inventoryRepository: inventoryRepository,
		foodRepository:      foodRepository,
		now:                 now,
	}
}

func (s *inventoryService) AddEntry(ctx context.Context, userID string, req domain.AddInventoryEntryRequest) (domain.InventoryEntryResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.InventoryEntryResponse{}, domain.ErrParseUUID
	}

	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, req.FoodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.InventoryEntryResponse{}, domain.ErrFoodItemNotFound
		}
		return domain.InventoryEntryResponse{}, err
	}

	expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return domain.InventoryEntryResponse{}, domain.ErrInvalidDateFormat
	}

	purchaseDate := truncateToDate(s.now())
	if req.PurchaseDate != "" {
		purchaseDate, err = time.Parse("2006-01-02", req.PurchaseDate)
		if err != nil {
			return domain.InventoryEntryResponse{}, domain.ErrInvalidDateFormat
		}
	}

	entry := &entities.InventoryEntry{
		UserID:          userUUID,
		FoodID:          foodItem.ID,
		Quantity:        decimal.NewFromFloat(req.Quantity),
		Unit:            req.Unit,
		PurchaseDate:    purchaseDate,
		ExpiryDate:      expiryDate,
		StorageLocation: req.StorageLocation,
		PricePaid:       floatPtrToDecimal(req.PricePaid),
		Currency:        req.Currency,
		Notes:           req.Notes,
	}

	if err := s.inventoryRepository.AddEntry(ctx, entry); err != nil {
		return domain.InventoryEntryResponse{}, err
	}

	entry.Food = foodItem
	return entryResponse(entry, s.now()), nil
}

func (s *inventoryService) GetEntries(ctx context.Context, userID string, filter domain.InventoryListFilter) (domain.InventoryListResponse, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	entries, count, err := s.inventoryRepository.GetEntries(ctx, userID, EntryFilter{
		StorageLocation: filter.StorageLocation,
		Category:        filter.Category,
		FreshnessStatus: filter.FreshnessStatus,
		Today:           s.now(),
	}, page, pageSize)
	if err != nil {
		return domain.InventoryListResponse{}, err
	}

	items := make([]domain.InventoryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		items = append(items, entryResponse(entry, s.now()))
	}

	totalPages := int((count + int64(pageSize) - 1) / int64(pageSize))

	return domain.InventoryListResponse{
		Items:      items,
		TotalCount: count,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

func (s *inventoryService) GetEntryByID(ctx context.Context, id string, userID string) (domain.InventoryEntryResponse, error) {
	entry, err := s.inventoryRepository.GetEntryByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.InventoryEntryResponse{}, domain.ErrInventoryEntryNotFound
		}
		return domain.InventoryEntryResponse{}, err
	}
	return entryResponse(entry, s.now()), nil
}

func (s *inventoryService) UpdateEntry(ctx context.Context, id string, userID string, req domain.UpdateInventoryEntryRequest) (domain.InventoryEntryResponse, error) {
	entry, err := s.inventoryRepository.GetEntryByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.InventoryEntryResponse{}, domain.ErrInventoryEntryNotFound
		}
		return domain.InventoryEntryResponse{}, err
	}

	if req.Quantity != nil {
		entry.Quantity = decimal.NewFromFloat(*req.Quantity)
	}
	if req.Unit != nil {
		entry.Unit = *req.Unit
	}
	if req.ExpiryDate != nil {
		expiryDate, err := time.Parse("2006-01-02", *req.ExpiryDate)
		if err != nil {
			return domain.InventoryEntryResponse{}, domain.ErrInvalidDateFormat
		}
		entry.ExpiryDate = expiryDate
	}
	if req.StorageLocation != nil {
		entry.StorageLocation = *req.StorageLocation
	}
	if req.PricePaid != nil {
		entry.PricePaid = floatPtrToDecimal(req.PricePaid)
	}
	if req.Notes != nil {
		entry.Notes = *req.Notes
	}

	if err := s.inventoryRepository.UpdateEntry(ctx, entry); err != nil {
		return domain.InventoryEntryResponse{}, err
	}
	return entryResponse(entry, s.now()), nil
}

func (s *inventoryService) DeleteEntry(ctx context.Context, id string, userID string) error {
	if _, err := s.inventoryRepository.GetEntryByID(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrInventoryEntryNotFound
		}
		return err
	}
	return s.inventoryRepository.DeleteEntry(ctx, id, userID)
}

func (s *inventoryService) GetExpiringEntries(ctx context.Context, userID string, days int) ([]domain.InventoryEntryResponse, error) {
	if days <= 0 {
		days = defaultExpiringDays
	}

	today := s.now()
	entries, err := s.inventoryRepository.GetEntriesByExpiryRange(ctx, userID, today, today.AddDate(0, 0, days))
	if err != nil {
		return nil, err
	}

	items := make([]domain.InventoryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		items = append(items, entryResponse(entry, today))
	}
	return items, nil
}

func (s *inventoryService) GetStats(ctx context.Context, userID string) (domain.InventoryStatsResponse, error) {
	entries, err := s.inventoryRepository.GetAllEntries(ctx, userID)
	if err != nil {
		return domain.InventoryStatsResponse{}, err
	}

	today := s.now()
	totalValue := decimal.Zero
	stats := domain.InventoryStatsResponse{
		TotalItems:       len(entries),
		Categories:       make(map[string]int),
		StorageBreakdown: make(map[string]int),
	}

	for _, entry := range entries {
		if entry.PricePaid != nil {
			totalValue = totalValue.Add(*entry.PricePaid)
		}

		switch freshness.Classify(entry.ExpiryDate, today) {
		case freshness.StatusFresh:
			stats.FreshCount++
		case freshness.StatusConsumeSoon:
			stats.ConsumeSoonCount++
		case freshness.StatusExpiringSoon:
			stats.ExpiringSoonCount++
		case freshness.StatusExpired:
			stats.ExpiredCount++
		}

		category := "Uncategorized"
		if entry.Food != nil && entry.Food.Category != "" {
			category = entry.Food.Category
		}
		stats.Categories[category]++

		if entry.StorageLocation != "" {
			stats.StorageBreakdown[entry.StorageLocation]++
		}
	}

	stats.TotalValue = totalValue.InexactFloat64()
	return stats, nil
}

func entryResponse(entry *entities.InventoryEntry, today time.Time) domain.InventoryEntryResponse {
	response := domain.InventoryEntryResponse{
		ID:              entry.ID.String(),
		FoodID:          entry.FoodID.String(),
		Quantity:        entry.Quantity.InexactFloat64(),
		Unit:            entry.Unit,
		ExpiryDate:      entry.ExpiryDate.Format("2006-01-02"),
		StorageLocation: entry.StorageLocation,
		PricePaid:       decimalPtrToFloat(entry.PricePaid),
		Currency:        entry.Currency,
		Notes:           entry.Notes,
		FreshnessStatus: string(freshness.Classify(entry.ExpiryDate, today)),
		DaysUntilExpiry: freshness.DaysUntil(entry.ExpiryDate, today),
	}

	if !entry.PurchaseDate.IsZero() {
		response.PurchaseDate = entry.PurchaseDate.Format("2006-01-02")
	}

	if entry.Food != nil {
		response.FoodName = entry.Food.Name
		response.FoodCategory = entry.Food.Category
		response.FoodImageURL = entry.Food.ImageURL
	}

	return response
}

func floatPtrToDecimal(v *float64) *decimal.Decimal {
	if v == nil {
		return nil
	}
	d := decimal.NewFromFloat(*v)
	return &d
}

func decimalPtrToFloat(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	v := d.InexactFloat64()
	return &v
}
