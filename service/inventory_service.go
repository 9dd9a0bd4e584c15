package service

import (
	"context"
	"fmt"

	"fulfillment-portal/models"
	"fulfillment-portal/repository"
	"fulfillment-portal/shipment"
	"fulfillment-portal/utils"
)

const dateAddedLayout = "Jan 2, 2006"

// InventoryService serves the read-only inventory view
type InventoryService struct {
	repo repository.InventoryRepositoryInterface
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(repo repository.InventoryRepositoryInterface) *InventoryService {
	return &InventoryService{repo: repo}
}

// FormatDateAdded formats an ISO or {seconds} timestamp, or returns "N/A"
func FormatDateAdded(ts models.Timestamp) string {
	t, ok := ts.Time()
	if !ok {
		return "N/A"
	}
	return t.UTC().Format(dateAddedLayout)
}

// BuildInventoryRows turns inventory items into display rows
func BuildInventoryRows(items []models.InventoryItem) []models.InventoryRow {
	rows := make([]models.InventoryRow, 0, len(items))
	for _, item := range items {
		inventoryType := item.InventoryType
		if inventoryType == "" {
			inventoryType = models.InventoryTypeProduct
		}
		rows = append(rows, models.InventoryRow{
			ID:            item.ID,
			ProductName:   item.ProductName,
			SKU:           item.SKU,
			Quantity:      item.Quantity,
			InventoryType: inventoryType,
			Status:        item.Status,
			StatusLabel:   utils.MapStatusToLabel(item.Status),
			StatusBadge:   utils.MapStatusToBadge(item.Status),
			DateAdded:     FormatDateAdded(item.DateAdded),
		})
	}
	return rows
}

// Rows returns the user's inventory table
func (s *InventoryService) Rows(ctx context.Context, userID string) ([]models.InventoryRow, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}
	return BuildInventoryRows(items), nil
}

// Selectable returns the items that can be added to a shipment of the given type
func (s *InventoryService) Selectable(ctx context.Context, userID, shipmentType, palletSubType string) ([]models.InventoryItem, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}
	return shipment.SelectableItems(items, shipmentType, palletSubType), nil
}
