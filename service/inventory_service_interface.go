package service

import (
	"context"

	"fulfillment-portal/models"
)

// InventoryServiceInterface defines the contract for inventory views
type InventoryServiceInterface interface {
	Rows(ctx context.Context, userID string) ([]models.InventoryRow, error)
	Selectable(ctx context.Context, userID, shipmentType, palletSubType string) ([]models.InventoryItem, error)
}

var _ InventoryServiceInterface = (*InventoryService)(nil)
