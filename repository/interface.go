package repository

import (
	"context"
	"errors"

	"fulfillment-portal/models"
)

// ErrNotFound is returned when a lookup matches no row
var ErrNotFound = errors.New("not found")

// PricingRepositoryInterface reads the four per-user pricing collections
type PricingRepositoryInterface interface {
	GetPrepRules(ctx context.Context, userID string) ([]models.PricingRule, error)
	GetBoxForwardingPrices(ctx context.Context, userID string) ([]models.DatedPrice, error)
	GetPalletForwardingPrices(ctx context.Context, userID string) ([]models.DatedPrice, error)
	GetPalletExistingInventoryPrices(ctx context.Context, userID string) ([]models.DatedPrice, error)
}

// InventoryRepositoryInterface reads a user's inventory snapshot
type InventoryRepositoryInterface interface {
	ListByUser(ctx context.Context, userID string) ([]models.InventoryItem, error)
}

// ShipmentRequestRepositoryInterface stores submitted shipment requests
type ShipmentRequestRepositoryInterface interface {
	Create(ctx context.Context, record *models.ShipmentRequestRecord, document map[string]interface{}) error
	GetByID(ctx context.Context, userID, id string) (*models.ShipmentRequestRecord, error)
}

// UserRepositoryInterface loads portal user profiles
type UserRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}
