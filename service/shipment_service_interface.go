package service

import (
	"context"

	"fulfillment-portal/models"
)

// ShipmentServiceInterface defines the contract for shipment request submission
type ShipmentServiceInterface interface {
	Submit(ctx context.Context, userID string, form models.ShipmentForm) (*models.ShipmentRequestRecord, error)
	Get(ctx context.Context, userID, id string) (*models.ShipmentRequestRecord, error)
}

var _ ShipmentServiceInterface = (*ShipmentService)(nil)
