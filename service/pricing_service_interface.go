package service

import (
	"context"

	"fulfillment-portal/models"
)

// PricingServiceInterface defines the contract for pricing operations
type PricingServiceInterface interface {
	Tables(ctx context.Context, userID string) (*models.PricingTablesResponse, error)
	// Quote reprices lines under the request's form context; Changed is false
	// when every line already held its derived price.
	Quote(ctx context.Context, userID string, req models.QuoteRequest) (*models.QuoteResponse, error)
	ToggleLine(ctx context.Context, userID string, req models.ToggleLineRequest) (*models.QuoteResponse, error)
}

var _ PricingServiceInterface = (*PricingService)(nil)
