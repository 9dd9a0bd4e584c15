package service

import (
	"context"
	"fmt"

	"fulfillment-portal/models"
	"fulfillment-portal/pricing"
	"fulfillment-portal/repository"
	"fulfillment-portal/shipment"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// PricingService loads the user's pricing tables and prices shipment lines
type PricingService struct {
	repo repository.PricingRepositoryInterface
}

// NewPricingService creates a new PricingService
func NewPricingService(repo repository.PricingRepositoryInterface) *PricingService {
	return &PricingService{repo: repo}
}

// LoadTables fetches the four pricing collections concurrently.
// Any failed fetch fails the whole load so callers never see a partial set.
func (s *PricingService) LoadTables(ctx context.Context, userID string) (pricing.Tables, error) {
	var tables pricing.Tables
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rules, err := s.repo.GetPrepRules(gctx, userID)
		tables.PrepRules = rules
		return err
	})
	g.Go(func() error {
		prices, err := s.repo.GetBoxForwardingPrices(gctx, userID)
		tables.BoxForwarding = prices
		return err
	})
	g.Go(func() error {
		prices, err := s.repo.GetPalletForwardingPrices(gctx, userID)
		tables.PalletForwarding = prices
		return err
	})
	g.Go(func() error {
		prices, err := s.repo.GetPalletExistingInventoryPrices(gctx, userID)
		tables.PalletExistingInventory = prices
		return err
	})

	if err := g.Wait(); err != nil {
		log.Printf("❌ LoadTables: failed for user=%s: %v", userID, err)
		return pricing.Tables{}, fmt.Errorf("failed to load pricing tables: %w", err)
	}
	return tables, nil
}

// Tables returns the pricing collections as served to the portal
func (s *PricingService) Tables(ctx context.Context, userID string) (*models.PricingTablesResponse, error) {
	tables, err := s.LoadTables(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &models.PricingTablesResponse{
		PrepRules:               nonNil(tables.PrepRules),
		BoxForwarding:           nonNil(tables.BoxForwarding),
		PalletForwarding:        nonNil(tables.PalletForwarding),
		PalletExistingInventory: nonNil(tables.PalletExistingInventory),
	}, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func quoteFor(req models.QuoteRequest, tables pricing.Tables) pricing.Quote {
	return pricing.Quote{
		ShipmentType:  req.ShipmentType,
		PalletSubType: req.PalletSubType,
		Service:       req.Service,
		ProductType:   req.ProductType,
		Tables:        tables,
	}
}

func quoteResponse(lines []models.ShipmentLine, changed bool) *models.QuoteResponse {
	lines = nonNil(lines)
	return &models.QuoteResponse{Lines: lines, Changed: changed, Total: pricing.Total(lines)}
}

// Quote reprices the lines of a form context
func (s *PricingService) Quote(ctx context.Context, userID string, req models.QuoteRequest) (*models.QuoteResponse, error) {
	tables, err := s.LoadTables(ctx, userID)
	if err != nil {
		return nil, err
	}

	lines, changed := pricing.Reprice(req.Lines, quoteFor(req, tables))
	log.WithFields(log.Fields{
		"user":         userID,
		"shipmentType": req.ShipmentType,
		"lines":        len(lines),
		"changed":      changed,
	}).Debug("💰 Quote repriced")
	return quoteResponse(lines, changed), nil
}

// ToggleLine selects or deselects a product and returns the updated lines
func (s *PricingService) ToggleLine(ctx context.Context, userID string, req models.ToggleLineRequest) (*models.QuoteResponse, error) {
	if req.ProductID == "" {
		return nil, fmt.Errorf("%w: productId is required", shipment.ErrInvalidRequest)
	}

	tables, err := s.LoadTables(ctx, userID)
	if err != nil {
		return nil, err
	}

	lines := shipment.ToggleLine(req.Lines, req.ProductID, req.Selected, quoteFor(req.QuoteRequest, tables))
	return quoteResponse(lines, len(lines) != len(req.Lines)), nil
}
