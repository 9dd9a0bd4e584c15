package repository

import (
	"context"
	"fmt"

	"fulfillment-portal/models"

	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
)

// Dated price collections
const (
	CollectionPrepRules               = "prep_pricing_rules"
	CollectionBoxForwarding           = "box_forwarding_prices"
	CollectionPalletForwarding        = "pallet_forwarding_prices"
	CollectionPalletExistingInventory = "pallet_existing_inventory_prices"
)

// PricingRepository handles database operations for pricing tables
type PricingRepository struct {
	db *sqlx.DB
}

// NewPricingRepository creates a new PricingRepository
func NewPricingRepository(db *sqlx.DB) *PricingRepository {
	return &PricingRepository{db: db}
}

// Ensure PricingRepository implements PricingRepositoryInterface
var _ PricingRepositoryInterface = (*PricingRepository)(nil)

// GetPrepRules returns the user's prep pricing rules ordered by bracket
func (r *PricingRepository) GetPrepRules(ctx context.Context, userID string) ([]models.PricingRule, error) {
	query := `
		SELECT id, service, product_type, min_units, max_units, rate, pack_surcharge, updated_at
		FROM prep_pricing_rules
		WHERE user_id = $1
		ORDER BY service, product_type, min_units
	`

	rules := []models.PricingRule{}
	if err := r.db.SelectContext(ctx, &rules, query, userID); err != nil {
		log.Printf("❌ GetPrepRules: Error querying rules for user=%s: %v", userID, err)
		return nil, fmt.Errorf("failed to get prep pricing rules: %w", err)
	}

	log.Printf("💰 GetPrepRules: Found %d rules for user=%s", len(rules), userID)
	return rules, nil
}

// GetBoxForwardingPrices returns every box forwarding price record of the user
func (r *PricingRepository) GetBoxForwardingPrices(ctx context.Context, userID string) ([]models.DatedPrice, error) {
	return r.datedPrices(ctx, CollectionBoxForwarding, userID)
}

// GetPalletForwardingPrices returns every pallet forwarding price record of the user
func (r *PricingRepository) GetPalletForwardingPrices(ctx context.Context, userID string) ([]models.DatedPrice, error) {
	return r.datedPrices(ctx, CollectionPalletForwarding, userID)
}

// GetPalletExistingInventoryPrices returns every pallet existing-inventory price record of the user
func (r *PricingRepository) GetPalletExistingInventoryPrices(ctx context.Context, userID string) ([]models.DatedPrice, error) {
	return r.datedPrices(ctx, CollectionPalletExistingInventory, userID)
}

// datedPrices reads one dated price table. table is always one of the collection constants.
func (r *PricingRepository) datedPrices(ctx context.Context, table, userID string) ([]models.DatedPrice, error) {
	query := fmt.Sprintf(`SELECT id, price, updated_at FROM %s WHERE user_id = $1`, table)

	prices := []models.DatedPrice{}
	if err := r.db.SelectContext(ctx, &prices, query, userID); err != nil {
		log.Printf("❌ datedPrices: Error querying %s for user=%s: %v", table, userID, err)
		return nil, fmt.Errorf("failed to get %s: %w", table, err)
	}

	log.Printf("💰 datedPrices: Found %d records in %s for user=%s", len(prices), table, userID)
	return prices, nil
}
