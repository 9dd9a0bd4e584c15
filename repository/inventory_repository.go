package repository

import (
	"context"
	"fmt"

	"fulfillment-portal/models"

	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
)

// InventoryRepository handles database operations for inventory items
type InventoryRepository struct {
	db *sqlx.DB
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *sqlx.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// Ensure InventoryRepository implements InventoryRepositoryInterface
var _ InventoryRepositoryInterface = (*InventoryRepository)(nil)

// ListByUser returns the user's inventory snapshot, newest products first
func (r *InventoryRepository) ListByUser(ctx context.Context, userID string) ([]models.InventoryItem, error) {
	log.Printf("🔍 ListByUser: Loading inventory for user=%s", userID)

	query := `
		SELECT id, user_id, product_name,
			COALESCE(sku, '') AS sku,
			quantity,
			COALESCE(status, '') AS status,
			COALESCE(inventory_type, '') AS inventory_type,
			date_added
		FROM inventory_items
		WHERE user_id = $1
		ORDER BY product_name, id
	`

	items := []models.InventoryItem{}
	if err := r.db.SelectContext(ctx, &items, query, userID); err != nil {
		log.Printf("❌ ListByUser: Error querying inventory: %v", err)
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}

	log.Printf("✓ ListByUser: Found %d inventory items", len(items))
	return items, nil
}
