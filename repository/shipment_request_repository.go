package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"fulfillment-portal/models"

	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
)

// ShipmentRequestRepository handles database operations for shipment requests
type ShipmentRequestRepository struct {
	db *sqlx.DB
}

// NewShipmentRequestRepository creates a new ShipmentRequestRepository
func NewShipmentRequestRepository(db *sqlx.DB) *ShipmentRequestRepository {
	return &ShipmentRequestRepository{db: db}
}

// Ensure ShipmentRequestRepository implements ShipmentRequestRepositoryInterface
var _ ShipmentRequestRepositoryInterface = (*ShipmentRequestRepository)(nil)

// Create stores a new request. document is the cleaned request document kept as JSONB;
// the indexed columns are taken from record.
func (r *ShipmentRequestRepository) Create(ctx context.Context, record *models.ShipmentRequestRecord, document map[string]interface{}) error {
	log.Printf("📦 Create: Storing shipment request id=%s, user=%s, type=%s, lines=%d",
		record.ID, record.UserID, record.ShipmentType, len(record.Shipments))

	payload, err := json.Marshal(document)
	if err != nil {
		return fmt.Errorf("failed to encode shipment request: %w", err)
	}

	query := `
		INSERT INTO shipment_requests (id, user_id, shipment_type, service, status, ship_date, document, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb, $8)
	`
	_, err = r.db.ExecContext(ctx, query,
		record.ID,
		record.UserID,
		record.ShipmentType,
		record.Service,
		record.Status,
		record.Date,
		string(payload),
		record.CreatedAt,
	)
	if err != nil {
		log.Printf("❌ Create: Error inserting shipment request: %v", err)
		return fmt.Errorf("failed to create shipment request: %w", err)
	}

	log.Printf("✅ Create: Successfully created shipment request id=%s", record.ID)
	return nil
}

// GetByID returns one of the user's requests, or ErrNotFound
func (r *ShipmentRequestRepository) GetByID(ctx context.Context, userID, id string) (*models.ShipmentRequestRecord, error) {
	var payload []byte
	err := r.db.QueryRowxContext(ctx,
		`SELECT document FROM shipment_requests WHERE id = $1 AND user_id = $2`, id, userID,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("shipment request %s: %w", id, ErrNotFound)
		}
		log.Printf("❌ GetByID: Error fetching shipment request: %v", err)
		return nil, fmt.Errorf("failed to get shipment request: %w", err)
	}

	var record models.ShipmentRequestRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("failed to decode shipment request %s: %w", id, err)
	}
	return &record, nil
}
