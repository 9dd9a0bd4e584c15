package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment-portal/events"
	"fulfillment-portal/models"
	"fulfillment-portal/repository"
	"fulfillment-portal/shipment"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// ShipmentService accepts shipment request submissions
type ShipmentService struct {
	users     repository.UserRepositoryInterface
	inventory repository.InventoryRepositoryInterface
	requests  repository.ShipmentRequestRepositoryInterface
	publisher events.Publisher
	now       func() time.Time
	newID     func() string
}

// NewShipmentService creates a new ShipmentService
func NewShipmentService(
	users repository.UserRepositoryInterface,
	inventory repository.InventoryRepositoryInterface,
	requests repository.ShipmentRequestRepositoryInterface,
	publisher events.Publisher,
) *ShipmentService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &ShipmentService{
		users:     users,
		inventory: inventory,
		requests:  requests,
		publisher: publisher,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Submit validates and stores a shipment request for userID.
// Nothing is written unless every check passes.
func (s *ShipmentService) Submit(ctx context.Context, userID string, form models.ShipmentForm) (*models.ShipmentRequestRecord, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		log.Printf("❌ Submit: failed to load profile for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if err := shipment.ValidateForm(form); err != nil {
		log.Printf("❌ Submit: invalid form from user=%s: %v", userID, err)
		return nil, err
	}

	items, err := s.inventory.ListByUser(ctx, userID)
	if err != nil {
		log.Printf("❌ Submit: failed to load inventory for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if stockErrs := shipment.ValidateStock(form.Shipments, items, form.ShipmentType); len(stockErrs) > 0 {
		log.Printf("❌ Submit: %d line(s) exceed stock for user=%s", len(stockErrs), userID)
		return nil, shipment.StockErrors(stockErrs)
	}

	record, err := shipment.Assemble(form, *user, s.newID(), s.now())
	if err != nil {
		return nil, err
	}

	document, _ := shipment.StripUndefined(record.Document()).(map[string]interface{})
	if err := s.requests.Create(ctx, &record, document); err != nil {
		log.Printf("❌ Submit: failed to store request id=%s: %v", record.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	log.WithFields(log.Fields{
		"id":           record.ID,
		"user":         userID,
		"shipmentType": record.ShipmentType,
		"service":      record.Service,
		"lines":        len(record.Shipments),
	}).Info("✅ Shipment request submitted")

	event := events.NewEvent(events.ShipmentRequestCreated, document)
	if err := s.publisher.Publish(ctx, record.ID, event); err != nil {
		log.Printf("⚠️  Submit: failed to publish %s for id=%s: %v", events.ShipmentRequestCreated, record.ID, err)
	}
	return &record, nil
}

// Get returns one of the user's submitted requests
func (s *ShipmentService) Get(ctx context.Context, userID, id string) (*models.ShipmentRequestRecord, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	return s.requests.GetByID(ctx, userID, id)
}
